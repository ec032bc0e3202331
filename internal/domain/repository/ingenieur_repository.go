package repository

import "github.com/omigec/plateforme-api/internal/domain/entity"

// IngenieurRepository définit le port de persistance pour Ingenieur (DIP).
// L'implémentation vit dans infrastructure.
type IngenieurRepository interface {
	Create(ing *entity.Ingenieur) error
	GetByID(id string) (*entity.Ingenieur, error)
	GetByEmail(email string) (*entity.Ingenieur, error)
	GetByNNI(nni string) (*entity.Ingenieur, error)
	Update(ing *entity.Ingenieur) error
	// List filtre par statut ("" = tous) avec pagination.
	List(statut string, limit, offset int) ([]*entity.Ingenieur, error)
	// SearchByNom recherche sur le nom replié (sans accents, minuscules) — la colonne
	// nom_recherche est maintenue par l'implémentation à chaque écriture.
	SearchByNom(nomFold string, limit int) ([]*entity.Ingenieur, error)
	// Delete supprime l'ingénieur ; les entrées dépendantes (référence, vérifications,
	// candidatures, vues) tombent par cascade SQL.
	Delete(id string) error
}

// ReferenceRepository gère la liste des parrains (references_list).
type ReferenceRepository interface {
	Add(item *entity.ReferenceListItem) error
	Remove(ingenieurID string) error
	Exists(ingenieurID string) (bool, error)
	// ListIngenieurs retourne les profils des parrains (jointure côté SQL).
	ListIngenieurs() ([]*entity.Ingenieur, error)
}
