package repository

import "github.com/omigec/plateforme-api/internal/domain/entity"

// OffreFilter critères du listing public des offres.
type OffreFilter struct {
	Domaines     []string // au moins un domaine en commun
	Search       string   // sous-chaîne sur titre/description
	EntrepriseID string   // "" = toutes
	OnlyActive   bool
	Limit        int
	Offset       int
}

// OffreRepository définit le port de persistance pour les offres d'emploi.
type OffreRepository interface {
	Create(o *entity.OffreEmploi) error
	GetByID(id string) (*entity.OffreEmploi, error)
	Update(o *entity.OffreEmploi) error
	List(f OffreFilter) ([]*entity.OffreEmploi, error)
	CountActivesByEntreprise(entrepriseID string) (int, error)
	// DeactivateAllByEntreprise désactive toutes les offres (suspension/suppression entreprise).
	DeactivateAllByEntreprise(entrepriseID string) error
	// RegisterView upsert la paire (offre, ingénieur) et incrémente le compteur de vues
	// en une seule instruction SQL : pas de fenêtre read-then-write.
	RegisterView(offreID, ingenieurID string) error
}
