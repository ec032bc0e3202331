package entity

import "time"

// Statuts du cycle de vie d'un ingénieur (doivent correspondre au CHECK de la table ingenieurs).
const (
	StatutPendingDocs      = "pending_docs"
	StatutPendingReference = "pending_reference"
	StatutValidated        = "validated"
	StatutSuspendu         = "suspended"
)

// Voie d'accès au statut validated (union taguée : les deux chemins coexistent volontairement).
const (
	ValideViaAdmin   = "admin_approval"
	ValideViaParrain = "sponsor_confirmation"
)

// Modes d'exercice déclarés par l'ingénieur.
const (
	ModePersonnePhysique = "personne_physique"
	ModePersonneMorale   = "personne_morale"
	ModeFonctionnaire    = "fonctionnaire"
	ModeSalariePrive     = "salarie_prive"
)

// Ingenieur représente un ingénieur inscrit (profil + dossier + état de vérification).
type Ingenieur struct {
	ID           string
	NNI          string // numéro national d'identité, identifiant humain unique
	Nom          string
	Email        string
	Telephone    string
	PasswordHash string // hash bcrypt, jamais en clair après persistance

	// Cursus déclaré
	DiplomeTitre  string
	AnneeDiplome  int
	Universite    string
	Pays          string
	Domaines      []string // domaines professionnels (multi-valué)
	ModesExercice []string

	// Pointeurs vers les documents uploadés (le binaire vit dans le stockage objet)
	DiplomePath      *string
	CNIPath          *string
	RecuPaiementPath *string

	Statut           string // voir constantes Statut*
	IsAdmin          bool
	AbonnementExpire *time.Time // une seule échéance, écrasée à chaque renouvellement
	ValideVia        *string    // admin_approval | sponsor_confirmation, nil tant que non validé

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActif calcule l'activité dérivée : validé ET cotisation non expirée.
// Unique point de vérité, utilisé par la recherche publique et l'attestation.
func (i *Ingenieur) IsActif(now time.Time) bool {
	return i.Statut == StatutValidated && i.AbonnementExpire != nil && i.AbonnementExpire.After(now)
}

// DocumentsComplets indique si le dossier minimal (diplôme + CNI) est présent.
func (i *Ingenieur) DocumentsComplets() bool {
	return i.DiplomePath != nil && i.CNIPath != nil
}

// ReferenceListItem marque l'appartenance d'un ingénieur à la liste des parrains.
// Un ingénieur est parrain ssi une ligne existe ici.
type ReferenceListItem struct {
	ID          string
	IngenieurID string
	AddedByID   string // admin ayant ajouté l'entrée
	CreatedAt   time.Time
}
