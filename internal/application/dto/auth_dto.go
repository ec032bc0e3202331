package dto

import "time"

// RegisterIngenieurRequest inscription d'un ingénieur (password en clair, hashé dans le use case).
type RegisterIngenieurRequest struct {
	NNI           string   `json:"nni" validate:"required,min=6,max=20"`
	Nom           string   `json:"nom" validate:"required,min=2,max=200"`
	Email         string   `json:"email" validate:"required,email"`
	Telephone     string   `json:"telephone" validate:"omitempty,max=30"`
	Password      string   `json:"password" validate:"required,min=8"`
	DiplomeTitre  string   `json:"diplome_titre" validate:"required,max=300"`
	AnneeDiplome  int      `json:"annee_diplome" validate:"required,min=1950,max=2100"`
	Universite    string   `json:"universite" validate:"required,max=300"`
	Pays          string   `json:"pays" validate:"required,max=100"`
	Domaines      []string `json:"domaines" validate:"required,min=1,dive,max=100"`
	ModesExercice []string `json:"modes_exercice" validate:"omitempty,dive,oneof=personne_physique personne_morale fonctionnaire salarie_prive"`
}

// RegisterEntrepriseRequest inscription d'une entreprise (statut initial en_attente).
type RegisterEntrepriseRequest struct {
	NIF         string `json:"nif" validate:"required,min=6,max=20"`
	Nom         string `json:"nom" validate:"required,min=2,max=200"`
	Secteur     string `json:"secteur" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Telephone   string `json:"telephone" validate:"omitempty,max=30"`
	Password    string `json:"password" validate:"required,min=8"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// LoginRequest identifiants communs ingénieur/entreprise.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + identité minimale.
type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
	Nom    string `json:"nom"`
	Statut string `json:"statut"`
}

// IngenieurResponse profil ingénieur (sans password).
type IngenieurResponse struct {
	ID               string     `json:"id"`
	NNI              string     `json:"nni"`
	Nom              string     `json:"nom"`
	Email            string     `json:"email"`
	Telephone        string     `json:"telephone,omitempty"`
	DiplomeTitre     string     `json:"diplome_titre"`
	AnneeDiplome     int        `json:"annee_diplome"`
	Universite       string     `json:"universite"`
	Pays             string     `json:"pays"`
	Domaines         []string   `json:"domaines"`
	ModesExercice    []string   `json:"modes_exercice,omitempty"`
	DiplomePath      *string    `json:"diplome_path,omitempty"`
	CNIPath          *string    `json:"cni_path,omitempty"`
	RecuPaiementPath *string    `json:"recu_paiement_path,omitempty"`
	Statut           string     `json:"statut"`
	AbonnementExpire *time.Time `json:"abonnement_expire,omitempty"`
	ValideVia        *string    `json:"valide_via,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// EntrepriseResponse profil entreprise (sans password).
type EntrepriseResponse struct {
	ID          string    `json:"id"`
	NIF         string    `json:"nif"`
	Nom         string    `json:"nom"`
	Secteur     string    `json:"secteur"`
	Email       string    `json:"email"`
	Telephone   string    `json:"telephone,omitempty"`
	LogoPath    *string   `json:"logo_path,omitempty"`
	Description string    `json:"description,omitempty"`
	Statut      string    `json:"statut"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
