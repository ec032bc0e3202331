package dto

import "time"

// CreateOffreRequest publication d'une offre (soumise à la porte abonnement+quota).
type CreateOffreRequest struct {
	Titre       string     `json:"titre" validate:"required,min=3,max=300"`
	Description string     `json:"description" validate:"required,max=10000"`
	Domaines    []string   `json:"domaines" validate:"required,min=1,dive,max=100"`
	TypeContrat string     `json:"type_contrat" validate:"required,oneof=cdi cdd stage mission"`
	Lieu        string     `json:"lieu" validate:"required,max=200"`
	SalaireMin  *string    `json:"salaire_min" validate:"omitempty"`
	SalaireMax  *string    `json:"salaire_max" validate:"omitempty"`
	DateLimite  *time.Time `json:"date_limite"`
}

// UpdateOffreRequest mise à jour par l'entreprise propriétaire.
type UpdateOffreRequest struct {
	Titre       string     `json:"titre" validate:"required,min=3,max=300"`
	Description string     `json:"description" validate:"required,max=10000"`
	Domaines    []string   `json:"domaines" validate:"required,min=1,dive,max=100"`
	TypeContrat string     `json:"type_contrat" validate:"required,oneof=cdi cdd stage mission"`
	Lieu        string     `json:"lieu" validate:"required,max=200"`
	SalaireMin  *string    `json:"salaire_min" validate:"omitempty"`
	SalaireMax  *string    `json:"salaire_max" validate:"omitempty"`
	DateLimite  *time.Time `json:"date_limite"`
}

// OffreResponse offre telle qu'exposée publiquement.
type OffreResponse struct {
	ID             string     `json:"id"`
	EntrepriseID   string     `json:"entreprise_id"`
	Titre          string     `json:"titre"`
	Description    string     `json:"description"`
	Domaines       []string   `json:"domaines"`
	TypeContrat    string     `json:"type_contrat"`
	Lieu           string     `json:"lieu"`
	SalaireMin     *string    `json:"salaire_min,omitempty"`
	SalaireMax     *string    `json:"salaire_max,omitempty"`
	DateLimite     *time.Time `json:"date_limite,omitempty"`
	IsActive       bool       `json:"is_active"`
	Vues           int        `json:"vues"`
	NbCandidatures int        `json:"nb_candidatures"`
	CreatedAt      time.Time  `json:"created_at"`
}

// OffreListResponse listing paginé.
type OffreListResponse struct {
	Items []OffreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ApplyRequest candidature d'un ingénieur à une offre.
type ApplyRequest struct {
	Lettre string `json:"lettre" validate:"omitempty,max=5000"`
	CVPath string `json:"cv_path" validate:"omitempty,max=500"`
}

// UpdateCandidatureStatusRequest décision de l'entreprise propriétaire.
type UpdateCandidatureStatusRequest struct {
	Statut string `json:"statut" validate:"required,oneof=pending accepted rejected"`
}

// CandidatureResponse candidature exposée à l'ingénieur et à l'entreprise.
type CandidatureResponse struct {
	ID          string    `json:"id"`
	OffreID     string    `json:"offre_id"`
	IngenieurID string    `json:"ingenieur_id"`
	Lettre      string    `json:"lettre,omitempty"`
	CVPath      *string   `json:"cv_path,omitempty"`
	Statut      string    `json:"statut"`
	CreatedAt   time.Time `json:"created_at"`
}
