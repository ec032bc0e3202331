package dto

import "time"

// RequestAbonnementRequest demande d'abonnement par une entreprise validée.
type RequestAbonnementRequest struct {
	Plan    string `json:"plan" validate:"required,oneof=starter business premium"`
	RecuURL string `json:"recu_url" validate:"omitempty,url"`
}

// ApproveAbonnementRequest activation admin ; les dates sont optionnelles (défaut : fenêtre du plan).
type ApproveAbonnementRequest struct {
	StartsAt  *time.Time `json:"starts_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	Notes     string     `json:"notes" validate:"omitempty,max=1000"`
}

// DeactivateAbonnementRequest désactivation admin avec motif obligatoire.
type DeactivateAbonnementRequest struct {
	Motif string `json:"motif" validate:"required,max=1000"`
}

// AbonnementResponse état d'un abonnement.
type AbonnementResponse struct {
	ID            string     `json:"id"`
	EntrepriseID  string     `json:"entreprise_id"`
	Plan          string     `json:"plan"`
	PrixMensuel   string     `json:"prix_mensuel"`
	StartsAt      time.Time  `json:"starts_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	IsActive      bool       `json:"is_active"`
	PaymentStatus string     `json:"payment_status"`
	RecuURL       *string    `json:"recu_url,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	VerifiedByID  *string    `json:"verified_by_id,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AbonnementActifResponse abonnement courant + quota dérivé pour le tableau de bord entreprise.
type AbonnementActifResponse struct {
	Abonnement    *AbonnementResponse `json:"abonnement"`
	Actif         bool                `json:"actif"`
	OffresActives int                 `json:"offres_actives"`
	QuotaRestant  int                 `json:"quota_restant"`
}
