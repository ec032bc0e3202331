package entity

import "time"

// Statuts d'une demande de parrainage.
const (
	VerificationPending   = "pending"
	VerificationConfirmed = "confirmed"
	VerificationRejected  = "rejected"
)

// Verification est une demande de parrainage : un demandeur en pending_reference
// choisit un parrain de la liste des références, qui confirme ou rejette.
// Au plus une demande pending par demandeur (index partiel unique côté DB).
type Verification struct {
	ID          string
	DemandeurID string
	ParrainID   string
	Statut      string  // voir constantes Verification*
	Motif       *string // motif de rejet, optionnel
	CreatedAt   time.Time
	RespondedAt *time.Time
}

// EstOuverte indique si la demande attend encore la réponse du parrain.
func (v *Verification) EstOuverte() bool {
	return v.Statut == VerificationPending
}
