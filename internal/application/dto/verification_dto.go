package dto

import "time"

// UploadDocumentsResult chemins persistés après upload (le statut repasse à pending_docs).
type UploadDocumentsResult struct {
	DiplomePath      *string `json:"diplome_path,omitempty"`
	CNIPath          *string `json:"cni_path,omitempty"`
	RecuPaiementPath *string `json:"recu_paiement_path,omitempty"`
	Statut           string  `json:"statut"`
}

// Décisions admin sur un dossier de documents.
const (
	DecisionApprove              = "approve"
	DecisionApproveWithReference = "approve_with_reference"
	DecisionReject               = "reject"
)

// VerifyDocsRequest revue admin d'un dossier.
type VerifyDocsRequest struct {
	IngenieurID string `json:"ingenieur_id" validate:"required,uuid"`
	Decision    string `json:"decision" validate:"required,oneof=approve approve_with_reference reject"`
	Motif       string `json:"motif" validate:"omitempty,max=1000"`
}

// SelectReferenceRequest choix d'un parrain par un demandeur en pending_reference.
type SelectReferenceRequest struct {
	ParrainID string `json:"parrain_id" validate:"required,uuid"`
}

// RespondReferenceRequest réponse du parrain à une demande pending.
type RespondReferenceRequest struct {
	VerificationID string `json:"verification_id" validate:"required,uuid"`
	Decision       string `json:"decision" validate:"required,oneof=confirm reject"`
	Motif          string `json:"motif" validate:"omitempty,max=1000"`
}

// AddReferenceRequest ajout d'un ingénieur validé à la liste des parrains.
type AddReferenceRequest struct {
	IngenieurID string `json:"ingenieur_id" validate:"required,uuid"`
}

// VerificationResponse état d'une demande de parrainage.
type VerificationResponse struct {
	ID          string     `json:"id"`
	DemandeurID string     `json:"demandeur_id"`
	ParrainID   string     `json:"parrain_id"`
	Statut      string     `json:"statut"`
	Motif       *string    `json:"motif,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// ReferenceResponse parrain listé pour l'écran de sélection.
type ReferenceResponse struct {
	IngenieurID string   `json:"ingenieur_id"`
	Nom         string   `json:"nom"`
	Domaines    []string `json:"domaines"`
	Universite  string   `json:"universite"`
}
