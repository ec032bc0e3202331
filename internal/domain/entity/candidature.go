package entity

import "time"

// Statuts d'une candidature, mutés uniquement par l'entreprise propriétaire de l'offre.
const (
	CandidaturePending  = "pending"
	CandidatureAccepted = "accepted"
	CandidatureRejected = "rejected"
)

// Candidature lie un ingénieur à une offre. Unicité (offre, ingénieur) garantie en DB.
type Candidature struct {
	ID          string
	OffreID     string
	IngenieurID string
	Lettre      string
	CVPath      *string
	Statut      string // voir constantes Candidature*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobView trace une consultation d'offre par un ingénieur, une ligne par paire (offre, ingénieur).
// Alimente le compteur Vues de l'offre via un upsert atomique.
type JobView struct {
	OffreID     string
	IngenieurID string
	ViewedAt    time.Time
}
