package repository

import "github.com/omigec/plateforme-api/internal/domain/entity"

// CandidatureRepository définit le port de persistance pour les candidatures.
type CandidatureRepository interface {
	// Create insère la candidature. Retourne domain.ErrAlreadyApplied si la paire
	// (offre, ingénieur) existe déjà (contrainte unique composite).
	Create(c *entity.Candidature) error
	GetByID(id string) (*entity.Candidature, error)
	ListByOffre(offreID string, limit, offset int) ([]*entity.Candidature, error)
	ListByIngenieur(ingenieurID string, limit, offset int) ([]*entity.Candidature, error)
	Update(c *entity.Candidature) error
}
