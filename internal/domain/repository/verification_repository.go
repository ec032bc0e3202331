package repository

import "github.com/omigec/plateforme-api/internal/domain/entity"

// VerificationRepository définit le port de persistance pour les demandes de parrainage.
type VerificationRepository interface {
	// Create insère la demande. Retourne domain.ErrPendingExists si le demandeur a
	// déjà une demande pending (index partiel unique, pas un simple pré-check).
	Create(v *entity.Verification) error
	GetByID(id string) (*entity.Verification, error)
	GetPendingByDemandeur(demandeurID string) (*entity.Verification, error)
	ListByParrain(parrainID string, limit, offset int) ([]*entity.Verification, error)
	ListByDemandeur(demandeurID string, limit, offset int) ([]*entity.Verification, error)
	Update(v *entity.Verification) error
}
