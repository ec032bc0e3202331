package usecase

import (
	"context"
	"time"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// IngenieurUseCase profil ingénieur, attestation et actions admin (suspension, suppression).
type IngenieurUseCase struct {
	ingRepo     repository.IngenieurRepository
	attestation AttestationGenerator
}

// NewIngenieurUseCase construit le cas d'usage.
func NewIngenieurUseCase(ingRepo repository.IngenieurRepository, attestation AttestationGenerator) *IngenieurUseCase {
	return &IngenieurUseCase{ingRepo: ingRepo, attestation: attestation}
}

// GetProfil profil de l'ingénieur connecté.
func (uc *IngenieurUseCase) GetProfil(id string) (*dto.IngenieurResponse, error) {
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return toIngenieurResponse(ing), nil
}

// UpdateProfil mise à jour des champs libres du profil. La modification du dossier
// (documents) passe par le workflow de vérification, pas par ici.
func (uc *IngenieurUseCase) UpdateProfil(id string, in dto.UpdateIngenieurRequest) (*dto.IngenieurResponse, error) {
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	ing.Nom = in.Nom
	ing.Telephone = in.Telephone
	ing.Domaines = in.Domaines
	ing.ModesExercice = in.ModesExercice
	ing.UpdatedAt = time.Now()
	if err := uc.ingRepo.Update(ing); err != nil {
		return nil, err
	}
	return toIngenieurResponse(ing), nil
}

// Attestation génère l'attestation d'inscription PDF. Réservée aux profils
// dérivés-actifs (validés ET cotisation non expirée).
func (uc *IngenieurUseCase) Attestation(_ context.Context, id string) ([]byte, error) {
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if !ing.IsActif(now) {
		return nil, domain.ErrForbidden
	}
	return uc.attestation.Generate(ing, now)
}

// List listing admin filtré par statut.
func (uc *IngenieurUseCase) List(statut string, limit, offset int) ([]dto.IngenieurResponse, error) {
	list, err := uc.ingRepo.List(statut, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngenieurResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, *toIngenieurResponse(ing))
	}
	return out, nil
}

// Suspend suspension admin d'un ingénieur validé.
func (uc *IngenieurUseCase) Suspend(id string) (*dto.IngenieurResponse, error) {
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if ing.Statut != entity.StatutValidated {
		return nil, domain.ErrInvalidState
	}
	ing.Statut = entity.StatutSuspendu
	ing.UpdatedAt = time.Now()
	if err := uc.ingRepo.Update(ing); err != nil {
		return nil, err
	}
	return toIngenieurResponse(ing), nil
}

// Delete suppression admin définitive. Les entrées dépendantes (référence,
// vérifications, candidatures, vues) tombent par cascade SQL.
func (uc *IngenieurUseCase) Delete(id string) error {
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	return uc.ingRepo.Delete(id)
}
