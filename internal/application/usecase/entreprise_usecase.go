package usecase

import (
	"context"
	"time"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// EntrepriseUseCase profil entreprise et actions admin (validation, suspension).
type EntrepriseUseCase struct {
	entRepo  repository.EntrepriseRepository
	uploader Uploader
	tx       TxRunner
}

// NewEntrepriseUseCase construit le cas d'usage.
func NewEntrepriseUseCase(entRepo repository.EntrepriseRepository, uploader Uploader, tx TxRunner) *EntrepriseUseCase {
	return &EntrepriseUseCase{entRepo: entRepo, uploader: uploader, tx: tx}
}

// GetProfil profil de l'entreprise connectée.
func (uc *EntrepriseUseCase) GetProfil(id string) (*dto.EntrepriseResponse, error) {
	ent, err := uc.entRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	return toEntrepriseResponse(ent), nil
}

// UpdateProfil mise à jour des champs libres (le NIF et l'email sont immuables ici).
func (uc *EntrepriseUseCase) UpdateProfil(id string, in dto.UpdateEntrepriseRequest) (*dto.EntrepriseResponse, error) {
	ent, err := uc.entRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	ent.Nom = in.Nom
	ent.Secteur = in.Secteur
	ent.Telephone = in.Telephone
	ent.Description = in.Description
	ent.UpdatedAt = time.Now()
	if err := uc.entRepo.Update(ent); err != nil {
		return nil, err
	}
	return toEntrepriseResponse(ent), nil
}

// UploadLogo stocke le logo et conserve le chemin retourné par le stockage objet.
func (uc *EntrepriseUseCase) UploadLogo(ctx context.Context, id, filename string, data []byte) (*dto.EntrepriseResponse, error) {
	if uc.uploader == nil {
		return nil, domain.ErrUploadsDisabled
	}
	ent, err := uc.entRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	path, err := uc.uploader.UploadBytes(ctx, "logos/"+ent.ID, uploadName("logo", filename), data)
	if err != nil {
		return nil, err
	}
	ent.LogoPath = &path
	ent.UpdatedAt = time.Now()
	if err := uc.entRepo.Update(ent); err != nil {
		return nil, err
	}
	return toEntrepriseResponse(ent), nil
}

// List listing admin filtré par statut.
func (uc *EntrepriseUseCase) List(statut string, limit, offset int) ([]dto.EntrepriseResponse, error) {
	list, err := uc.entRepo.List(statut, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntrepriseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEntrepriseResponse(e))
	}
	return out, nil
}

// Validate validation admin : en_attente -> valide.
func (uc *EntrepriseUseCase) Validate(id string) (*dto.EntrepriseResponse, error) {
	ent, err := uc.entRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	if ent.Statut != entity.EntrepriseEnAttente {
		return nil, domain.ErrInvalidState
	}
	ent.Statut = entity.EntrepriseValide
	ent.UpdatedAt = time.Now()
	if err := uc.entRepo.Update(ent); err != nil {
		return nil, err
	}
	return toEntrepriseResponse(ent), nil
}

// Suspend suspension admin : valide -> suspendu, et désactivation de toutes les offres
// de l'entreprise dans la même transaction.
func (uc *EntrepriseUseCase) Suspend(ctx context.Context, id string) (*dto.EntrepriseResponse, error) {
	ent, err := uc.entRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	if ent.Statut != entity.EntrepriseValide {
		return nil, domain.ErrInvalidState
	}
	ent.Statut = entity.EntrepriseSuspendue
	ent.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(_ repository.AbonnementRepository, offreRepo repository.OffreRepository, entRepo repository.EntrepriseRepository) error {
		if err := entRepo.Update(ent); err != nil {
			return err
		}
		return offreRepo.DeactivateAllByEntreprise(ent.ID)
	})
	if err != nil {
		return nil, err
	}
	return toEntrepriseResponse(ent), nil
}

// Delete suppression admin définitive. Abonnements, offres et candidatures
// associés tombent par cascade SQL.
func (uc *EntrepriseUseCase) Delete(id string) error {
	ent, err := uc.entRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ent == nil {
		return domain.ErrNotFound
	}
	return uc.entRepo.Delete(id)
}
