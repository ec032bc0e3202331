package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// CandidatureUseCase candidatures des ingénieurs et décisions des entreprises.
type CandidatureUseCase struct {
	candRepo  repository.CandidatureRepository
	offreRepo repository.OffreRepository
}

// NewCandidatureUseCase construit le cas d'usage.
func NewCandidatureUseCase(candRepo repository.CandidatureRepository, offreRepo repository.OffreRepository) *CandidatureUseCase {
	return &CandidatureUseCase{candRepo: candRepo, offreRepo: offreRepo}
}

// Apply candidature d'un ingénieur à une offre active dont la date limite n'est pas
// passée. Une seule candidature par paire (offre, ingénieur) — contrainte unique,
// ErrAlreadyApplied sur doublon.
func (uc *CandidatureUseCase) Apply(ingenieurID, offreID string, in dto.ApplyRequest) (*dto.CandidatureResponse, error) {
	o, err := uc.offreRepo.GetByID(offreID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if !o.IsActive {
		return nil, domain.ErrInvalidState
	}
	if o.DateLimite != nil && o.DateLimite.Before(now) {
		return nil, domain.ErrDeadlinePassed
	}

	c := &entity.Candidature{
		ID:          uuid.New().String(),
		OffreID:     offreID,
		IngenieurID: ingenieurID,
		Lettre:      in.Lettre,
		Statut:      entity.CandidaturePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.CVPath != "" {
		cv := in.CVPath
		c.CVPath = &cv
	}
	if err := uc.candRepo.Create(c); err != nil {
		return nil, err
	}
	return toCandidatureResponse(c), nil
}

// ListByOffre candidatures d'une offre, réservé à l'entreprise propriétaire.
func (uc *CandidatureUseCase) ListByOffre(entrepriseID, offreID string, limit, offset int) ([]dto.CandidatureResponse, error) {
	o, err := uc.offreRepo.GetByID(offreID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.candRepo.ListByOffre(offreID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CandidatureResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCandidatureResponse(c))
	}
	return out, nil
}

// ListMine candidatures de l'ingénieur connecté.
func (uc *CandidatureUseCase) ListMine(ingenieurID string, limit, offset int) ([]dto.CandidatureResponse, error) {
	list, err := uc.candRepo.ListByIngenieur(ingenieurID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CandidatureResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCandidatureResponse(c))
	}
	return out, nil
}

// UpdateStatus décision de l'entreprise : seule la propriétaire de l'offre associée
// peut muter le statut d'une candidature.
func (uc *CandidatureUseCase) UpdateStatus(entrepriseID, candidatureID string, in dto.UpdateCandidatureStatusRequest) (*dto.CandidatureResponse, error) {
	c, err := uc.candRepo.GetByID(candidatureID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	o, err := uc.offreRepo.GetByID(c.OffreID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	c.Statut = in.Statut
	c.UpdatedAt = time.Now()
	if err := uc.candRepo.Update(c); err != nil {
		return nil, err
	}
	return toCandidatureResponse(c), nil
}
