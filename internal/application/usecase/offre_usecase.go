package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// OffreUseCase publication et consultation des offres d'emploi, avec la porte
// abonnement+quota à la création.
type OffreUseCase struct {
	offreRepo repository.OffreRepository
	abRepo    repository.AbonnementRepository
	entRepo   repository.EntrepriseRepository
}

// NewOffreUseCase construit le cas d'usage.
func NewOffreUseCase(
	offreRepo repository.OffreRepository,
	abRepo repository.AbonnementRepository,
	entRepo repository.EntrepriseRepository,
) *OffreUseCase {
	return &OffreUseCase{offreRepo: offreRepo, abRepo: abRepo, entRepo: entRepo}
}

// Create publie une offre. Porte : entreprise valide ET abonnement actif non échu
// ET quota restant > 0. Le quota se dérive du nombre d'offres actuellement actives,
// indépendamment de la valeur brute du flag is_active de l'abonnement.
func (uc *OffreUseCase) Create(entrepriseID string, in dto.CreateOffreRequest) (*dto.OffreResponse, error) {
	ent, err := uc.entRepo.GetByID(entrepriseID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	if !ent.PeutPublier() {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	a, err := uc.abRepo.GetActiveByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.IsActif(now) {
		return nil, domain.ErrNoActiveAbonnement
	}
	actives, err := uc.offreRepo.CountActivesByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	if a.QuotaRestant(actives) <= 0 {
		return nil, domain.ErrQuotaExceeded
	}

	o := &entity.OffreEmploi{
		ID:           uuid.New().String(),
		EntrepriseID: entrepriseID,
		Titre:        in.Titre,
		Description:  in.Description,
		Domaines:     in.Domaines,
		TypeContrat:  in.TypeContrat,
		Lieu:         in.Lieu,
		DateLimite:   in.DateLimite,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if o.SalaireMin, err = parseSalaire(in.SalaireMin); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if o.SalaireMax, err = parseSalaire(in.SalaireMax); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.offreRepo.Create(o); err != nil {
		return nil, err
	}
	return toOffreResponse(o), nil
}

// Update mise à jour par l'entreprise propriétaire uniquement.
func (uc *OffreUseCase) Update(entrepriseID, offreID string, in dto.UpdateOffreRequest) (*dto.OffreResponse, error) {
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

	o.Titre = in.Titre
	o.Description = in.Description
	o.Domaines = in.Domaines
	o.TypeContrat = in.TypeContrat
	o.Lieu = in.Lieu
	o.DateLimite = in.DateLimite
	if o.SalaireMin, err = parseSalaire(in.SalaireMin); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if o.SalaireMax, err = parseSalaire(in.SalaireMax); err != nil {
		return nil, domain.ErrInvalidInput
	}
	o.UpdatedAt = time.Now()
	if err := uc.offreRepo.Update(o); err != nil {
		return nil, err
	}
	return toOffreResponse(o), nil
}

// Delete suppression logique (is_active=false) par l'entreprise propriétaire.
func (uc *OffreUseCase) Delete(entrepriseID, offreID string) error {
	o, err := uc.offreRepo.GetByID(offreID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if o.EntrepriseID != entrepriseID {
		return domain.ErrForbidden
	}
	o.IsActive = false
	o.UpdatedAt = time.Now()
	return uc.offreRepo.Update(o)
}

// List listing public des offres actives avec filtres.
func (uc *OffreUseCase) List(domaines []string, search string, limit, offset int) (*dto.OffreListResponse, error) {
	list, err := uc.offreRepo.List(repository.OffreFilter{
		Domaines:   domaines,
		Search:     search,
		OnlyActive: true,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.OffreResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOffreResponse(o))
	}
	return &dto.OffreListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListByEntreprise offres de l'entreprise connectée (actives ou non).
func (uc *OffreUseCase) ListByEntreprise(entrepriseID string, limit, offset int) (*dto.OffreListResponse, error) {
	list, err := uc.offreRepo.List(repository.OffreFilter{
		EntrepriseID: entrepriseID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.OffreResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOffreResponse(o))
	}
	return &dto.OffreListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// GetByID détail d'une offre.
func (uc *OffreUseCase) GetByID(offreID string) (*dto.OffreResponse, error) {
	o, err := uc.offreRepo.GetByID(offreID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOffreResponse(o), nil
}

// RegisterView enregistre une consultation par un ingénieur : upsert de la paire
// (offre, ingénieur) et incrément du compteur en une instruction atomique.
func (uc *OffreUseCase) RegisterView(offreID, ingenieurID string) error {
	o, err := uc.offreRepo.GetByID(offreID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.offreRepo.RegisterView(offreID, ingenieurID)
}

func parseSalaire(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
