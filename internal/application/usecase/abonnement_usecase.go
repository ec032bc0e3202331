package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// AbonnementUseCase cycle de vie des abonnements entreprise : demande, activation,
// rejet, désactivation, et dérivation du quota.
type AbonnementUseCase struct {
	abRepo    repository.AbonnementRepository
	entRepo   repository.EntrepriseRepository
	offreRepo repository.OffreRepository
	tx        TxRunner
}

// NewAbonnementUseCase construit le cas d'usage.
func NewAbonnementUseCase(
	abRepo repository.AbonnementRepository,
	entRepo repository.EntrepriseRepository,
	offreRepo repository.OffreRepository,
	tx TxRunner,
) *AbonnementUseCase {
	return &AbonnementUseCase{abRepo: abRepo, entRepo: entRepo, offreRepo: offreRepo, tx: tx}
}

// Request demande d'abonnement par une entreprise validée. Une seule demande ouverte
// (pending + inactive) à la fois par entreprise.
func (uc *AbonnementUseCase) Request(entrepriseID string, in dto.RequestAbonnementRequest) (*dto.AbonnementResponse, error) {
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
	plan, ok := entity.LookupPlan(in.Plan)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	open, err := uc.abRepo.GetOpenByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrPendingExists
	}

	now := time.Now()
	a := &entity.Abonnement{
		ID:            uuid.New().String(),
		EntrepriseID:  entrepriseID,
		Plan:          plan.Nom,
		PrixMensuel:   plan.PrixMensuel,
		StartsAt:      now,
		ExpiresAt:     now.AddDate(0, 0, plan.DureeJours),
		IsActive:      false,
		PaymentStatus: entity.PaiementPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.RecuURL != "" {
		recu := in.RecuURL
		a.RecuURL = &recu
	}
	if err := uc.abRepo.Create(a); err != nil {
		return nil, err
	}
	return toAbonnementResponse(a), nil
}

// Approve activation admin d'une demande ouverte. Dans une seule transaction :
// désactive les lignes actives de l'entreprise puis active la cible — l'invariant
// "au plus un abonnement actif par entreprise" ne transite jamais par un état visible
// à deux actifs.
func (uc *AbonnementUseCase) Approve(ctx context.Context, adminID, abonnementID string, in dto.ApproveAbonnementRequest) (*dto.AbonnementResponse, error) {
	a, err := uc.abRepo.GetByID(abonnementID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !a.EstOuvert() {
		return nil, domain.ErrInvalidState
	}
	ent, err := uc.entRepo.GetByID(a.EntrepriseID)
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
	a.IsActive = true
	a.PaymentStatus = entity.PaiementVerified
	if in.StartsAt != nil {
		a.StartsAt = *in.StartsAt
	} else {
		a.StartsAt = now
	}
	if in.ExpiresAt != nil {
		a.ExpiresAt = *in.ExpiresAt
	} else {
		plan, _ := entity.LookupPlan(a.Plan)
		a.ExpiresAt = a.StartsAt.AddDate(0, 0, plan.DureeJours)
	}
	if in.Notes != "" {
		a.Notes = appendNote(a.Notes, in.Notes)
	}
	a.VerifiedByID = &adminID
	a.VerifiedAt = &now
	a.UpdatedAt = now

	err = uc.tx.Run(ctx, func(abRepo repository.AbonnementRepository, _ repository.OffreRepository, _ repository.EntrepriseRepository) error {
		if err := abRepo.DeactivateAllByEntreprise(a.EntrepriseID, now); err != nil {
			return err
		}
		return abRepo.Update(a)
	})
	if err != nil {
		return nil, err
	}
	return toAbonnementResponse(a), nil
}

// Reject rejet admin d'une demande ouverte : la ligne reste inactive définitivement,
// l'entreprise doit soumettre une nouvelle demande.
func (uc *AbonnementUseCase) Reject(adminID, abonnementID, notes string) (*dto.AbonnementResponse, error) {
	a, err := uc.abRepo.GetByID(abonnementID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !a.EstOuvert() {
		return nil, domain.ErrInvalidState
	}
	now := time.Now()
	a.PaymentStatus = entity.PaiementRejected
	if notes != "" {
		a.Notes = appendNote(a.Notes, notes)
	}
	a.VerifiedByID = &adminID
	a.VerifiedAt = &now
	a.UpdatedAt = now
	if err := uc.abRepo.Update(a); err != nil {
		return nil, err
	}
	return toAbonnementResponse(a), nil
}

// Deactivate désactivation admin d'un abonnement actif : expiration immédiate,
// motif consigné dans les notes.
func (uc *AbonnementUseCase) Deactivate(adminID, abonnementID string, in dto.DeactivateAbonnementRequest) (*dto.AbonnementResponse, error) {
	a, err := uc.abRepo.GetByID(abonnementID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !a.IsActive {
		return nil, domain.ErrInvalidState
	}
	now := time.Now()
	a.IsActive = false
	a.ExpiresAt = now
	a.Notes = appendNote(a.Notes, fmt.Sprintf("désactivé par admin : %s", in.Motif))
	a.UpdatedAt = now
	if err := uc.abRepo.Update(a); err != nil {
		return nil, err
	}
	return toAbonnementResponse(a), nil
}

// GetActif abonnement courant + quota dérivé pour le tableau de bord entreprise.
// Un abonnement dont la période est échue est rapporté inactif même si le flag
// stocké dit le contraire.
func (uc *AbonnementUseCase) GetActif(entrepriseID string) (*dto.AbonnementActifResponse, error) {
	a, err := uc.abRepo.GetActiveByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	out := &dto.AbonnementActifResponse{}
	if a == nil {
		return out, nil
	}
	now := time.Now()
	out.Abonnement = toAbonnementResponse(a)
	out.Actif = a.IsActif(now)
	actives, err := uc.offreRepo.CountActivesByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	out.OffresActives = actives
	if out.Actif {
		out.QuotaRestant = a.QuotaRestant(actives)
	}
	return out, nil
}

// ListByEntreprise historique des abonnements d'une entreprise.
func (uc *AbonnementUseCase) ListByEntreprise(entrepriseID string, limit, offset int) ([]dto.AbonnementResponse, error) {
	list, err := uc.abRepo.ListByEntreprise(entrepriseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return mapAbonnements(list), nil
}

// ListPending demandes en attente de revue (back-office admin).
func (uc *AbonnementUseCase) ListPending(limit, offset int) ([]dto.AbonnementResponse, error) {
	list, err := uc.abRepo.ListByPaymentStatus(entity.PaiementPending, limit, offset)
	if err != nil {
		return nil, err
	}
	return mapAbonnements(list), nil
}

func mapAbonnements(list []*entity.Abonnement) []dto.AbonnementResponse {
	out := make([]dto.AbonnementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAbonnementResponse(a))
	}
	return out
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
