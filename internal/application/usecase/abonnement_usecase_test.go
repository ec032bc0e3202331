package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testAdminID = "00000000-0000-0000-0000-00000000admin"

type abonnementFixture struct {
	abs    *fakeAbonnementRepo
	ents   *fakeEntrepriseRepo
	offres *fakeOffreRepo
	uc     *usecase.AbonnementUseCase
}

func newAbonnementFixture() *abonnementFixture {
	abs := newFakeAbonnementRepo()
	ents := newFakeEntrepriseRepo()
	offres := newFakeOffreRepo()
	tx := &fakeTxRunner{ab: abs, offre: offres, ent: ents}
	return &abonnementFixture{
		abs:    abs,
		ents:   ents,
		offres: offres,
		uc:     usecase.NewAbonnementUseCase(abs, ents, offres, tx),
	}
}

func (f *abonnementFixture) seedEntreprise(t *testing.T, statut string) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, f.ents.Create(&entity.Entreprise{
		ID:     id,
		NIF:    "NIF-" + id[:8],
		Nom:    "Entreprise " + id[:8],
		Email:  id[:8] + "@entreprise.mr",
		Statut: statut,
	}))
	return id
}

// requestAndApprove passe une demande starter par le cycle complet jusqu'à l'activation.
func (f *abonnementFixture) requestAndApprove(t *testing.T, entrepriseID string) *dto.AbonnementResponse {
	t.Helper()
	req, err := f.uc.Request(entrepriseID, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	require.NoError(t, err)
	res, err := f.uc.Approve(context.Background(), testAdminID, req.ID, dto.ApproveAbonnementRequest{})
	require.NoError(t, err)
	return res
}

// ──────────────────────────────────────────────────────────────────────────────
// Demande
// ──────────────────────────────────────────────────────────────────────────────

func TestAbonnementRequest_CreeDemandeInactive(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)

	res, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanBusiness})
	require.NoError(t, err)
	assert.False(t, res.IsActive, "la demande reste inactive jusqu'à la revue admin")
	assert.Equal(t, "pending", res.PaymentStatus)
	assert.Equal(t, entity.PlanBusiness, res.Plan)
	assert.Equal(t, "50000.00", res.PrixMensuel, "le prix vient du plan, jamais du client")
}

func TestAbonnementRequest_EntrepriseNonValidee(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseEnAttente)

	_, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAbonnementRequest_PlanInconnu(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)

	_, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: "platine"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAbonnementRequest_UneSeuleDemandeOuverte(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)

	_, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	require.NoError(t, err)

	_, err = f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanPremium})
	assert.ErrorIs(t, err, domain.ErrPendingExists)
}

func TestAbonnementRequest_PanneDuControleDeDoublon(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	panne := errors.New("connexion à la base perdue")
	f.abs.openErr = panne

	_, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	assert.ErrorIs(t, err, panne,
		"une lecture en échec ne doit pas être confondue avec l'absence de doublon")
}

// ──────────────────────────────────────────────────────────────────────────────
// Revue admin : activation / rejet
// ──────────────────────────────────────────────────────────────────────────────

func TestAbonnementApprove_ActiveLaDemande(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)

	res := f.requestAndApprove(t, ent)
	assert.True(t, res.IsActive)
	assert.Equal(t, "verified", res.PaymentStatus)
	require.NotNil(t, res.VerifiedByID)
	assert.Equal(t, testAdminID, *res.VerifiedByID)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), res.ExpiresAt, time.Minute,
		"sans dates explicites, la fenêtre du plan s'applique depuis maintenant")
}

func TestAbonnementApprove_DesactiveLAncienActif(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)

	premier := f.requestAndApprove(t, ent)
	second := f.requestAndApprove(t, ent)

	// Au plus un abonnement actif par entreprise, quel que soit l'historique.
	actif, err := f.abs.GetActiveByEntreprise(ent)
	require.NoError(t, err)
	require.NotNil(t, actif)
	assert.Equal(t, second.ID, actif.ID)

	ancien, err := f.abs.GetByID(premier.ID)
	require.NoError(t, err)
	assert.False(t, ancien.IsActive)
	assert.False(t, ancien.ExpiresAt.After(time.Now()), "l'ancien actif est échu immédiatement")
}

func TestAbonnementApprove_DemandeDejaTraitee(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	res := f.requestAndApprove(t, ent)

	_, err := f.uc.Approve(context.Background(), testAdminID, res.ID, dto.ApproveAbonnementRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAbonnementApprove_EntrepriseSuspendueEntreTemps(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	req, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	require.NoError(t, err)

	e, _ := f.ents.GetByID(ent)
	e.Statut = entity.EntrepriseSuspendue
	require.NoError(t, f.ents.Update(e))

	_, err = f.uc.Approve(context.Background(), testAdminID, req.ID, dto.ApproveAbonnementRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"on n'active pas un abonnement pour une entreprise suspendue")
}

func TestAbonnementReject(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	req, err := f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	require.NoError(t, err)

	res, err := f.uc.Reject(testAdminID, req.ID, "reçu illisible")
	require.NoError(t, err)
	assert.False(t, res.IsActive)
	assert.Equal(t, "rejected", res.PaymentStatus)
	assert.Contains(t, res.Notes, "reçu illisible")

	// La demande rejetée n'est plus ouverte : une nouvelle demande est permise.
	_, err = f.uc.Request(ent, dto.RequestAbonnementRequest{Plan: entity.PlanStarter})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Désactivation admin
// ──────────────────────────────────────────────────────────────────────────────

func TestAbonnementDeactivate(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	res := f.requestAndApprove(t, ent)

	out, err := f.uc.Deactivate(testAdminID, res.ID, dto.DeactivateAbonnementRequest{Motif: "paiement contesté"})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Contains(t, out.Notes, "paiement contesté")
	assert.False(t, out.ExpiresAt.After(time.Now().Add(time.Second)), "l'échéance est ramenée à maintenant")

	_, err = f.uc.Deactivate(testAdminID, res.ID, dto.DeactivateAbonnementRequest{Motif: "encore"})
	assert.ErrorIs(t, err, domain.ErrInvalidState, "désactiver un abonnement inactif est un état invalide")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tableau de bord : activité dérivée et quota
// ──────────────────────────────────────────────────────────────────────────────

func TestGetActif_SansAbonnement(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)

	out, err := f.uc.GetActif(ent)
	require.NoError(t, err)
	assert.Nil(t, out.Abonnement)
	assert.False(t, out.Actif)
	assert.Zero(t, out.QuotaRestant)
}

func TestGetActif_FlagActifMaisEchu(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	res := f.requestAndApprove(t, ent)

	// On force l'échéance dans le passé sans toucher au flag stocké.
	a, _ := f.abs.GetByID(res.ID)
	a.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, f.abs.Update(a))

	out, err := f.uc.GetActif(ent)
	require.NoError(t, err)
	require.NotNil(t, out.Abonnement)
	assert.False(t, out.Actif, "période échue : rapporté inactif même si is_active=true en base")
	assert.Zero(t, out.QuotaRestant, "aucun quota sans abonnement actif")
}

func TestGetActif_QuotaDeduitDesOffresActives(t *testing.T) {
	f := newAbonnementFixture()
	ent := f.seedEntreprise(t, entity.EntrepriseValide)
	f.requestAndApprove(t, ent) // starter : 3 offres max

	now := time.Now()
	for i := 0; i < 2; i++ {
		require.NoError(t, f.offres.Create(&entity.OffreEmploi{
			ID:           uuid.New().String(),
			EntrepriseID: ent,
			Titre:        "Offre",
			IsActive:     true,
			CreatedAt:    now,
		}))
	}

	out, err := f.uc.GetActif(ent)
	require.NoError(t, err)
	assert.True(t, out.Actif)
	assert.Equal(t, 2, out.OffresActives)
	assert.Equal(t, 1, out.QuotaRestant)
}
