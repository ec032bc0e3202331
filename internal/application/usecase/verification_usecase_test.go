package usecase_test

import (
	"context"
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

type verifFixture struct {
	ings     *fakeIngenieurRepo
	refs     *fakeReferenceRepo
	verifs   *fakeVerificationRepo
	uploader *fakeUploader
	notifier *fakeNotifier
	uc       *usecase.VerificationUseCase
}

func newVerifFixture() *verifFixture {
	ings := newFakeIngenieurRepo()
	refs := newFakeReferenceRepo(ings)
	verifs := newFakeVerificationRepo()
	up := &fakeUploader{}
	nt := &fakeNotifier{}
	return &verifFixture{
		ings:     ings,
		refs:     refs,
		verifs:   verifs,
		uploader: up,
		notifier: nt,
		uc:       usecase.NewVerificationUseCase(ings, refs, verifs, up, nt),
	}
}

// seedIngenieur insère un ingénieur avec le statut donné et retourne son ID.
func (f *verifFixture) seedIngenieur(t *testing.T, statut string) string {
	t.Helper()
	id := uuid.New().String()
	err := f.ings.Create(&entity.Ingenieur{
		ID:        id,
		NNI:       "NNI-" + id[:8],
		Nom:       "Ingénieur " + id[:8],
		Email:     id[:8] + "@test.mr",
		Statut:    statut,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

// seedParrain insère un ingénieur validé présent dans la liste des références.
func (f *verifFixture) seedParrain(t *testing.T) string {
	t.Helper()
	id := f.seedIngenieur(t, entity.StatutValidated)
	require.NoError(t, f.refs.Add(&entity.ReferenceListItem{
		ID:          uuid.New().String(),
		IngenieurID: id,
		AddedByID:   "admin",
		CreatedAt:   time.Now(),
	}))
	return id
}

func pdf(name string) *usecase.FileUpload {
	return &usecase.FileUpload{Name: name, Data: []byte("%PDF-1.4 test")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dépôt de documents
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadDocuments_RamenePendingDocs(t *testing.T) {
	f := newVerifFixture()
	// Profil déjà validé : tout nouveau dépôt impose une nouvelle revue.
	id := f.seedIngenieur(t, entity.StatutValidated)

	res, err := f.uc.UploadDocuments(context.Background(), id, usecase.DocumentsUpload{
		Diplome: pdf("diplome.pdf"),
		CNI:     pdf("cni.jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatutPendingDocs, res.Statut,
		"un nouveau dépôt doit repasser le profil en pending_docs")
	require.NotNil(t, res.DiplomePath)
	require.NotNil(t, res.CNIPath)
	assert.Nil(t, res.RecuPaiementPath)
	assert.Len(t, f.uploader.uploads, 2)

	stored, _ := f.ings.GetByID(id)
	assert.Equal(t, entity.StatutPendingDocs, stored.Statut)
	assert.Equal(t, *res.DiplomePath, *stored.DiplomePath)
}

func TestUploadDocuments_AucunFichier(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)

	_, err := f.uc.UploadDocuments(context.Background(), id, usecase.DocumentsUpload{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUploadDocuments_IngenieurInconnu(t *testing.T) {
	f := newVerifFixture()
	_, err := f.uc.UploadDocuments(context.Background(), uuid.New().String(), usecase.DocumentsUpload{Diplome: pdf("d.pdf")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sans stockage objet configuré (CLOUDINARY_URL absente), le port Uploader est nil :
// le dépôt doit être refusé proprement, jamais déréférencer le port.
func TestUploadDocuments_StockageNonConfigure(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)
	sansStockage := usecase.NewVerificationUseCase(f.ings, f.refs, f.verifs, nil, f.notifier)

	_, err := sansStockage.UploadDocuments(context.Background(), id, usecase.DocumentsUpload{
		Diplome: pdf("diplome.pdf"),
		CNI:     pdf("cni.jpg"),
	})
	assert.ErrorIs(t, err, domain.ErrUploadsDisabled)

	stored, _ := f.ings.GetByID(id)
	assert.Nil(t, stored.DiplomePath, "le profil reste intact quand le dépôt est refusé")
}

// ──────────────────────────────────────────────────────────────────────────────
// Revue admin du dossier
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyDocs_ApproveValideDirectement(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)

	res, err := f.uc.VerifyDocs(dto.VerifyDocsRequest{IngenieurID: id, Decision: dto.DecisionApprove})
	require.NoError(t, err)
	assert.Equal(t, entity.StatutValidated, res.Statut)

	stored, _ := f.ings.GetByID(id)
	assert.Equal(t, entity.StatutValidated, stored.Statut)
	require.NotNil(t, stored.ValideVia)
	assert.Equal(t, entity.ValideViaAdmin, *stored.ValideVia, "la voie d'accès doit être admin_approval")
	require.NotNil(t, stored.AbonnementExpire, "la validation stampe une cotisation d'un an")
	assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), *stored.AbonnementExpire, time.Minute)

	require.NotNil(t, f.notifier.last())
	assert.Equal(t, "Dossier approuvé", f.notifier.last().Subject)
}

func TestVerifyDocs_ApproveWithReference(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)

	_, err := f.uc.VerifyDocs(dto.VerifyDocsRequest{IngenieurID: id, Decision: dto.DecisionApproveWithReference})
	require.NoError(t, err)

	stored, _ := f.ings.GetByID(id)
	assert.Equal(t, entity.StatutPendingReference, stored.Statut)
	assert.Nil(t, stored.ValideVia, "pas encore validé tant que le parrainage n'a pas abouti")
	assert.Nil(t, stored.AbonnementExpire)
}

func TestVerifyDocs_RejectLaisseLeStatutInchange(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)

	_, err := f.uc.VerifyDocs(dto.VerifyDocsRequest{IngenieurID: id, Decision: dto.DecisionReject, Motif: "diplôme illisible"})
	require.NoError(t, err)

	stored, _ := f.ings.GetByID(id)
	assert.Equal(t, entity.StatutPendingDocs, stored.Statut,
		"le rejet ne change pas le statut : l'ingénieur peut redéposer")
	require.NotNil(t, f.notifier.last())
	assert.Equal(t, "Dossier refusé", f.notifier.last().Subject)
	assert.Contains(t, f.notifier.last().Message, "diplôme illisible")
}

func TestVerifyDocs_ReApprouverUnProfilValide(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)

	_, err := f.uc.VerifyDocs(dto.VerifyDocsRequest{IngenieurID: id, Decision: dto.DecisionApprove})
	require.NoError(t, err)

	_, err = f.uc.VerifyDocs(dto.VerifyDocsRequest{IngenieurID: id, Decision: dto.DecisionApprove})
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"ré-approuver un profil déjà validé est un état invalide, pas un no-op")
}

func TestVerifyDocs_DecisionInconnue(t *testing.T) {
	f := newVerifFixture()
	id := f.seedIngenieur(t, entity.StatutPendingDocs)

	_, err := f.uc.VerifyDocs(dto.VerifyDocsRequest{IngenieurID: id, Decision: "peut-être"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sélection du parrain
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectReference_CreeLaDemandeEtNotifieLeParrain(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)

	res, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationPending, res.Statut)
	assert.Equal(t, demandeur, res.DemandeurID)
	assert.Equal(t, parrain, res.ParrainID)

	require.NotNil(t, f.notifier.last())
	assert.Equal(t, "Demande de parrainage", f.notifier.last().Subject)
}

func TestSelectReference_ParrainHorsListe(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	// Validé mais jamais ajouté à la liste des références.
	horsListe := f.seedIngenieur(t, entity.StatutValidated)

	_, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: horsListe})
	assert.ErrorIs(t, err, domain.ErrNotSponsor)
}

func TestSelectReference_DemandeurMauvaisStatut(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingDocs)
	parrain := f.seedParrain(t)

	_, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"seul un demandeur en pending_reference peut choisir un parrain")
}

func TestSelectReference_UneSeuleDemandePendante(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	autreParrain := f.seedParrain(t)

	_, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	_, err = f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: autreParrain})
	assert.ErrorIs(t, err, domain.ErrPendingExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Réponse du parrain
// ──────────────────────────────────────────────────────────────────────────────

func TestRespondReference_ConfirmValideLeDemandeur(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	v, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	res, err := f.uc.RespondReference(parrain, dto.RespondReferenceRequest{VerificationID: v.ID, Decision: "confirm"})
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationConfirmed, res.Statut)
	require.NotNil(t, res.RespondedAt)

	stored, _ := f.ings.GetByID(demandeur)
	assert.Equal(t, entity.StatutValidated, stored.Statut)
	require.NotNil(t, stored.ValideVia)
	assert.Equal(t, entity.ValideViaParrain, *stored.ValideVia, "la voie d'accès doit être sponsor_confirmation")
	require.NotNil(t, stored.AbonnementExpire)
	assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), *stored.AbonnementExpire, time.Minute)

	assert.Equal(t, "Parrainage confirmé", f.notifier.last().Subject)
}

func TestRespondReference_RejectEnregistreLeMotif(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	v, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	res, err := f.uc.RespondReference(parrain, dto.RespondReferenceRequest{
		VerificationID: v.ID, Decision: "reject", Motif: "je ne connais pas ce confrère",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationRejected, res.Statut)
	require.NotNil(t, res.Motif)
	assert.Equal(t, "je ne connais pas ce confrère", *res.Motif)

	stored, _ := f.ings.GetByID(demandeur)
	assert.Equal(t, entity.StatutPendingReference, stored.Statut,
		"le rejet du parrain ne valide pas le demandeur")
	assert.Contains(t, f.notifier.last().Message, "siège")
}

func TestRespondReference_MauvaisParrain(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	autreParrain := f.seedParrain(t)
	v, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	_, err = f.uc.RespondReference(autreParrain, dto.RespondReferenceRequest{VerificationID: v.ID, Decision: "confirm"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"seul le parrain assigné peut répondre à la demande")
}

func TestRespondReference_ParrainRetireDeLaListe(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	v, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	// L'admin retire le parrain entre la demande et la réponse.
	require.NoError(t, f.uc.RemoveReference(parrain))

	_, err = f.uc.RespondReference(parrain, dto.RespondReferenceRequest{VerificationID: v.ID, Decision: "confirm"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRespondReference_DemandeDejaTraitee(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	v, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	_, err = f.uc.RespondReference(parrain, dto.RespondReferenceRequest{VerificationID: v.ID, Decision: "confirm"})
	require.NoError(t, err)

	_, err = f.uc.RespondReference(parrain, dto.RespondReferenceRequest{VerificationID: v.ID, Decision: "reject"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestion de la liste des références
// ──────────────────────────────────────────────────────────────────────────────

func TestAddReference_ExigeUnProfilValide(t *testing.T) {
	f := newVerifFixture()
	nonValide := f.seedIngenieur(t, entity.StatutPendingDocs)

	err := f.uc.AddReference("admin", dto.AddReferenceRequest{IngenieurID: nonValide})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	valide := f.seedIngenieur(t, entity.StatutValidated)
	require.NoError(t, f.uc.AddReference("admin", dto.AddReferenceRequest{IngenieurID: valide}))

	refs, err := f.uc.ListReferences()
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, valide, refs[0].IngenieurID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultation des demandes
// ──────────────────────────────────────────────────────────────────────────────

func TestDemandeEnCours(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)

	out, err := f.uc.DemandeEnCours(demandeur)
	require.NoError(t, err)
	assert.Nil(t, out, "aucune demande : la réponse est null, pas une erreur")

	v, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	out, err = f.uc.DemandeEnCours(demandeur)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, v.ID, out.ID)

	// Une fois traitée, plus rien en cours.
	_, err = f.uc.RespondReference(parrain, dto.RespondReferenceRequest{VerificationID: v.ID, Decision: "confirm"})
	require.NoError(t, err)
	out, err = f.uc.DemandeEnCours(demandeur)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListForParrainEtDemandeur(t *testing.T) {
	f := newVerifFixture()
	demandeur := f.seedIngenieur(t, entity.StatutPendingReference)
	parrain := f.seedParrain(t)
	_, err := f.uc.SelectReference(demandeur, dto.SelectReferenceRequest{ParrainID: parrain})
	require.NoError(t, err)

	recues, err := f.uc.ListForParrain(parrain, 20, 0)
	require.NoError(t, err)
	require.Len(t, recues, 1)
	assert.Equal(t, demandeur, recues[0].DemandeurID)

	emises, err := f.uc.ListForDemandeur(demandeur, 20, 0)
	require.NoError(t, err)
	require.Len(t, emises, 1)
	assert.Equal(t, parrain, emises[0].ParrainID)

	assert.Empty(t, mustList(t, f, demandeur), "le demandeur n'a reçu aucune demande")
}

func mustList(t *testing.T, f *verifFixture, parrainID string) []dto.VerificationResponse {
	t.Helper()
	out, err := f.uc.ListForParrain(parrainID, 20, 0)
	require.NoError(t, err)
	return out
}

func TestRemoveReference_Inexistante(t *testing.T) {
	f := newVerifFixture()
	err := f.uc.RemoveReference(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
