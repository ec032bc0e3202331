package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type rechercheFixture struct {
	ings *fakeIngenieurRepo
	uc   *usecase.RechercheUseCase
}

func newRechercheFixture() *rechercheFixture {
	ings := newFakeIngenieurRepo()
	return &rechercheFixture{ings: ings, uc: usecase.NewRechercheUseCase(ings)}
}

// seedActif insère un ingénieur validé dont la cotisation court encore.
func (f *rechercheFixture) seedActif(t *testing.T, nni, nom string) string {
	t.Helper()
	return f.seed(t, nni, nom, entity.StatutValidated, time.Now().Add(30*24*time.Hour))
}

func (f *rechercheFixture) seed(t *testing.T, nni, nom, statut string, expire time.Time) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, f.ings.Create(&entity.Ingenieur{
		ID:               id,
		NNI:              nni,
		Nom:              nom,
		Email:            id[:8] + "@test.mr",
		Statut:           statut,
		AbonnementExpire: &expire,
	}))
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Résolution NNI vs nom
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_ParNNI(t *testing.T) {
	f := newRechercheFixture()
	f.seedActif(t, "1234567890", "Ahmed Ould Mohamed")

	res, err := f.uc.Search("1234567890")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "active", res.Status)
	require.NotNil(t, res.Ingenieur)
	assert.Equal(t, "Ahmed Ould Mohamed", res.Ingenieur.Nom)
}

func TestSearch_NNIAvecSeparateurs(t *testing.T) {
	f := newRechercheFixture()
	f.seedActif(t, "1234567890", "Ahmed Ould Mohamed")

	// Les séparateurs de saisie sont ignorés : seuls les chiffres comptent.
	res, err := f.uc.Search("12-34 56.78/90")
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestSearch_ParNomSansAccents(t *testing.T) {
	f := newRechercheFixture()
	f.seedActif(t, "1234567890", "Aïcha Mint Mokhtar Élève")

	// La saisie sans accents doit matcher le nom accentué.
	res, err := f.uc.Search("aicha mint mokhtar")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "Aïcha Mint Mokhtar Élève", res.Ingenieur.Nom)
}

func TestSearch_PeuDeChiffresTraiteCommeNom(t *testing.T) {
	f := newRechercheFixture()
	f.seedActif(t, "9999999999", "Cabinet 3D Ingénierie")

	// Moins de six chiffres : recherche par nom, pas par NNI.
	res, err := f.uc.Search("cabinet 3d")
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilité : seuls les profils actifs sortent
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_CotisationExpiree(t *testing.T) {
	f := newRechercheFixture()
	f.seed(t, "1234567890", "Ahmed Ould Mohamed", entity.StatutValidated, time.Now().Add(-time.Hour))

	res, err := f.uc.Search("1234567890")
	require.NoError(t, err)
	assert.False(t, res.Found, "cotisation expirée : le profil n'apparaît plus")
	assert.Equal(t, "not_found", res.Status)
	assert.Nil(t, res.Ingenieur)
}

func TestSearch_ProfilNonValide(t *testing.T) {
	f := newRechercheFixture()
	f.seed(t, "1234567890", "Ahmed Ould Mohamed", entity.StatutPendingDocs, time.Now().Add(30*24*time.Hour))

	res, err := f.uc.Search("1234567890")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_ProfilSuspendu(t *testing.T) {
	f := newRechercheFixture()
	f.seed(t, "1234567890", "Ahmed Ould Mohamed", entity.StatutSuspendu, time.Now().Add(30*24*time.Hour))

	res, err := f.uc.Search("Ahmed Ould Mohamed")
	require.NoError(t, err)
	assert.False(t, res.Found,
		"un profil suspendu est indistinguable d'un profil inexistant")
}

func TestSearch_NomHomonymeInactifPuisActif(t *testing.T) {
	f := newRechercheFixture()
	f.seed(t, "1111111111", "Moussa Diallo", entity.StatutValidated, time.Now().Add(-time.Hour))
	f.seedActif(t, "2222222222", "Moussa Diallo")

	// L'homonyme actif doit sortir même si un inactif matche aussi.
	res, err := f.uc.Search("moussa diallo")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "2222222222", res.Ingenieur.NNI)
}

func TestSearch_AucunResultat(t *testing.T) {
	f := newRechercheFixture()

	res, err := f.uc.Search("inconnu au bataillon")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, "not_found", res.Status)
}
