package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// respondWith monte une route qui répond l'erreur donnée via respondError
// et retourne le statut et le corps décodé.
func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/err", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRespondError_CodesHTTP(t *testing.T) {
	cases := []struct {
		nom    string
		err    error
		status int
		code   string
	}{
		{"introuvable", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"non authentifie", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"interdit", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"email en double", domain.ErrEmailExists, http.StatusConflict, "EMAIL_EXISTS"},
		{"NNI en double", domain.ErrNNIExists, http.StatusConflict, "NNI_EXISTS"},
		{"NIF en double", domain.ErrNIFExists, http.StatusConflict, "NIF_EXISTS"},
		{"demande deja en attente", domain.ErrPendingExists, http.StatusConflict, "PENDING_EXISTS"},
		{"double candidature", domain.ErrAlreadyApplied, http.StatusConflict, "ALREADY_APPLIED"},
		{"parrain hors liste", domain.ErrNotSponsor, http.StatusBadRequest, "NOT_SPONSOR"},
		{"quota atteint", domain.ErrQuotaExceeded, http.StatusConflict, "QUOTA_EXCEEDED"},
		{"sans abonnement actif", domain.ErrNoActiveAbonnement, http.StatusBadRequest, "NO_ACTIVE_SUBSCRIPTION"},
		{"date limite passee", domain.ErrDeadlinePassed, http.StatusBadRequest, "DEADLINE_PASSED"},
		{"etat incompatible", domain.ErrInvalidState, http.StatusBadRequest, "INVALID_STATE"},
		{"entree invalide", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"uploads desactives", domain.ErrUploadsDisabled, http.StatusServiceUnavailable, "UPLOADS_DISABLED"},
	}
	for _, tc := range cases {
		t.Run(tc.nom, func(t *testing.T) {
			status, body := respondWith(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// Une erreur non mappée ne doit jamais exposer son texte au client : le corps
// reste générique, le détail part dans le journal serveur.
func TestRespondError_ErreurInterneGenerique(t *testing.T) {
	interne := errors.New("pgx: connexion refusée sur 10.0.0.3:5432")

	status, body := respondWith(t, interne)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "erreur interne", body.Message)
	assert.NotContains(t, body.Message, "pgx")
	assert.NotContains(t, body.Message, "10.0.0.3")
}
