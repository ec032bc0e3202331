package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
)

// respondError traduit une erreur de domaine en réponse HTTP.
// Préconditions d'état non remplies -> 400 ; conflits avec une ressource
// existante -> 409. Une erreur non mappée est journalisée côté serveur et
// le client ne reçoit qu'un message générique.
func respondError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identifiants invalides"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "opération non autorisée"})
	case domain.ErrEmailExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email déjà enregistré"})
	case domain.ErrNNIExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NNI_EXISTS", Message: "NNI déjà enregistré"})
	case domain.ErrNIFExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NIF_EXISTS", Message: "NIF déjà enregistré"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ressource dupliquée"})
	case domain.ErrPendingExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PENDING_EXISTS", Message: "une demande en attente existe déjà"})
	case domain.ErrAlreadyApplied:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_APPLIED", Message: "candidature déjà soumise pour cette offre"})
	case domain.ErrNotSponsor:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_SPONSOR", Message: "le parrain choisi n'est pas dans la liste des références"})
	case domain.ErrQuotaExceeded:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUOTA_EXCEEDED", Message: "quota d'offres actives du plan atteint"})
	case domain.ErrNoActiveAbonnement:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_SUBSCRIPTION", Message: "aucun abonnement actif"})
	case domain.ErrDeadlinePassed:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DEADLINE_PASSED", Message: "la date limite de l'offre est dépassée"})
	case domain.ErrInvalidState:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "état incompatible avec l'opération"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflit avec l'état courant"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrée invalide"})
	case domain.ErrUploadsDisabled:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UPLOADS_DISABLED", Message: "téléversement de fichiers indisponible"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erreur interne non mappée")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erreur interne"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}
