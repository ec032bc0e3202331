package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// VerificationHandler revue de dossiers, parrainage et liste des références.
type VerificationHandler struct {
	uc *usecase.VerificationUseCase
}

// NewVerificationHandler construit le handler.
func NewVerificationHandler(uc *usecase.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

// VerifyDocs godoc
// @Summary      Revue d'un dossier de documents (admin)
// @Description  Décisions : approve (validation directe), approve_with_reference (passage au parrainage), reject.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.VerifyDocsRequest  true  "ingenieur_id, decision, motif"
// @Success      200   {object}  dto.IngenieurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/verifications/documents [post]
func (h *VerificationHandler) VerifyDocs(c *fiber.Ctx) error {
	var in dto.VerifyDocsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.VerifyDocs(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListReferences godoc
// @Summary      Liste des parrains disponibles
// @Tags         verifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ReferenceResponse
// @Router       /api/references [get]
func (h *VerificationHandler) ListReferences(c *fiber.Ctx) error {
	out, err := h.uc.ListReferences()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SelectReference godoc
// @Summary      Choix d'un parrain par un ingénieur en pending_reference
// @Tags         verifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SelectReferenceRequest  true  "parrain_id"
// @Success      201   {object}  dto.VerificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/verifications [post]
func (h *VerificationHandler) SelectReference(c *fiber.Ctx) error {
	var in dto.SelectReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.SelectReference(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RespondReference godoc
// @Summary      Réponse du parrain à une demande de parrainage
// @Tags         verifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RespondReferenceRequest  true  "verification_id, decision, motif"
// @Success      200   {object}  dto.VerificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/verifications/repondre [post]
func (h *VerificationHandler) RespondReference(c *fiber.Ctx) error {
	var in dto.RespondReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.RespondReference(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListForParrain godoc
// @Summary      Demandes adressées au parrain connecté
// @Tags         verifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.VerificationResponse
// @Router       /api/verifications/recues [get]
func (h *VerificationHandler) ListForParrain(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListForParrain(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListForDemandeur godoc
// @Summary      Demandes de parrainage émises par l'ingénieur connecté
// @Tags         verifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.VerificationResponse
// @Router       /api/verifications/mes-demandes [get]
func (h *VerificationHandler) ListForDemandeur(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListForDemandeur(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DemandeEnCours godoc
// @Summary      Demande de parrainage en attente de l'ingénieur connecté
// @Description  Retourne null si aucune demande n'est en attente.
// @Tags         verifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.VerificationResponse
// @Router       /api/verifications/en-cours [get]
func (h *VerificationHandler) DemandeEnCours(c *fiber.Ctx) error {
	out, err := h.uc.DemandeEnCours(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddReference godoc
// @Summary      Ajout d'un ingénieur validé à la liste des parrains (admin)
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  dto.AddReferenceRequest  true  "ingenieur_id"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/references [post]
func (h *VerificationHandler) AddReference(c *fiber.Ctx) error {
	var in dto.AddReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	if err := h.uc.AddReference(GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// RemoveReference godoc
// @Summary      Retrait d'un parrain de la liste (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID ingénieur"
// @Success      204
// @Router       /api/admin/references/{id} [delete]
func (h *VerificationHandler) RemoveReference(c *fiber.Ctx) error {
	if err := h.uc.RemoveReference(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
