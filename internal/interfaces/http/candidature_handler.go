package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// CandidatureHandler candidatures côté ingénieur et côté entreprise.
type CandidatureHandler struct {
	uc *usecase.CandidatureUseCase
}

// NewCandidatureHandler construit le handler.
func NewCandidatureHandler(uc *usecase.CandidatureUseCase) *CandidatureHandler {
	return &CandidatureHandler{uc: uc}
}

// Apply godoc
// @Summary      Candidature à une offre (ingénieur)
// @Tags         candidatures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID offre"
// @Param        body  body  dto.ApplyRequest  true  "lettre, cv_path"
// @Success      201   {object}  dto.CandidatureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/offres/{id}/candidatures [post]
func (h *CandidatureHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Apply(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOffre godoc
// @Summary      Candidatures reçues sur une offre (entreprise propriétaire)
// @Tags         candidatures
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID offre"
// @Success      200  {array}  dto.CandidatureResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/offres/{id}/candidatures [get]
func (h *CandidatureHandler) ListByOffre(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListByOffre(GetUserID(c), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Candidatures de l'ingénieur connecté
// @Tags         candidatures
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CandidatureResponse
// @Router       /api/candidatures [get]
func (h *CandidatureHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListMine(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Décision sur une candidature (entreprise propriétaire de l'offre)
// @Tags         candidatures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID candidature"
// @Param        body  body  dto.UpdateCandidatureStatusRequest  true  "statut"
// @Success      200   {object}  dto.CandidatureResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/candidatures/{id} [put]
func (h *CandidatureHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateCandidatureStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.UpdateStatus(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
