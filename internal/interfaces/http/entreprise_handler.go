package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// EntrepriseHandler profil entreprise et opérations admin sur les entreprises.
type EntrepriseHandler struct {
	uc *usecase.EntrepriseUseCase
}

// NewEntrepriseHandler construit le handler.
func NewEntrepriseHandler(uc *usecase.EntrepriseUseCase) *EntrepriseHandler {
	return &EntrepriseHandler{uc: uc}
}

// Me godoc
// @Summary      Profil de l'entreprise connectée
// @Tags         entreprises
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EntrepriseResponse
// @Router       /api/entreprises/me [get]
func (h *EntrepriseHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetProfil(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Mise à jour du profil entreprise
// @Tags         entreprises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateEntrepriseRequest  true  "champs modifiables"
// @Success      200   {object}  dto.EntrepriseResponse
// @Router       /api/entreprises/me [put]
func (h *EntrepriseHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateEntrepriseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.UpdateProfil(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadLogo godoc
// @Summary      Dépôt du logo (multipart, champ "logo")
// @Tags         entreprises
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/entreprises/me/logo [post]
func (h *EntrepriseHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fichier logo requis"})
	}
	b, err := readMultipart(fh)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UploadLogo(c.Context(), GetUserID(c), fh.Filename, b)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Liste des entreprises (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        statut  query  string  false  "en_attente | valide | suspendu"
// @Success      200  {array}  dto.EntrepriseResponse
// @Router       /api/admin/entreprises [get]
func (h *EntrepriseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("statut"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validation d'une entreprise en attente (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID entreprise"
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/entreprises/{id}/valider [post]
func (h *EntrepriseHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suspend godoc
// @Summary      Suspension d'une entreprise (admin) — désactive aussi ses offres
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID entreprise"
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/entreprises/{id}/suspendre [post]
func (h *EntrepriseHandler) Suspend(c *fiber.Ctx) error {
	out, err := h.uc.Suspend(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Suppression définitive d'une entreprise (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID entreprise"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/entreprises/{id} [delete]
func (h *EntrepriseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
