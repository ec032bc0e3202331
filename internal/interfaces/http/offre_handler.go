package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// OffreHandler publication et consultation des offres d'emploi.
type OffreHandler struct {
	uc *usecase.OffreUseCase
}

// NewOffreHandler construit le handler.
func NewOffreHandler(uc *usecase.OffreUseCase) *OffreHandler {
	return &OffreHandler{uc: uc}
}

// Create godoc
// @Summary      Publication d'une offre (entreprise validée et abonnée)
// @Tags         offres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOffreRequest  true  "offre"
// @Success      201   {object}  dto.OffreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/offres [post]
func (h *OffreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOffreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Mise à jour d'une offre (entreprise propriétaire)
// @Tags         offres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID offre"
// @Param        body  body  dto.UpdateOffreRequest  true  "offre"
// @Success      200   {object}  dto.OffreResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/offres/{id} [put]
func (h *OffreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOffreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Retrait d'une offre (désactivation logique, entreprise propriétaire)
// @Tags         offres
// @Security     BearerAuth
// @Param        id  path  string  true  "ID offre"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/offres/{id} [delete]
func (h *OffreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listing public des offres actives
// @Tags         offres
// @Produce      json
// @Param        domaines  query  string  false  "domaines séparés par virgule"
// @Param        q         query  string  false  "recherche plein texte titre/description"
// @Success      200  {object}  dto.OffreListResponse
// @Router       /api/offres [get]
func (h *OffreHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	var domaines []string
	if raw := c.Query("domaines"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				domaines = append(domaines, d)
			}
		}
	}
	out, err := h.uc.List(domaines, c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Offres de l'entreprise connectée (actives et inactives)
// @Tags         offres
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OffreListResponse
// @Router       /api/entreprises/me/offres [get]
func (h *OffreHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListByEntreprise(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Détail d'une offre
// @Tags         offres
// @Produce      json
// @Param        id  path  string  true  "ID offre"
// @Success      200  {object}  dto.OffreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offres/{id} [get]
func (h *OffreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterView godoc
// @Summary      Enregistrement d'une consultation d'offre (ingénieur connecté)
// @Description  Idempotent par paire (offre, ingénieur) : la première vue incrémente le compteur.
// @Tags         offres
// @Security     BearerAuth
// @Param        id  path  string  true  "ID offre"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offres/{id}/vue [post]
func (h *OffreHandler) RegisterView(c *fiber.Ctx) error {
	if err := h.uc.RegisterView(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
