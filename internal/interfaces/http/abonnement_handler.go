package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// AbonnementHandler demandes d'abonnement côté entreprise, revue côté admin.
type AbonnementHandler struct {
	uc *usecase.AbonnementUseCase
}

// NewAbonnementHandler construit le handler.
func NewAbonnementHandler(uc *usecase.AbonnementUseCase) *AbonnementHandler {
	return &AbonnementHandler{uc: uc}
}

// Request godoc
// @Summary      Demande d'abonnement (entreprise validée)
// @Tags         abonnements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RequestAbonnementRequest  true  "plan, recu_url"
// @Success      201   {object}  dto.AbonnementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/abonnements [post]
func (h *AbonnementHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestAbonnementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Request(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetActif godoc
// @Summary      Abonnement courant + quota (tableau de bord entreprise)
// @Tags         abonnements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AbonnementActifResponse
// @Router       /api/abonnements/actif [get]
func (h *AbonnementHandler) GetActif(c *fiber.Ctx) error {
	out, err := h.uc.GetActif(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Historique des abonnements de l'entreprise connectée
// @Tags         abonnements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AbonnementResponse
// @Router       /api/abonnements [get]
func (h *AbonnementHandler) ListMine(c *fiber.Ctx) error {
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

// ListPending godoc
// @Summary      File des demandes d'abonnement en attente (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AbonnementResponse
// @Router       /api/admin/abonnements/pending [get]
func (h *AbonnementHandler) ListPending(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListPending(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Activation d'un abonnement après vérification du paiement (admin)
// @Description  Désactive l'abonnement actif précédent et active celui-ci dans la même transaction.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID abonnement"
// @Param        body  body  dto.ApproveAbonnementRequest  true  "dates optionnelles, notes"
// @Success      200   {object}  dto.AbonnementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/abonnements/{id}/approuver [post]
func (h *AbonnementHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveAbonnementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Approve(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rejet d'une demande d'abonnement (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID abonnement"
// @Success      200  {object}  dto.AbonnementResponse
// @Router       /api/admin/abonnements/{id}/rejeter [post]
func (h *AbonnementHandler) Reject(c *fiber.Ctx) error {
	var in struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Reject(GetUserID(c), c.Params("id"), in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Désactivation anticipée d'un abonnement actif (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID abonnement"
// @Param        body  body  dto.DeactivateAbonnementRequest  true  "motif obligatoire"
// @Success      200   {object}  dto.AbonnementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/abonnements/{id}/desactiver [post]
func (h *AbonnementHandler) Deactivate(c *fiber.Ctx) error {
	var in dto.DeactivateAbonnementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Deactivate(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
