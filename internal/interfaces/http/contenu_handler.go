package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// ContenuHandler actualités, partenaires et messages de contact.
type ContenuHandler struct {
	uc *usecase.ContenuUseCase
}

// NewContenuHandler construit le handler.
func NewContenuHandler(uc *usecase.ContenuUseCase) *ContenuHandler {
	return &ContenuHandler{uc: uc}
}

// CreateArticle godoc
// @Summary      Publication d'une actualité (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateArticleRequest  true  "actualité"
// @Success      201   {object}  dto.ArticleResponse
// @Router       /api/admin/articles [post]
func (h *ContenuHandler) CreateArticle(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CreateArticle(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetArticle godoc
// @Summary      Détail d'une actualité
// @Tags         public
// @Produce      json
// @Param        id  path  string  true  "ID article"
// @Success      200  {object}  dto.ArticleResponse
// @Router       /api/articles/{id} [get]
func (h *ContenuHandler) GetArticle(c *fiber.Ctx) error {
	out, err := h.uc.GetArticle(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListArticles godoc
// @Summary      Liste des actualités
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.ArticleResponse
// @Router       /api/articles [get]
func (h *ContenuHandler) ListArticles(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListArticles(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteArticle godoc
// @Summary      Suppression d'une actualité (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID article"
// @Success      204
// @Router       /api/admin/articles/{id} [delete]
func (h *ContenuHandler) DeleteArticle(c *fiber.Ctx) error {
	if err := h.uc.DeleteArticle(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePartenaire godoc
// @Summary      Ajout d'un partenaire (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePartenaireRequest  true  "partenaire"
// @Success      201   {object}  dto.PartenaireResponse
// @Router       /api/admin/partenaires [post]
func (h *ContenuHandler) CreatePartenaire(c *fiber.Ctx) error {
	var in dto.CreatePartenaireRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CreatePartenaire(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPartenaires godoc
// @Summary      Liste des partenaires
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.PartenaireResponse
// @Router       /api/partenaires [get]
func (h *ContenuHandler) ListPartenaires(c *fiber.Ctx) error {
	out, err := h.uc.ListPartenaires()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeletePartenaire godoc
// @Summary      Suppression d'un partenaire (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID partenaire"
// @Success      204
// @Router       /api/admin/partenaires/{id} [delete]
func (h *ContenuHandler) DeletePartenaire(c *fiber.Ctx) error {
	if err := h.uc.DeletePartenaire(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMessage godoc
// @Summary      Formulaire public de contact
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "message"
// @Success      201   {object}  dto.MessageContactResponse
// @Router       /api/contact [post]
func (h *ContenuHandler) CreateMessage(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CreateMessage(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMessages godoc
// @Summary      Messages de contact reçus (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.MessageContactResponse
// @Router       /api/admin/contact [get]
func (h *ContenuHandler) ListMessages(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListMessages(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarquerLu godoc
// @Summary      Marquage d'un message comme lu (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID message"
// @Success      204
// @Router       /api/admin/contact/{id}/lu [post]
func (h *ContenuHandler) MarquerLu(c *fiber.Ctx) error {
	if err := h.uc.MarquerLu(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
