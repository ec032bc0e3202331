package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/auth"
	"github.com/omigec/plateforme-api/internal/application/dto"
)

// AuthHandler gère les inscriptions et le login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construit le handler d'auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterIngenieur godoc
// @Summary      Inscription d'un ingénieur
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterIngenieurRequest  true  "profil et identifiants"
// @Success      201   {object}  dto.IngenieurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register/ingenieur [post]
func (h *AuthHandler) RegisterIngenieur(c *fiber.Ctx) error {
	var in dto.RegisterIngenieurRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.RegisterIngenieur(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterEntreprise godoc
// @Summary      Inscription d'une entreprise
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntrepriseRequest  true  "profil et identifiants"
// @Success      201   {object}  dto.EntrepriseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register/entreprise [post]
func (h *AuthHandler) RegisterEntreprise(c *fiber.Ctx) error {
	var in dto.RegisterEntrepriseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.RegisterEntreprise(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Connexion (ingénieur ou entreprise)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
