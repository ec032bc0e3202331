package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// RechercheHandler vérification publique du statut d'un ingénieur.
type RechercheHandler struct {
	uc *usecase.RechercheUseCase
}

// NewRechercheHandler construit le handler.
func NewRechercheHandler(uc *usecase.RechercheUseCase) *RechercheHandler {
	return &RechercheHandler{uc: uc}
}

// Search godoc
// @Summary      Vérification publique d'un ingénieur (NNI ou nom)
// @Description  Retourne found=false pour un profil inconnu comme pour un profil inactif : l'extérieur ne distingue pas les deux.
// @Tags         public
// @Produce      json
// @Param        q  query  string  true  "NNI (chiffres) ou nom"
// @Success      200  {object}  dto.RechercheResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/recherche [get]
func (h *RechercheHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre q requis"})
	}
	out, err := h.uc.Search(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
