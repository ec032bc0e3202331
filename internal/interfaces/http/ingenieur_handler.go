package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/application/usecase"
)

// IngenieurHandler profil de l'ingénieur connecté, dépôt de documents, attestation,
// et opérations admin sur les ingénieurs.
type IngenieurHandler struct {
	uc      *usecase.IngenieurUseCase
	verifUC *usecase.VerificationUseCase
}

// NewIngenieurHandler construit le handler.
func NewIngenieurHandler(uc *usecase.IngenieurUseCase, verifUC *usecase.VerificationUseCase) *IngenieurHandler {
	return &IngenieurHandler{uc: uc, verifUC: verifUC}
}

// Me godoc
// @Summary      Profil de l'ingénieur connecté
// @Tags         ingenieurs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.IngenieurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingenieurs/me [get]
func (h *IngenieurHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetProfil(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Mise à jour du profil
// @Tags         ingenieurs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateIngenieurRequest  true  "champs modifiables"
// @Success      200   {object}  dto.IngenieurResponse
// @Router       /api/ingenieurs/me [put]
func (h *IngenieurHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateIngenieurRequest
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

// UploadDocuments godoc
// @Summary      Dépôt des documents du dossier (multipart)
// @Description  Champs de fichier : diplome, cni, recu_paiement. Chaque dépôt repasse le statut à pending_docs.
// @Tags         ingenieurs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UploadDocumentsResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/ingenieurs/me/documents [post]
func (h *IngenieurHandler) UploadDocuments(c *fiber.Ctx) error {
	docs := usecase.DocumentsUpload{}
	var err error
	if docs.Diplome, err = formFile(c, "diplome"); err != nil {
		return validationError(c, err)
	}
	if docs.CNI, err = formFile(c, "cni"); err != nil {
		return validationError(c, err)
	}
	if docs.RecuPaiement, err = formFile(c, "recu_paiement"); err != nil {
		return validationError(c, err)
	}
	if docs.Diplome == nil && docs.CNI == nil && docs.RecuPaiement == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "au moins un fichier est requis (diplome, cni ou recu_paiement)"})
	}
	out, err := h.verifUC.UploadDocuments(c.Context(), GetUserID(c), docs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Attestation godoc
// @Summary      Téléchargement de l'attestation d'inscription (PDF)
// @Description  Réservée aux ingénieurs actifs (validés, cotisation à jour).
// @Tags         ingenieurs
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/ingenieurs/me/attestation [get]
func (h *IngenieurHandler) Attestation(c *fiber.Ctx) error {
	b, err := h.uc.Attestation(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attestation-omigec.pdf"`)
	return c.Send(b)
}

// List godoc
// @Summary      Liste des ingénieurs (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        statut  query  string  false  "pending_docs | pending_reference | validated | suspended"
// @Success      200  {array}  dto.IngenieurResponse
// @Router       /api/admin/ingenieurs [get]
func (h *IngenieurHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Détail d'un ingénieur (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID ingénieur"
// @Success      200  {object}  dto.IngenieurResponse
// @Router       /api/admin/ingenieurs/{id} [get]
func (h *IngenieurHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProfil(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suspend godoc
// @Summary      Suspension d'un ingénieur validé (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID ingénieur"
// @Success      200  {object}  dto.IngenieurResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/ingenieurs/{id}/suspendre [post]
func (h *IngenieurHandler) Suspend(c *fiber.Ctx) error {
	out, err := h.uc.Suspend(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Suppression d'un ingénieur (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID ingénieur"
// @Success      204
// @Router       /api/admin/ingenieurs/{id} [delete]
func (h *IngenieurHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// formFile lit un champ fichier multipart optionnel (nil si absent).
func formFile(c *fiber.Ctx, field string) (*usecase.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil // champ absent
	}
	b, err := readMultipart(fh)
	if err != nil {
		return nil, err
	}
	return &usecase.FileUpload{Name: fh.Filename, Data: b}, nil
}

func readMultipart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
