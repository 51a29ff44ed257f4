package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/wajdibz/boutika-api/internal/application/documents"
	"github.com/wajdibz/boutika-api/internal/application/dto"
	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/document"
)

// DocumentHandler sert les documents commerciaux d'une commande en PDF.
type DocumentHandler struct {
	uc *documents.UseCase
}

// NewDocumentHandler construit le handler.
func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Telecharger godoc
// @Summary      Télécharger un document commercial (PDF)
// @Description  Compose et rend le bon de livraison, le devis ou la facture d'une commande.
//               Le PDF est servi inline pour déclencher l'aperçu d'impression du navigateur.
// @Tags         documents
// @Produce      application/pdf
// @Param        numero  path  string  true  "numéro de commande"
// @Param        type    path  string  true  "bon-livraison | devis | facture"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/commandes/{numero}/documents/{type} [get]
func (h *DocumentHandler) Telecharger(c *fiber.Ctx) error {
	numero := c.Params("numero")
	if numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numéro de commande requis"})
	}

	variante, ok := document.VarianteFromSlug(c.Params("type"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type de document inconnu (bon-livraison, devis, facture)"})
	}

	pdfBytes, filename, err := h.uc.TelechargerDocumentPDF(c.Context(), numero, variante)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "commande introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	// Inline plutôt qu'attachment : le navigateur affiche le PDF et peut
	// enchaîner directement sur l'impression.
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdfBytes)
}
