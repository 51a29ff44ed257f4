package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wajdibz/boutika-api/internal/application/dto"
	"github.com/wajdibz/boutika-api/internal/application/usecase"
	"github.com/wajdibz/boutika-api/internal/domain"
)

// CommandeHandler consultation et suivi des commandes (protégé).
type CommandeHandler struct {
	uc *usecase.CommandeUseCase
}

// NewCommandeHandler construit le handler.
func NewCommandeHandler(uc *usecase.CommandeUseCase) *CommandeHandler {
	return &CommandeHandler{uc: uc}
}

// List liste les commandes avec filtre de statut optionnel.
// GET /api/commandes?statut=&limit=&offset=
func (h *CommandeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètres de pagination invalides"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("statut"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByNumero obtient une commande par numéro.
// GET /api/commandes/:numero
func (h *CommandeHandler) GetByNumero(c *fiber.Ctx) error {
	numero := c.Params("numero")
	if numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numéro requis"})
	}
	out, err := h.uc.GetByNumero(numero)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "commande introuvable"})
	}
	return c.JSON(out)
}

// UpdateStatut change le statut d'une commande.
// PATCH /api/commandes/:numero/statut
func (h *CommandeHandler) UpdateStatut(c *fiber.Ctx) error {
	numero := c.Params("numero")
	if numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numéro requis"})
	}
	var in dto.UpdateStatutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.UpdateStatut(numero, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "commande introuvable"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut inconnu"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
