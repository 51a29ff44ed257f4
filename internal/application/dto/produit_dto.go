package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProduitRequest entrée pour créer un produit.
type CreateProduitRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Nom         string          `json:"nom" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Prix        decimal.Decimal `json:"prix"`
	TauxTVA     decimal.Decimal `json:"taux_tva"`
	CategorieID string          `json:"categorie_id" validate:"omitempty,uuid"`
	Marque      string          `json:"marque"`
	ImagePath   string          `json:"image_path"`
}

// UpdateProduitRequest entrée pour mettre à jour un produit (champs optionnels).
type UpdateProduitRequest struct {
	Nom         *string          `json:"nom" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Prix        *decimal.Decimal `json:"prix"`
	TauxTVA     *decimal.Decimal `json:"taux_tva"`
	CategorieID *string          `json:"categorie_id" validate:"omitempty,uuid"`
	Marque      *string          `json:"marque"`
	ImagePath   *string          `json:"image_path"`
	Statut      *string          `json:"statut" validate:"omitempty,oneof=actif inactif"`
}

// ProduitResponse sortie d'un produit.
type ProduitResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Nom         string          `json:"nom"`
	Description string          `json:"description"`
	Prix        decimal.Decimal `json:"prix"`
	TauxTVA     decimal.Decimal `json:"taux_tva"`
	CategorieID string          `json:"categorie_id,omitempty"`
	Marque      string          `json:"marque"`
	ImagePath   string          `json:"image_path"`
	Statut      string          `json:"statut"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProduitListResponse liste paginée de produits.
type ProduitListResponse struct {
	Items []ProduitResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
