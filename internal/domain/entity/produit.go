package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produit représente un article du catalogue.
type Produit struct {
	ID          string
	SKU         string // référence unique
	Nom         string
	Description string
	Prix        decimal.Decimal // prix de vente TTC
	TauxTVA     decimal.Decimal // pourcentage entier : 0, 7, 13 ou 19
	CategorieID string
	Marque      string
	ImagePath   string
	Statut      string // actif, inactif
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
