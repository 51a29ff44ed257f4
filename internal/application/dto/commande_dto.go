package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommandeResponse sortie d'une commande pour le back-office.
type CommandeResponse struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numero"`
	NumeroBL      string          `json:"numero_bl,omitempty"`
	NumeroDevis   string          `json:"numero_devis,omitempty"`
	ClientNom     string          `json:"client_nom"`
	ClientEmail   string          `json:"client_email"`
	ClientTel     string          `json:"client_tel"`
	ClientVille   string          `json:"client_ville"`
	ModePaiement  string          `json:"mode_paiement"`
	Statut        string          `json:"statut"`
	PrixHT        decimal.Decimal `json:"prix_ht"`
	PrixTTC       decimal.Decimal `json:"prix_ttc"`
	Remise        decimal.Decimal `json:"remise"`
	NombreLignes  int             `json:"nombre_lignes"`
	DateLivraison *time.Time      `json:"date_livraison,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CommandeListResponse liste paginée de commandes.
type CommandeListResponse struct {
	Items []CommandeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// UpdateStatutRequest entrée pour changer le statut d'une commande.
type UpdateStatutRequest struct {
	Statut string `json:"statut" validate:"required,oneof=en_attente confirmee expediee livree annulee"`
}
