package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Statuts de commande côté back-office.
const (
	StatutEnAttente = "en_attente"
	StatutConfirmee = "confirmee"
	StatutExpediee  = "expediee"
	StatutLivree    = "livree"
	StatutAnnulee   = "annulee"
)

// StatutValide indique si s est un statut de commande connu.
func StatutValide(s string) bool {
	switch s {
	case StatutEnAttente, StatutConfirmee, StatutExpediee, StatutLivree, StatutAnnulee:
		return true
	}
	return false
}

// Commande représente une commande e-commerce telle que stockée : c'est l'entrée
// des trois documents commerciaux (bon de livraison, devis, facture boutique).
// Le sous-système de composition ne la modifie jamais.
//
// Les montants sont des NullDecimal : absent et zéro sont deux états distincts,
// les formules de totaux appliquent leur propre valeur par défaut au point d'usage.
type Commande struct {
	ID          string
	Numero      string // numéro de document principal
	NumeroBL    string // numéro spécifique bon de livraison (vide = Numero)
	NumeroDevis string // numéro spécifique devis (vide = Numero)

	// Bloc client
	ClientNom        string
	ClientAdresse    string
	ClientVille      string
	ClientCodePostal string
	ClientPays       string
	ClientEmail      string
	ClientTel        string

	// Bloc livraison (optionnel, selon la variante de document)
	LivraisonNom     string
	LivraisonAdresse string
	LivraisonTel     string
	DateLivraison    *time.Time

	// Bloc commercial
	ModePaiement string
	Statut       string
	PrixHT       decimal.NullDecimal
	PrixTTC      decimal.NullDecimal
	Remise       decimal.NullDecimal
	TVA          decimal.NullDecimal
	Timbre       decimal.NullDecimal

	// Articles achetés : trois collections historiques, chacune pouvant être un
	// tableau JSON, un objet seul ou absente. La normalisation se fait dans le
	// package document (priorité cart > products > items).
	Cart     json.RawMessage
	Products json.RawMessage
	Items    json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}
