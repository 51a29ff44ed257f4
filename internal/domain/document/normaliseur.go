package document

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

// Ligne est une ligne d'article normalisée, prête pour le tableau du document.
type Ligne struct {
	Titre        string
	PrixUnitaire decimal.Decimal
	Quantite     decimal.Decimal
	TVA          decimal.Decimal // TVA par ligne, informative (0 si absente)
}

// TotalHT renvoie PrixUnitaire × Quantite.
func (l Ligne) TotalHT() decimal.Decimal {
	return l.PrixUnitaire.Mul(l.Quantite)
}

// ligneJSON forme brute d'une ligne telle que stockée : chaque champ existe
// sous plusieurs noms historiques, le premier renseigné gagne.
type ligneJSON struct {
	Title       string           `json:"title"`
	Name        string           `json:"name"`
	ProductName string           `json:"product_name"`
	Price       *decimal.Decimal `json:"price"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Qty         *decimal.Decimal `json:"qty"`
	TVA         *decimal.Decimal `json:"tva"`
}

// NormaliserLignes extrait la séquence d'articles achetés d'une commande.
// Les trois collections historiques sont examinées dans l'ordre de priorité
// cart, products, items : d'abord en tant que tableaux non vides, ensuite en
// tant qu'objets seuls (enveloppés dans une séquence à un élément). Aucune
// fusion entre branches : la première qui matche gagne.
//
// Ne retourne jamais d'erreur : une collection absente ou malformée se
// comporte comme vide, et la séquence vide est rendue en aval comme une ligne
// d'information "aucun article" plutôt que de faire échouer le document.
func NormaliserLignes(c *entity.Commande) []Ligne {
	if c == nil {
		return []Ligne{}
	}
	collections := []json.RawMessage{c.Cart, c.Products, c.Items}
	for _, raw := range collections {
		if lignes, ok := decoderTableau(raw); ok {
			return lignes
		}
	}
	for _, raw := range collections {
		if ligne, ok := decoderObjet(raw); ok {
			return []Ligne{ligne}
		}
	}
	return []Ligne{}
}

// decoderTableau tente de lire raw comme un tableau JSON non vide de lignes.
func decoderTableau(raw json.RawMessage) ([]Ligne, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var brutes []ligneJSON
	if err := json.Unmarshal(raw, &brutes); err != nil || len(brutes) == 0 {
		return nil, false
	}
	lignes := make([]Ligne, 0, len(brutes))
	for _, b := range brutes {
		lignes = append(lignes, b.normaliser())
	}
	return lignes, true
}

// decoderObjet tente de lire raw comme un objet JSON seul (ni tableau ni null).
func decoderObjet(raw json.RawMessage) (Ligne, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return Ligne{}, false
	}
	var brute ligneJSON
	if err := json.Unmarshal(raw, &brute); err != nil {
		return Ligne{}, false
	}
	return brute.normaliser(), true
}

// normaliser applique les synonymes de champs et les valeurs par défaut :
// prix 0, quantité 1, TVA 0.
func (b ligneJSON) normaliser() Ligne {
	titre := premierNonVide(b.Title, b.Name, b.ProductName)
	prix := premierPresent(decimal.Zero, b.Price, b.UnitPrice)
	quantite := premierPresent(decimal.NewFromInt(1), b.Quantity, b.Qty)
	tva := premierPresent(decimal.Zero, b.TVA)
	return Ligne{
		Titre:        titre,
		PrixUnitaire: prix,
		Quantite:     quantite,
		TVA:          tva,
	}
}

func premierNonVide(valeurs ...string) string {
	for _, v := range valeurs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func premierPresent(def decimal.Decimal, valeurs ...*decimal.Decimal) decimal.Decimal {
	for _, v := range valeurs {
		if v != nil {
			return *v
		}
	}
	return def
}
