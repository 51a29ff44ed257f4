package document

import (
	"github.com/shopspring/decimal"

	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

var cent = decimal.NewFromInt(100)

// Parametres valeurs fiscales injectées depuis la configuration.
type Parametres struct {
	TauxTVA       decimal.Decimal // taux de TVA standard (0.19)
	TimbreDevis   decimal.Decimal // timbre fiscal par défaut d'un devis
	TimbreFacture decimal.Decimal // timbre fiscal par défaut d'une facture boutique
}

// DefaultParametres renvoie les valeurs en vigueur (TVA 19%, timbre devis
// 0.600 TND, timbre facture 1.000 TND).
func DefaultParametres() Parametres {
	return Parametres{
		TauxTVA:       decimal.RequireFromString("0.19"),
		TimbreDevis:   decimal.RequireFromString("0.600"),
		TimbreFacture: decimal.RequireFromString("1.000"),
	}
}

// Totaux montants dérivés d'une commande pour un rendu. Jamais persistés,
// recalculés à chaque composition. L'arrondi est purement affichage : ces
// valeurs restent exactes pour la conversion en lettres.
type Totaux struct {
	HT                decimal.Decimal
	TVA               decimal.Decimal
	Timbre            decimal.Decimal
	Remise            decimal.Decimal
	PourcentageRemise decimal.Decimal
	TTC               decimal.Decimal
}

// CalculerTotaux applique la formule de la variante. Les trois formules sont
// volontairement séparées : leurs champs source de vérité diffèrent (lignes
// pour le BL, TTC stocké pour le devis, HT stocké pour la facture) et elles
// ne doivent jamais être fusionnées en une formule générique.
func CalculerTotaux(v Variante, c *entity.Commande, lignes []Ligne, p Parametres) Totaux {
	if c == nil {
		return Totaux{}
	}
	switch v {
	case BonLivraison:
		return totauxBonLivraison(c, lignes)
	case Devis:
		return totauxDevis(c, p)
	case FactureBoutique:
		return totauxFacture(c, p)
	default:
		return Totaux{}
	}
}

// totauxBonLivraison : HT recalculé en avant depuis les lignes normalisées
// (le champ HT stocké est ignoré), remise en valeur et en pourcentage,
// TTC stocké avec repli sur le HT.
func totauxBonLivraison(c *entity.Commande, lignes []Ligne) Totaux {
	ht := decimal.Zero
	for _, l := range lignes {
		ht = ht.Add(l.TotalHT())
	}
	remise := ouDefaut(c.Remise, decimal.Zero)

	// Garde explicite : HT nul donne 0%, jamais une division par zéro.
	pct := decimal.Zero
	if !ht.IsZero() {
		pct = remise.Div(ht).Mul(cent)
	}

	return Totaux{
		HT:                ht,
		Remise:            remise,
		PourcentageRemise: pct,
		TTC:               ouDefaut(c.PrixTTC, ht),
	}
}

// totauxDevis : décomposition descendante à partir du TTC stocké.
// baseTTC = TTC − timbre, HT = baseTTC / (1 + taux), TVA = baseTTC − HT.
// Les montants HT/TVA par ligne du tableau sont informatifs et ne sont pas
// tenus de se réconcilier exactement avec cette décomposition.
func totauxDevis(c *entity.Commande, p Parametres) Totaux {
	ttc := ouDefaut(c.PrixTTC, decimal.Zero)
	timbre := ouDefaut(c.Timbre, p.TimbreDevis)
	base := ttc.Sub(timbre)
	ht := base.Div(decimal.NewFromInt(1).Add(p.TauxTVA))

	return Totaux{
		HT:     ht,
		TVA:    base.Sub(ht),
		Timbre: timbre,
		TTC:    ttc,
	}
}

// totauxFacture : les champs stockés font foi. Le TTC n'est jamais "corrigé"
// en HT+TVA+Timbre, même s'il est incohérent avec les trois autres champs.
func totauxFacture(c *entity.Commande, p Parametres) Totaux {
	ht := ouDefaut(c.PrixHT, decimal.Zero)

	return Totaux{
		HT:     ht,
		TVA:    ouDefaut(c.TVA, ht.Mul(p.TauxTVA)),
		Timbre: ouDefaut(c.Timbre, p.TimbreFacture),
		TTC:    ouDefaut(c.PrixTTC, decimal.Zero),
	}
}

// ouDefaut renvoie la valeur si elle est présente, sinon def. Tout montant
// numérique absent passe par ici : l'absence n'est jamais une erreur.
func ouDefaut(d decimal.NullDecimal, def decimal.Decimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return def
}
