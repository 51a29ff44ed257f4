package document_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajdibz/boutika-api/internal/domain/document"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// nd construit un NullDecimal présent à partir d'un littéral.
func nd(t *testing.T, s string) decimal.NullDecimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return decimal.NewNullDecimal(d)
}

// egal vérifie l'égalité décimale (indépendante de l'échelle : 25 == 25.000).
func egal(t *testing.T, attendu string, obtenu decimal.Decimal, msg string) {
	t.Helper()
	d, err := decimal.NewFromString(attendu)
	require.NoError(t, err)
	assert.True(t, d.Equal(obtenu), "%s : attendu %s, obtenu %s", msg, attendu, obtenu)
}

func lignesDeTest(t *testing.T) []document.Ligne {
	t.Helper()
	c := &entity.Commande{
		Cart: []byte(`[{"title":"Article A","price":10,"quantity":2},{"title":"Article B","price":5,"quantity":1}]`),
	}
	return document.NormaliserLignes(c)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bon de livraison
// ──────────────────────────────────────────────────────────────────────────────

// Deux lignes {10×2, 5×1} et une remise de 5 : HT=25, remise 20%.
func TestTotauxBonLivraison_RemiseEnPourcentage(t *testing.T) {
	cmd := &entity.Commande{Remise: nd(t, "5")}
	lignes := lignesDeTest(t)

	tot := document.CalculerTotaux(document.BonLivraison, cmd, lignes, document.DefaultParametres())

	egal(t, "25", tot.HT, "HT recalculé depuis les lignes")
	egal(t, "5", tot.Remise, "remise stockée")
	egal(t, "20", tot.PourcentageRemise, "pourcentage de remise")
	egal(t, "25", tot.TTC, "TTC replié sur le HT quand prix_ttc est absent")
}

// Le HT stocké est ignoré : seul le produit prix×quantité des lignes compte.
func TestTotauxBonLivraison_IgnoreLeHTStocke(t *testing.T) {
	cmd := &entity.Commande{PrixHT: nd(t, "999"), PrixTTC: nd(t, "30")}
	lignes := lignesDeTest(t)

	tot := document.CalculerTotaux(document.BonLivraison, cmd, lignes, document.DefaultParametres())

	egal(t, "25", tot.HT, "HT vient des lignes, pas du champ stocké")
	egal(t, "30", tot.TTC, "TTC stocké prioritaire sur le repli")
}

// Commande sans articles : aucun échec, HT=0 et remise 0% (garde division par zéro).
func TestTotauxBonLivraison_SansArticles(t *testing.T) {
	cmd := &entity.Commande{Remise: nd(t, "12")}
	lignes := document.NormaliserLignes(cmd)
	require.Empty(t, lignes)

	tot := document.CalculerTotaux(document.BonLivraison, cmd, lignes, document.DefaultParametres())

	egal(t, "0", tot.HT, "HT nul sans lignes")
	egal(t, "0", tot.PourcentageRemise, "HT nul donne 0%%, jamais NaN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Devis
// ──────────────────────────────────────────────────────────────────────────────

// prix_ttc=119.6 et timbre=0.6 : base 119, HT 100 (119/1.19), TVA 19.
func TestTotauxDevis_DecompositionDepuisTTC(t *testing.T) {
	cmd := &entity.Commande{PrixTTC: nd(t, "119.6"), Timbre: nd(t, "0.6")}

	tot := document.CalculerTotaux(document.Devis, cmd, nil, document.DefaultParametres())

	egal(t, "100", tot.HT, "HT descendant")
	egal(t, "19", tot.TVA, "TVA = base − HT")
	egal(t, "0.6", tot.Timbre, "timbre stocké")
	egal(t, "119.6", tot.TTC, "TTC stocké")
}

// Timbre absent : le timbre par défaut du devis s'applique.
func TestTotauxDevis_TimbreParDefaut(t *testing.T) {
	cmd := &entity.Commande{PrixTTC: nd(t, "119.6")}

	tot := document.CalculerTotaux(document.Devis, cmd, nil, document.DefaultParametres())

	egal(t, "0.600", tot.Timbre, "timbre par défaut du devis")
	egal(t, "100", tot.HT, "même base : 119.6 − 0.600 = 119")
}

// Réconciliation : HT × 1.19 doit reconstruire TTC − timbre à 1e-6 près,
// même pour une base qui ne divise pas exactement.
func TestTotauxDevis_Reconciliation(t *testing.T) {
	cmd := &entity.Commande{PrixTTC: nd(t, "57.3")}

	tot := document.CalculerTotaux(document.Devis, cmd, nil, document.DefaultParametres())

	base := tot.TTC.Sub(tot.Timbre)
	reconstruit := tot.HT.Mul(decimal.RequireFromString("1.19"))
	ecart := math.Abs(reconstruit.InexactFloat64() - base.InexactFloat64())
	assert.Less(t, ecart, 1e-6, "HT×1.19 doit reconstruire la base TTC")
}

// Devis entièrement vide : tous les montants valent 0 (base négative du
// timbre par défaut mise à part, le TTC stocké par défaut est 0).
func TestTotauxDevis_CommandeVide(t *testing.T) {
	tot := document.CalculerTotaux(document.Devis, &entity.Commande{}, nil, document.DefaultParametres())
	egal(t, "0", tot.TTC, "TTC par défaut")
	egal(t, "0.600", tot.Timbre, "timbre par défaut")
}

// ──────────────────────────────────────────────────────────────────────────────
// Facture boutique
// ──────────────────────────────────────────────────────────────────────────────

// prix_ht=100, tva absente → 19 (100×0.19), timbre absent → 1.000 fixe.
func TestTotauxFacture_DefautsTVAEtTimbre(t *testing.T) {
	cmd := &entity.Commande{PrixHT: nd(t, "100")}

	tot := document.CalculerTotaux(document.FactureBoutique, cmd, nil, document.DefaultParametres())

	egal(t, "100", tot.HT, "HT stocké, aucune recomputation depuis les lignes")
	egal(t, "19", tot.TVA, "TVA par défaut = HT × 0.19")
	egal(t, "1.000", tot.Timbre, "timbre par défaut de la facture")
	egal(t, "0", tot.TTC, "TTC par défaut")
}

// Le TTC stocké fait foi même s'il est incohérent avec HT+TVA+Timbre :
// il ne doit jamais être "corrigé".
func TestTotauxFacture_TTCStockeJamaisCorrige(t *testing.T) {
	cmd := &entity.Commande{
		PrixHT:  nd(t, "100"),
		TVA:     nd(t, "19"),
		Timbre:  nd(t, "1"),
		PrixTTC: nd(t, "125"), // incohérent : 100+19+1 = 120
	}

	tot := document.CalculerTotaux(document.FactureBoutique, cmd, nil, document.DefaultParametres())

	egal(t, "125", tot.TTC, "le TTC stocké est conservé tel quel")
}

// TVA stockée explicitement à 0 : c'est une valeur présente, pas une absence.
func TestTotauxFacture_TVAZeroExplicite(t *testing.T) {
	cmd := &entity.Commande{PrixHT: nd(t, "100"), TVA: nd(t, "0")}

	tot := document.CalculerTotaux(document.FactureBoutique, cmd, nil, document.DefaultParametres())

	egal(t, "0", tot.TVA, "0 explicite n'est pas remplacé par le défaut")
}

// ──────────────────────────────────────────────────────────────────────────────
// Garde commune
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculerTotaux_CommandeNil(t *testing.T) {
	tot := document.CalculerTotaux(document.BonLivraison, nil, nil, document.DefaultParametres())
	egal(t, "0", tot.HT, "commande nil donne des totaux nuls")
	egal(t, "0", tot.TTC, "commande nil donne des totaux nuls")
}
