package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajdibz/boutika-api/internal/domain/document"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

func composeurDeTest() *document.Composeur {
	return document.NewComposeur(
		document.Emetteur{Nom: "Boutika SARL", Ville: "Tunis"},
		document.PiedBancaire{Banque: "BIAT", RIB: "08 006 0123456789012 34"},
		document.DefaultParametres(),
		document.Verification{BaseURL: "https://boutika.tn"},
	)
}

func commandeDeTest(t *testing.T) *entity.Commande {
	t.Helper()
	creele := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &entity.Commande{
		Numero:        "CMD-0042",
		NumeroBL:      "BL-0042",
		NumeroDevis:   "DV-0042",
		ClientNom:     "Ahmed Ben Salah",
		ClientAdresse: "12 rue de Carthage",
		ClientVille:   "Sfax",
		ClientTel:     "+216 20 000 000",
		PrixTTC:       nd(t, "119.6"),
		Timbre:        nd(t, "0.6"),
		Cart:          []byte(`[{"title":"Article A","price":10,"quantity":2}]`),
		CreatedAt:     creele,
	}
}

// Commande absente : aucun document, jamais d'erreur ni de panique.
func TestComposer_CommandeNil(t *testing.T) {
	doc := composeurDeTest().Composer(nil, document.FactureBoutique)
	assert.Nil(t, doc, "pas de commande, pas de document")
}

// Le bon de livraison porte son propre numéro, le bloc livraison et les
// totaux recalculés depuis les lignes.
func TestComposer_BonLivraison(t *testing.T) {
	doc := composeurDeTest().Composer(commandeDeTest(t), document.BonLivraison)

	require.NotNil(t, doc)
	assert.Equal(t, "BON DE LIVRAISON", doc.Titre)
	assert.Equal(t, "BL-0042", doc.Numero, "numéro BL prioritaire")
	require.NotNil(t, doc.Livraison, "le BL porte un bloc livraison")
	assert.Equal(t, "Ahmed Ben Salah", doc.Livraison.Nom,
		"repli sur les coordonnées client quand la livraison n'en a pas")
	egal(t, "20", doc.Totaux.HT, "HT depuis les lignes (10×2)")
	assert.Equal(t, "https://boutika.tn/commande/BL-0042", doc.PayloadVerification)
	assert.Equal(t, "BIAT", doc.Pied.Banque)
}

// Le devis n'a pas de bloc livraison et décompose ses totaux depuis le TTC.
func TestComposer_Devis(t *testing.T) {
	doc := composeurDeTest().Composer(commandeDeTest(t), document.Devis)

	require.NotNil(t, doc)
	assert.Equal(t, "DEVIS", doc.Titre)
	assert.Equal(t, "DV-0042", doc.Numero)
	assert.Nil(t, doc.Livraison, "pas de bloc livraison sur un devis")
	egal(t, "100", doc.Totaux.HT, "HT descendant depuis le TTC")
	assert.Equal(t, "Cent dix-neuf dinars et soixante millimes", doc.MontantEnLettres)
}

// La facture utilise le numéro de commande et le montant en lettres du TTC stocké.
func TestComposer_Facture(t *testing.T) {
	doc := composeurDeTest().Composer(commandeDeTest(t), document.FactureBoutique)

	require.NotNil(t, doc)
	assert.Equal(t, "FACTURE", doc.Titre)
	assert.Equal(t, "CMD-0042", doc.Numero, "pas de numéro dédié : numéro de commande")
	require.NotNil(t, doc.Livraison)
	egal(t, "119.6", doc.Totaux.TTC, "TTC stocké tel quel")
}

// Numéros dédiés absents : repli sur le numéro de commande partout.
func TestComposer_RepliSurNumeroCommande(t *testing.T) {
	cmd := commandeDeTest(t)
	cmd.NumeroBL = ""
	cmd.NumeroDevis = ""

	bl := composeurDeTest().Composer(cmd, document.BonLivraison)
	dv := composeurDeTest().Composer(cmd, document.Devis)

	assert.Equal(t, "CMD-0042", bl.Numero)
	assert.Equal(t, "CMD-0042", dv.Numero)
}

// Commande sans articles ni numéro : document best-effort, lignes vides,
// totaux nuls, payload vide. Rien n'échoue.
func TestComposer_CommandeDepouillee(t *testing.T) {
	doc := composeurDeTest().Composer(&entity.Commande{}, document.BonLivraison)

	require.NotNil(t, doc)
	assert.Empty(t, doc.Lignes, "séquence vide rendue comme ligne d'information")
	egal(t, "0", doc.Totaux.HT, "totaux nuls")
	assert.Equal(t, "", doc.PayloadVerification, "pas de numéro, pas de payload")
	assert.Equal(t, "Zéro dinar", doc.MontantEnLettres)
}

// La composition ne modifie jamais la commande d'entrée.
func TestComposer_NeModifiePasLaCommande(t *testing.T) {
	cmd := commandeDeTest(t)
	avant := *cmd

	_ = composeurDeTest().Composer(cmd, document.Devis)

	assert.Equal(t, avant.Numero, cmd.Numero)
	assert.Equal(t, avant.PrixTTC, cmd.PrixTTC)
	assert.Equal(t, string(avant.Cart), string(cmd.Cart))
}
