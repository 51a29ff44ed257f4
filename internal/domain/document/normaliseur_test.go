package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajdibz/boutika-api/internal/domain/document"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Priorité des collections : cart > products > items, tableaux avant objets,
// aucune fusion entre branches.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormaliser_CartTableauPrioritaire(t *testing.T) {
	cmd := &entity.Commande{
		Cart:     []byte(`[{"title":"Du cart","price":1}]`),
		Products: []byte(`[{"title":"Des products","price":2}]`),
	}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.Equal(t, "Du cart", lignes[0].Titre, "cart gagne sur products")
}

func TestNormaliser_ProductsQuandCartVide(t *testing.T) {
	cmd := &entity.Commande{
		Cart:     []byte(`[]`), // tableau vide : la branche ne matche pas
		Products: []byte(`[{"title":"Des products","price":2}]`),
	}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.Equal(t, "Des products", lignes[0].Titre)
}

// Un tableau non vide d'items passe avant un objet seul dans cart.
func TestNormaliser_TableauAvantObjet(t *testing.T) {
	cmd := &entity.Commande{
		Cart:  []byte(`{"title":"Objet cart","price":9}`),
		Items: []byte(`[{"title":"Tableau items","price":3}]`),
	}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.Equal(t, "Tableau items", lignes[0].Titre)
}

// Un objet seul est enveloppé dans une séquence à un élément.
func TestNormaliser_ObjetSeulEnveloppe(t *testing.T) {
	cmd := &entity.Commande{
		Cart: []byte(`{"title":"Objet seul","price":7,"quantity":2}`),
	}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.Equal(t, "Objet seul", lignes[0].Titre)
	assert.True(t, lignes[0].TotalHT().Equal(decimal.NewFromInt(14)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Dégradation silencieuse : jamais d'erreur, séquence vide en sortie.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormaliser_AucuneCollection(t *testing.T) {
	lignes := document.NormaliserLignes(&entity.Commande{})
	assert.Empty(t, lignes, "aucune collection donne une séquence vide, pas d'erreur")
	assert.NotNil(t, lignes)
}

func TestNormaliser_CommandeNil(t *testing.T) {
	lignes := document.NormaliserLignes(nil)
	assert.Empty(t, lignes)
}

func TestNormaliser_JSONMalforme(t *testing.T) {
	cmd := &entity.Commande{
		Cart:  []byte(`[{"title":`), // tronqué
		Items: []byte(`"juste une chaîne"`),
	}
	lignes := document.NormaliserLignes(cmd)
	assert.Empty(t, lignes, "JSON malformé se comporte comme absent")
}

func TestNormaliser_NullExplicite(t *testing.T) {
	cmd := &entity.Commande{Cart: []byte(`null`), Products: []byte(`null`)}
	lignes := document.NormaliserLignes(cmd)
	assert.Empty(t, lignes, "null n'est ni un tableau ni un objet")
}

// ──────────────────────────────────────────────────────────────────────────────
// Synonymes de champs et valeurs par défaut
// ──────────────────────────────────────────────────────────────────────────────

// title > name > product_name : le premier non vide gagne.
func TestNormaliser_SynonymesDuLibelle(t *testing.T) {
	cmd := &entity.Commande{
		Cart: []byte(`[
			{"name":"Par name","price":1},
			{"product_name":"Par product_name","price":1},
			{"title":"Par title","name":"ignoré","price":1}
		]`),
	}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 3)
	assert.Equal(t, "Par name", lignes[0].Titre)
	assert.Equal(t, "Par product_name", lignes[1].Titre)
	assert.Equal(t, "Par title", lignes[2].Titre)
}

// price absent mais unit_price présent ; quantity absent mais qty présent.
func TestNormaliser_SynonymesNumeriques(t *testing.T) {
	cmd := &entity.Commande{
		Cart: []byte(`[{"title":"A","unit_price":12.5,"qty":4}]`),
	}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.True(t, lignes[0].PrixUnitaire.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, lignes[0].Quantite.Equal(decimal.NewFromInt(4)))
	assert.True(t, lignes[0].TotalHT().Equal(decimal.NewFromInt(50)))
}

// Défauts : prix 0, quantité 1, TVA 0.
func TestNormaliser_ValeursParDefaut(t *testing.T) {
	cmd := &entity.Commande{Cart: []byte(`[{"title":"Sans montants"}]`)}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.True(t, lignes[0].PrixUnitaire.IsZero(), "prix par défaut 0")
	assert.True(t, lignes[0].Quantite.Equal(decimal.NewFromInt(1)), "quantité par défaut 1")
	assert.True(t, lignes[0].TVA.IsZero(), "TVA par défaut 0")
}

// Les montants encodés en chaînes JSON sont acceptés (données historiques).
func TestNormaliser_MontantsEnChaines(t *testing.T) {
	cmd := &entity.Commande{Cart: []byte(`[{"title":"A","price":"10.500","quantity":"2"}]`)}

	lignes := document.NormaliserLignes(cmd)

	require.Len(t, lignes, 1)
	assert.True(t, lignes[0].TotalHT().Equal(decimal.NewFromInt(21)))
}
