package documents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/document"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeCommandeRepo struct {
	commandes map[string]*entity.Commande
	err       error
}

func (f *fakeCommandeRepo) GetByID(id string) (*entity.Commande, error) {
	return f.commandes[id], f.err
}

func (f *fakeCommandeRepo) GetByNumero(numero string) (*entity.Commande, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.commandes[numero], nil
}

func (f *fakeCommandeRepo) List(_ string, _, _ int) ([]*entity.Commande, error) {
	return nil, nil
}

func (f *fakeCommandeRepo) Count(_ string) (int, error) { return 0, nil }

func (f *fakeCommandeRepo) UpdateStatut(_, _ string) error { return nil }

type fakeGenerator struct {
	dernierDoc *document.Document
	bytes      []byte
	err        error
}

func (f *fakeGenerator) GenerateDocumentPDF(_ context.Context, doc *document.Document) ([]byte, error) {
	f.dernierDoc = doc
	return f.bytes, f.err
}

// ── helpers ───────────────────────────────────────────────────────────────────

func commandeDeTest() *entity.Commande {
	cart := json.RawMessage(`[{"title":"Clavier","price":50,"quantity":2}]`)
	ttc := decimal.RequireFromString("119.600")
	timbre := decimal.RequireFromString("0.600")
	return &entity.Commande{
		ID:          "id-1",
		Numero:      "CMD-0042",
		NumeroBL:    "BL-0042",
		NumeroDevis: "DV-0042",
		ClientNom:   "Ali Ben Salah",
		PrixTTC:     decimal.NullDecimal{Decimal: ttc, Valid: true},
		Timbre:      decimal.NullDecimal{Decimal: timbre, Valid: true},
		Cart:        cart,
		CreatedAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func useCaseDeTest(repo *fakeCommandeRepo, gen *fakeGenerator) *UseCase {
	composeur := document.NewComposeur(
		document.Emetteur{Nom: "Boutika SARL"},
		document.PiedBancaire{Banque: "BIAT", RIB: "08 006 0123456789012 34"},
		document.DefaultParametres(),
		document.Verification{BaseURL: "https://boutika.tn"},
	)
	return NewUseCase(repo, composeur, gen)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestTelechargerDocumentPDF_BonLivraison(t *testing.T) {
	repo := &fakeCommandeRepo{commandes: map[string]*entity.Commande{
		"CMD-0042": commandeDeTest(),
	}}
	gen := &fakeGenerator{bytes: []byte("%PDF-1.7 fake")}
	uc := useCaseDeTest(repo, gen)

	pdf, filename, err := uc.TelechargerDocumentPDF(context.Background(), "CMD-0042", document.BonLivraison)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), pdf)
	assert.Equal(t, "bon-livraison_BL-0042.pdf", filename)

	// Le document transmis au générateur est bien composé.
	require.NotNil(t, gen.dernierDoc)
	assert.Equal(t, document.BonLivraison, gen.dernierDoc.Variante)
	assert.Equal(t, "BL-0042", gen.dernierDoc.Numero)
	assert.Len(t, gen.dernierDoc.Lignes, 1)
}

func TestTelechargerDocumentPDF_FilenameParVariante(t *testing.T) {
	repo := &fakeCommandeRepo{commandes: map[string]*entity.Commande{
		"CMD-0042": commandeDeTest(),
	}}
	gen := &fakeGenerator{bytes: []byte("pdf")}
	uc := useCaseDeTest(repo, gen)

	_, fn, err := uc.TelechargerDocumentPDF(context.Background(), "CMD-0042", document.Devis)
	require.NoError(t, err)
	assert.Equal(t, "devis_DV-0042.pdf", fn)

	_, fn, err = uc.TelechargerDocumentPDF(context.Background(), "CMD-0042", document.FactureBoutique)
	require.NoError(t, err)
	assert.Equal(t, "facture_CMD-0042.pdf", fn)
}

func TestTelechargerDocumentPDF_CommandeIntrouvable(t *testing.T) {
	repo := &fakeCommandeRepo{commandes: map[string]*entity.Commande{}}
	uc := useCaseDeTest(repo, &fakeGenerator{})

	_, _, err := uc.TelechargerDocumentPDF(context.Background(), "CMD-9999", document.Devis)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTelechargerDocumentPDF_ErreurRepo(t *testing.T) {
	repo := &fakeCommandeRepo{err: errors.New("connexion perdue")}
	uc := useCaseDeTest(repo, &fakeGenerator{})

	_, _, err := uc.TelechargerDocumentPDF(context.Background(), "CMD-0042", document.Devis)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestTelechargerDocumentPDF_ErreurGenerateur(t *testing.T) {
	repo := &fakeCommandeRepo{commandes: map[string]*entity.Commande{
		"CMD-0042": commandeDeTest(),
	}}
	gen := &fakeGenerator{err: errors.New("police manquante")}
	uc := useCaseDeTest(repo, gen)

	_, _, err := uc.TelechargerDocumentPDF(context.Background(), "CMD-0042", document.BonLivraison)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "génération PDF")
}
