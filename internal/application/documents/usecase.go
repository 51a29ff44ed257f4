// Package documents orchestre la production des documents commerciaux
// (bon de livraison, devis, facture) à partir des commandes persistées.
package documents

import (
	"context"
	"fmt"

	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/document"
	"github.com/wajdibz/boutika-api/internal/domain/repository"
)

// UseCase compose une commande en document puis le rend en PDF.
type UseCase struct {
	commandeRepo repository.CommandeRepository
	composeur    *document.Composeur
	generator    DocumentPDFGenerator
}

// NewUseCase construit le cas d'usage en injectant ses dépendances.
func NewUseCase(
	commandeRepo repository.CommandeRepository,
	composeur *document.Composeur,
	generator DocumentPDFGenerator,
) *UseCase {
	return &UseCase{
		commandeRepo: commandeRepo,
		composeur:    composeur,
		generator:    generator,
	}
}

// TelechargerDocumentPDF charge la commande, la compose selon la variante
// demandée et génère le PDF.
//
// Retourne :
//   - (pdfBytes, filename, nil)  si tout se passe bien.
//   - domain.ErrNotFound         si la commande n'existe pas.
func (uc *UseCase) TelechargerDocumentPDF(
	ctx context.Context,
	numero string,
	variante document.Variante,
) (pdfBytes []byte, filename string, err error) {
	// ── 1. Charger la commande ────────────────────────────────────────────────
	cmd, err := uc.commandeRepo.GetByNumero(numero)
	if err != nil {
		return nil, "", fmt.Errorf("documents: charger commande: %w", err)
	}
	if cmd == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Composer le document (lignes, totaux, lettres, vérification) ───────
	doc := uc.composeur.Composer(cmd, variante)

	// ── 3. Rendre le PDF ──────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateDocumentPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("documents: génération PDF: %w", err)
	}

	filename = fmt.Sprintf("%s_%s.pdf", variante.Slug(), doc.Numero)
	return pdfBytes, filename, nil
}
