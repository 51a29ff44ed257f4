package documents

import (
	"context"

	"github.com/wajdibz/boutika-api/internal/domain/document"
)

// DocumentPDFGenerator rend un document composé en PDF.
// Implémenté par l'infrastructure (Maroto) ; injecté ici pour garder le
// use case testable sans moteur de rendu.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *document.Document) ([]byte, error)
}
