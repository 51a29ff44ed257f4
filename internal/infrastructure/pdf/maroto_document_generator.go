// Package pdf implémente le rendu A4 des documents commerciaux (bon de
// livraison, devis, facture boutique) avec Maroto v2.
//
// Layout de la page :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Société        │  Titre + N° + Date         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT: Nom / Adresse / Contact                            │
//	│  LIVRAISON (BL et facture) : Nom / Adresse / Date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qté | Désignation | P.U. HT | TVA | Total HT        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX (par variante) + montant en toutes lettres          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de vérification + références bancaires          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/wajdibz/boutika-api/internal/domain/document"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDocumentGenerator rend un document composé en PDF, quelle que soit la
// variante : un seul layout paramétré, jamais trois copies.
type MarotoDocumentGenerator struct{}

// NewMarotoDocumentGenerator construit le générateur.
func NewMarotoDocumentGenerator() *MarotoDocumentGenerator {
	return &MarotoDocumentGenerator{}
}

// GenerateDocumentPDF génère le PDF et renvoie ses bytes.
func (g *MarotoDocumentGenerator) GenerateDocumentPDF(_ context.Context, doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: document manquant")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Titre+" "+doc.Numero, true).
		WithAuthor(doc.Emetteur.Nom, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc))
	if doc.Livraison != nil {
		m.AddRows(livraisonRow(doc.Livraison))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(doc.Lignes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totauxRow(doc))
	m.AddRows(lettresRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow : logo + société (gauche), titre + numéro + date (droite).
func headerRow(doc *document.Document) core.Row {
	gauche := col.New(7)
	if doc.Emetteur.LogoPath != "" {
		gauche.Add(image.NewFromFile(doc.Emetteur.LogoPath, props.Rect{Percent: 70, Top: 1}))
	}
	gauche.Add(
		text.New(doc.Emetteur.Nom, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1, Left: 22,
		}),
		text.New(adresseEmetteur(doc.Emetteur), props.Text{
			Size: 8, Top: 9, Left: 22, Color: colorGray,
		}),
		text.New("MF: "+nonEmpty(doc.Emetteur.MatriculeFiscal, "—"), props.Text{
			Size: 8, Top: 14, Left: 22, Color: colorGray,
		}),
	)

	return row.New(20).Add(
		gauche,
		col.New(5).Add(
			text.New(doc.Titre, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+nonEmpty(doc.Numero, "—"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
			text.New("Date: "+doc.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

func adresseEmetteur(e document.Emetteur) string {
	return fmt.Sprintf("%s %s %s   |   Tel: %s   |   %s",
		e.Adresse, e.CodePostal, e.Ville,
		nonEmpty(e.Tel, "—"), nonEmpty(e.Email, "—"))
}

// clientRow : coordonnées de facturation.
func clientRow(doc *document.Document) core.Row {
	c := doc.Client
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Nom, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s, %s %s %s   |   %s   |   %s",
				c.Adresse, c.CodePostal, c.Ville, c.Pays,
				nonEmpty(c.Email, "—"), nonEmpty(c.Tel, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// livraisonRow : bloc livraison (bon de livraison et facture uniquement).
func livraisonRow(l *document.BlocLivraison) core.Row {
	date := "—"
	if l.Date != nil {
		date = l.Date.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("LIVRAISON", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   Tel: %s   |   Date: %s",
				nonEmpty(l.Nom, "—"), nonEmpty(l.Adresse, "—"), nonEmpty(l.Tel, "—"), date,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow : en-tête du tableau d'articles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Désignation", 5, align.Left),
		h("P.U. HT", 2, align.Right),
		h("TVA%", 1, align.Center),
		h("Total HT", 3, align.Right),
	)
}

// tableRows : une ligne par article ; séquence vide rendue comme une ligne
// d'information plutôt que de faire échouer le document.
func tableRows(lignes []document.Ligne) []core.Row {
	if len(lignes) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Aucun article trouvé", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}
	result := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Quantite.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Titre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMontant(l.PrixUnitaire),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.TVA.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatMontant(l.TotalHT()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totauxRow : bloc des totaux aligné à droite, libellés selon la variante.
func totauxRow(doc *document.Document) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	t := doc.Totaux
	var labels, values []core.Component
	switch doc.Variante {
	case document.BonLivraison:
		labels = []core.Component{
			label("Total HT:"),
			label(fmt.Sprintf("Remise (%s%%):", t.PourcentageRemise.Round(2))),
			grandLabel("Total TTC:"),
		}
		values = []core.Component{
			value(formatMontant(t.HT)),
			value(formatMontant(t.Remise)),
			grandValue(formatMontant(t.TTC)),
		}
	default: // devis et facture : HT / TVA / timbre / TTC
		labels = []core.Component{
			label("Total HT:"),
			label("Total TVA:"),
			label("Timbre fiscal:"),
			grandLabel("Total TTC:"),
		}
		values = []core.Component{
			value(formatMontant(t.HT)),
			value(formatMontant(t.TVA)),
			value(formatMontant(t.Timbre)),
			grandValue(formatMontant(t.TTC)),
		}
	}

	return row.New(30).Add(
		col.New(5),
		col.New(4).Add(labels...),
		col.New(3).Add(values...),
	)
}

// lettresRow : mention légale du montant en toutes lettres.
func lettresRow(doc *document.Document) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Arrêté le présent document à la somme de :", props.Text{
			Size: 8, Color: colorGray, Top: 2,
		}),
		text.New(doc.MontantEnLettres+".", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 6,
		}),
	))
}

// footerRows : QR de vérification (si payload non vide) + références bancaires.
func footerRows(doc *document.Document) []core.Row {
	var rows []core.Row

	if doc.PayloadVerification != "" {
		rows = append(rows, row.New(34).Add(
			col.New(3).Add(code.NewQr(doc.PayloadVerification, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Scannez le code pour consulter ce document en ligne.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(doc.PayloadVerification, props.Text{
					Size: 7, Top: 10, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Banque: %s   |   RIB: %s",
			nonEmpty(doc.Pied.Banque, "—"), nonEmpty(doc.Pied.RIB, "—"),
		), props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var frPrinter = message.NewPrinter(language.French)

// formatMontant rend un montant avec séparateurs français et trois décimales
// (granularité millime). Affichage uniquement : les calculs restent en décimal.
func formatMontant(d decimal.Decimal) string {
	f, _ := d.Round(3).Float64()
	return frPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(3), number.MaxFractionDigits(3)))
}
