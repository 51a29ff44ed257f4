// Package document compose les documents commerciaux légaux (bon de livraison,
// devis, facture boutique) à partir d'une commande : normalisation des lignes
// d'articles, totaux par variante, montant en toutes lettres et payload de
// vérification. Calcul pur, synchrone, sans état partagé : une commande lue,
// un modèle produit, rien n'est persisté.
package document

// Variante sélectionne la formule de totaux et les libellés d'un document.
// Immuable pendant tout le rendu d'un document.
type Variante int

const (
	BonLivraison Variante = iota
	Devis
	FactureBoutique
)

// Titre renvoie le titre légal imprimé en tête du document.
func (v Variante) Titre() string {
	switch v {
	case BonLivraison:
		return "BON DE LIVRAISON"
	case Devis:
		return "DEVIS"
	case FactureBoutique:
		return "FACTURE"
	default:
		return ""
	}
}

// Slug renvoie l'identifiant URL de la variante (segment de route et nom de fichier).
func (v Variante) Slug() string {
	switch v {
	case BonLivraison:
		return "bon-livraison"
	case Devis:
		return "devis"
	case FactureBoutique:
		return "facture"
	default:
		return ""
	}
}

// VarianteFromSlug résout un segment de route en variante.
func VarianteFromSlug(s string) (Variante, bool) {
	switch s {
	case "bon-livraison":
		return BonLivraison, true
	case "devis":
		return Devis, true
	case "facture":
		return FactureBoutique, true
	default:
		return 0, false
	}
}
