package document

import "strings"

// Verification construit la charge utile du code scannable imprimé sur les
// documents : une URL de consultation canonique, identique pour les trois
// variantes. La base est configurée une seule fois, jamais re-déclarée par
// variante.
type Verification struct {
	BaseURL string
}

// PayloadCommande renvoie l'URL de consultation <base>/commande/<numero>.
// Numéro absent ou blanc → chaîne vide ; le rendu du QR l'omet dans ce cas.
func (v Verification) PayloadCommande(numero string) string {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return ""
	}
	return strings.TrimRight(v.BaseURL, "/") + "/commande/" + numero
}
