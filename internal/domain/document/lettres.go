package document

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Convertisseur rend un montant TTC en toutes lettres pour la mention légale
// du document ("Arrêté le présent ... à la somme de : ..."). Fonction pure :
// la même entrée produit toujours la même phrase.
type Convertisseur struct {
	UniteSingulier     string
	UnitePluriel       string
	SousUniteSingulier string
	SousUnitePluriel   string
}

// NewConvertisseurDinars construit le convertisseur dinar/millime.
func NewConvertisseurDinars() Convertisseur {
	return Convertisseur{
		UniteSingulier:     "dinar",
		UnitePluriel:       "dinars",
		SousUniteSingulier: "millime",
		SousUnitePluriel:   "millimes",
	}
}

// MontantEnLettres convertit un montant non négatif en phrase légale :
// partie entière en lettres (première lettre capitalisée) + unité majeure,
// puis " et <reste> <unité mineure>" si le reste à deux décimales est > 0.
// Un montant négatif est traité comme zéro.
func (cv Convertisseur) MontantEnLettres(montant decimal.Decimal) string {
	if montant.IsNegative() {
		montant = decimal.Zero
	}
	entier := montant.Floor()
	frac := montant.Sub(entier).Mul(cent).Round(0).IntPart()
	n := entier.IntPart()

	// Un reste qui arrondit à exactement 100 se reporte sur la partie
	// entière ; il n'est jamais rendu comme un compte de sous-unités.
	if frac >= 100 {
		n++
		frac -= 100
	}

	phrase := capitaliser(entierEnLettres(n)) + " " + cv.uniteMajeure(n)
	if frac > 0 {
		phrase += " et " + entierEnLettres(frac) + " " + cv.uniteMineure(frac)
	}
	return phrase
}

func (cv Convertisseur) uniteMajeure(n int64) string {
	if n > 1 {
		return cv.UnitePluriel
	}
	return cv.UniteSingulier
}

func (cv Convertisseur) uniteMineure(n int64) string {
	if n > 1 {
		return cv.SousUnitePluriel
	}
	return cv.SousUniteSingulier
}

// ── Cardinaux français ────────────────────────────────────────────────────────

var unitesMots = [20]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
	"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var dizainesMots = [5]string{"vingt", "trente", "quarante", "cinquante", "soixante"}

// entierEnLettres écrit n (0 ≤ n < 10^12) en cardinal français.
func entierEnLettres(n int64) string {
	if n == 0 {
		return "zéro"
	}
	var parts []string

	milliard := n / 1_000_000_000
	n %= 1_000_000_000
	million := n / 1_000_000
	n %= 1_000_000
	mille := n / 1_000
	reste := n % 1_000

	if milliard > 0 {
		mot := "milliard"
		if milliard > 1 {
			mot = "milliards"
		}
		parts = append(parts, moinsDeMille(int(milliard), true)+" "+mot)
	}
	if million > 0 {
		mot := "million"
		if million > 1 {
			mot = "millions"
		}
		parts = append(parts, moinsDeMille(int(million), true)+" "+mot)
	}
	if mille > 0 {
		// "mille" est invariable et ne prend jamais "un" devant lui.
		if mille == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, moinsDeMille(int(mille), false)+" mille")
		}
	}
	if reste > 0 {
		parts = append(parts, moinsDeMille(int(reste), true))
	}
	return strings.Join(parts, " ")
}

// moinsDeMille écrit 1 ≤ n < 1000. terminal indique que rien ne suit dans le
// nombre complet : "cents" et "quatre-vingts" ne prennent le s que dans ce cas.
func moinsDeMille(n int, terminal bool) string {
	c, r := n/100, n%100
	if c == 0 {
		return moinsDeCent(n, terminal)
	}
	var s string
	if c == 1 {
		s = "cent"
	} else {
		s = moinsDeCent(c, false) + " cent"
		if r == 0 && terminal {
			s += "s"
		}
	}
	if r == 0 {
		return s
	}
	return s + " " + moinsDeCent(r, terminal)
}

// moinsDeCent écrit 0 ≤ n < 100 : "et un" pour 21..61, soixante-dix et
// quatre-vingt-dix sur les dizaines précédentes, "soixante et onze".
func moinsDeCent(n int, terminal bool) string {
	switch {
	case n < 20:
		return unitesMots[n]
	case n < 70:
		d, r := n/10, n%10
		s := dizainesMots[d-2]
		if r == 1 {
			return s + " et un"
		}
		if r > 0 {
			return s + "-" + unitesMots[r]
		}
		return s
	case n < 80:
		r := n - 60 // 10..19
		if r == 11 {
			return "soixante et onze"
		}
		return "soixante-" + unitesMots[r]
	default:
		r := n - 80
		if r == 0 {
			if terminal {
				return "quatre-vingts"
			}
			return "quatre-vingt"
		}
		return "quatre-vingt-" + unitesMots[r]
	}
}

func capitaliser(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
