package document

import (
	"time"

	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

// Emetteur identité de la société imprimée en tête de chaque document.
// Alimentée depuis la configuration.
type Emetteur struct {
	Nom             string
	Adresse         string
	Ville           string
	CodePostal      string
	Tel             string
	Email           string
	MatriculeFiscal string
	LogoPath        string
}

// PiedBancaire références bancaires du pied de page fixe.
type PiedBancaire struct {
	Banque string
	RIB    string
}

// BlocClient coordonnées de facturation du client.
type BlocClient struct {
	Nom        string
	Adresse    string
	Ville      string
	CodePostal string
	Pays       string
	Email      string
	Tel        string
}

// BlocLivraison coordonnées de livraison (bon de livraison et facture).
type BlocLivraison struct {
	Nom     string
	Adresse string
	Tel     string
	Date    *time.Time
}

// Document modèle entièrement composé, prêt à rendre. Dérivé purement de la
// commande : recalculé à chaque rendu, jamais mis en cache.
type Document struct {
	Variante            Variante
	Titre               string
	Numero              string
	Date                time.Time
	Emetteur            Emetteur
	Client              BlocClient
	Livraison           *BlocLivraison // nil pour le devis
	Lignes              []Ligne
	Totaux              Totaux
	MontantEnLettres    string
	PayloadVerification string
	Pied                PiedBancaire
}

// Composeur orchestre normalisation, totaux, montant en lettres et payload de
// vérification pour produire un Document d'une variante donnée.
type Composeur struct {
	emetteur Emetteur
	pied     PiedBancaire
	params   Parametres
	verif    Verification
	lettres  Convertisseur
}

// NewComposeur construit le composeur avec l'identité société et les
// paramètres fiscaux issus de la configuration.
func NewComposeur(emetteur Emetteur, pied PiedBancaire, params Parametres, verif Verification) *Composeur {
	return &Composeur{
		emetteur: emetteur,
		pied:     pied,
		params:   params,
		verif:    verif,
		lettres:  NewConvertisseurDinars(),
	}
}

// Composer produit le modèle de document pour la commande et la variante.
// Commande absente → aucun document (nil), jamais d'erreur : l'affichage est
// best-effort, la validité des données relève de la couche d'accès.
func (co *Composeur) Composer(cmd *entity.Commande, v Variante) *Document {
	if cmd == nil {
		return nil
	}

	lignes := NormaliserLignes(cmd)
	totaux := CalculerTotaux(v, cmd, lignes, co.params)
	numero := co.numeroPour(cmd, v)

	doc := &Document{
		Variante: v,
		Titre:    v.Titre(),
		Numero:   numero,
		Date:     cmd.CreatedAt,
		Emetteur: co.emetteur,
		Client: BlocClient{
			Nom:        cmd.ClientNom,
			Adresse:    cmd.ClientAdresse,
			Ville:      cmd.ClientVille,
			CodePostal: cmd.ClientCodePostal,
			Pays:       cmd.ClientPays,
			Email:      cmd.ClientEmail,
			Tel:        cmd.ClientTel,
		},
		Lignes:              lignes,
		Totaux:              totaux,
		MontantEnLettres:    co.lettres.MontantEnLettres(totaux.TTC),
		PayloadVerification: co.verif.PayloadCommande(numero),
		Pied:                co.pied,
	}

	// Bloc livraison sur le bon de livraison et la facture uniquement.
	// Les coordonnées de livraison replient sur celles du client.
	if v == BonLivraison || v == FactureBoutique {
		doc.Livraison = &BlocLivraison{
			Nom:     premierNonVide(cmd.LivraisonNom, cmd.ClientNom),
			Adresse: premierNonVide(cmd.LivraisonAdresse, cmd.ClientAdresse),
			Tel:     premierNonVide(cmd.LivraisonTel, cmd.ClientTel),
			Date:    cmd.DateLivraison,
		}
	}

	return doc
}

// numeroPour résout le numéro du document : le BL et le devis ont leur propre
// numérotation, avec repli sur le numéro de commande.
func (co *Composeur) numeroPour(c *entity.Commande, v Variante) string {
	switch v {
	case BonLivraison:
		if c.NumeroBL != "" {
			return c.NumeroBL
		}
	case Devis:
		if c.NumeroDevis != "" {
			return c.NumeroDevis
		}
	}
	return c.Numero
}
