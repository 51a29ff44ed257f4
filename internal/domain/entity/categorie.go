package entity

import "time"

// Categorie représente une catégorie de produits (hiérarchie optionnelle).
type Categorie struct {
	ID        string
	ParentID  string // vide si racine
	Nom       string
	Code      string // code unique
	Statut    string // actif, inactif
	CreatedAt time.Time
	UpdatedAt time.Time
}
