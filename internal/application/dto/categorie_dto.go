package dto

import "time"

// CreateCategorieRequest entrée pour créer une catégorie.
type CreateCategorieRequest struct {
	Nom      string `json:"nom" validate:"required,min=1,max=200"`
	Code     string `json:"code" validate:"required,min=1,max=50"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// CategorieResponse sortie d'une catégorie.
type CategorieResponse struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Nom       string    `json:"nom"`
	Code      string    `json:"code"`
	Statut    string    `json:"statut"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategorieListResponse liste de catégories.
type CategorieListResponse struct {
	Items []CategorieResponse `json:"items"`
}
