package repository

import "github.com/wajdibz/boutika-api/internal/domain/entity"

// CategorieRepository définit le port de persistance des catégories (DIP).
type CategorieRepository interface {
	Create(categorie *entity.Categorie) error
	GetByID(id string) (*entity.Categorie, error)
	GetByCode(code string) (*entity.Categorie, error)
	List(limit, offset int) ([]*entity.Categorie, error)
	Delete(id string) error
}
