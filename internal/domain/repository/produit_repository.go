package repository

import "github.com/wajdibz/boutika-api/internal/domain/entity"

// ProduitRepository définit le port de persistance des produits (DIP).
type ProduitRepository interface {
	Create(produit *entity.Produit) error
	GetByID(id string) (*entity.Produit, error)
	GetBySKU(sku string) (*entity.Produit, error)
	Update(produit *entity.Produit) error
	List(limit, offset int) ([]*entity.Produit, error)
	Delete(id string) error
}
