package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
	"github.com/wajdibz/boutika-api/internal/domain/repository"
)

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

// ProduitRepo implémentation de ProduitRepository (utilisable avec pool ou tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

// Create persiste un nouveau produit.
func (r *ProduitRepo) Create(p *entity.Produit) error {
	query := `
		INSERT INTO produits (id, sku, nom, description, prix, taux_tva, categorie_id, marque, image_path, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Nom, p.Description, p.Prix, p.TauxTVA, p.CategorieID,
		p.Marque, p.ImagePath, p.Statut, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// GetByID récupère un produit par ID.
func (r *ProduitRepo) GetByID(id string) (*entity.Produit, error) {
	query := `
		SELECT id, sku, nom, description, prix, taux_tva, COALESCE(categorie_id::text, ''), marque, image_path, statut, created_at, updated_at
		FROM produits WHERE id = $1`
	return r.getOne(query, id)
}

// GetBySKU récupère un produit par référence.
func (r *ProduitRepo) GetBySKU(sku string) (*entity.Produit, error) {
	query := `
		SELECT id, sku, nom, description, prix, taux_tva, COALESCE(categorie_id::text, ''), marque, image_path, statut, created_at, updated_at
		FROM produits WHERE sku = $1`
	return r.getOne(query, sku)
}

func (r *ProduitRepo) getOne(query string, arg any) (*entity.Produit, error) {
	var p entity.Produit
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Nom, &p.Description, &p.Prix, &p.TauxTVA, &p.CategorieID,
		&p.Marque, &p.ImagePath, &p.Statut, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	return &p, nil
}

// Update met à jour les champs éditables d'un produit.
func (r *ProduitRepo) Update(p *entity.Produit) error {
	query := `
		UPDATE produits
		SET nom = $2, description = $3, prix = $4, taux_tva = $5, categorie_id = NULLIF($6, '')::uuid,
		    marque = $7, image_path = $8, statut = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nom, p.Description, p.Prix, p.TauxTVA, p.CategorieID,
		p.Marque, p.ImagePath, p.Statut, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List liste les produits avec pagination.
func (r *ProduitRepo) List(limit, offset int) ([]*entity.Produit, error) {
	query := `
		SELECT id, sku, nom, description, prix, taux_tva, COALESCE(categorie_id::text, ''), marque, image_path, statut, created_at, updated_at
		FROM produits ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()

	var list []*entity.Produit
	for rows.Next() {
		var p entity.Produit
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Nom, &p.Description, &p.Prix, &p.TauxTVA, &p.CategorieID,
			&p.Marque, &p.ImagePath, &p.Statut, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete supprime un produit.
func (r *ProduitRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
