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

var _ repository.CategorieRepository = (*CategorieRepo)(nil)

// CategorieRepo implémentation de CategorieRepository (utilisable avec pool ou tx).
type CategorieRepo struct {
	q Querier
}

// NewCategorieRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewCategorieRepository(q Querier) *CategorieRepo {
	return &CategorieRepo{q: q}
}

// Create persiste une nouvelle catégorie.
func (r *CategorieRepo) Create(c *entity.Categorie) error {
	query := `
		INSERT INTO categories (id, parent_id, nom, code, statut, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ParentID, c.Nom, c.Code, c.Statut, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categorie: %w", err)
	}
	return nil
}

// GetByID récupère une catégorie par ID.
func (r *CategorieRepo) GetByID(id string) (*entity.Categorie, error) {
	return r.getOne(`
		SELECT id, COALESCE(parent_id::text, ''), nom, code, statut, created_at, updated_at
		FROM categories WHERE id = $1`, id)
}

// GetByCode récupère une catégorie par code.
func (r *CategorieRepo) GetByCode(code string) (*entity.Categorie, error) {
	return r.getOne(`
		SELECT id, COALESCE(parent_id::text, ''), nom, code, statut, created_at, updated_at
		FROM categories WHERE code = $1`, code)
}

func (r *CategorieRepo) getOne(query string, arg any) (*entity.Categorie, error) {
	var c entity.Categorie
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.ParentID, &c.Nom, &c.Code, &c.Statut, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categorie: %w", err)
	}
	return &c, nil
}

// List liste les catégories avec pagination.
func (r *CategorieRepo) List(limit, offset int) ([]*entity.Categorie, error) {
	query := `
		SELECT id, COALESCE(parent_id::text, ''), nom, code, statut, created_at, updated_at
		FROM categories ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Categorie
	for rows.Next() {
		var c entity.Categorie
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Nom, &c.Code, &c.Statut, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categorie: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete supprime une catégorie.
func (r *CategorieRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categorie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
