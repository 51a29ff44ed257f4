package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wajdibz/boutika-api/internal/domain/entity"
	"github.com/wajdibz/boutika-api/internal/domain/repository"
)

var _ repository.CommandeRepository = (*CommandeRepo)(nil)

const commandeColonnes = `
	id, numero, numero_bl, numero_devis,
	client_nom, client_adresse, client_ville, client_code_postal, client_pays, client_email, client_tel,
	livraison_nom, livraison_adresse, livraison_tel, date_livraison,
	mode_paiement, statut,
	prix_ht, prix_ttc, remise, tva, timbre,
	cart, products, items,
	created_at, updated_at`

// CommandeRepo implémentation de CommandeRepository (utilisable avec pool ou tx).
type CommandeRepo struct {
	q Querier
}

// NewCommandeRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewCommandeRepository(q Querier) *CommandeRepo {
	return &CommandeRepo{q: q}
}

// GetByID récupère une commande par identifiant.
func (r *CommandeRepo) GetByID(id string) (*entity.Commande, error) {
	query := `SELECT ` + commandeColonnes + ` FROM commandes WHERE id = $1`
	c, err := scanCommande(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commande: %w", err)
	}
	return c, nil
}

// GetByNumero récupère une commande par numéro de document principal.
func (r *CommandeRepo) GetByNumero(numero string) (*entity.Commande, error) {
	query := `SELECT ` + commandeColonnes + ` FROM commandes WHERE numero = $1`
	c, err := scanCommande(r.q.QueryRow(context.Background(), query, numero))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commande par numéro: %w", err)
	}
	return c, nil
}

// List liste les commandes les plus récentes d'abord, filtrées par statut si fourni.
func (r *CommandeRepo) List(statut string, limit, offset int) ([]*entity.Commande, error) {
	query := `SELECT ` + commandeColonnes + ` FROM commandes`
	args := []any{}
	if statut != "" {
		query += ` WHERE statut = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, statut, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commandes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Commande
	for rows.Next() {
		c, err := scanCommande(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commande: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count compte les commandes, filtrées par statut si fourni.
func (r *CommandeRepo) Count(statut string) (int, error) {
	var total int
	var err error
	if statut != "" {
		err = r.q.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM commandes WHERE statut = $1`, statut).Scan(&total)
	} else {
		err = r.q.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM commandes`).Scan(&total)
	}
	if err != nil {
		return 0, fmt.Errorf("count commandes: %w", err)
	}
	return total, nil
}

// UpdateStatut change le statut d'une commande.
func (r *CommandeRepo) UpdateStatut(id, statut string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE commandes SET statut = $2, updated_at = $3 WHERE id = $1`,
		id, statut, time.Now())
	if err != nil {
		return fmt.Errorf("update statut: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// scanCommande lit une ligne dans l'ordre de commandeColonnes.
func scanCommande(row pgx.Row) (*entity.Commande, error) {
	var c entity.Commande
	err := row.Scan(
		&c.ID, &c.Numero, &c.NumeroBL, &c.NumeroDevis,
		&c.ClientNom, &c.ClientAdresse, &c.ClientVille, &c.ClientCodePostal, &c.ClientPays, &c.ClientEmail, &c.ClientTel,
		&c.LivraisonNom, &c.LivraisonAdresse, &c.LivraisonTel, &c.DateLivraison,
		&c.ModePaiement, &c.Statut,
		&c.PrixHT, &c.PrixTTC, &c.Remise, &c.TVA, &c.Timbre,
		&c.Cart, &c.Products, &c.Items,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
