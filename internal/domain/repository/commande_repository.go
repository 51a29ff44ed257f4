package repository

import "github.com/wajdibz/boutika-api/internal/domain/entity"

// CommandeRepository définit le port de persistance des commandes (DIP).
// Le sous-système documents ne lit qu'au travers de ce port : la commande est
// résolue avant toute composition, jamais modifiée par elle.
type CommandeRepository interface {
	GetByID(id string) (*entity.Commande, error)
	// GetByNumero résout une commande par son numéro de document principal.
	// Renvoie (nil, nil) si aucune commande ne porte ce numéro.
	GetByNumero(numero string) (*entity.Commande, error)
	List(statut string, limit, offset int) ([]*entity.Commande, error)
	Count(statut string) (int, error)
	UpdateStatut(id, statut string) error
}
