package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/wajdibz/boutika-api/internal/application/dto"
	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/document"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
	"github.com/wajdibz/boutika-api/internal/domain/repository"
)

// CommandeUseCase consultation et suivi des commandes de la boutique.
// Les commandes sont créées par le front de vente ; le back-office les lit,
// change leur statut et en tire les documents commerciaux.
type CommandeUseCase struct {
	repo repository.CommandeRepository
}

// NewCommandeUseCase construit le cas d'usage.
func NewCommandeUseCase(repo repository.CommandeRepository) *CommandeUseCase {
	return &CommandeUseCase{repo: repo}
}

// GetByNumero obtient une commande par son numéro.
func (uc *CommandeUseCase) GetByNumero(numero string) (*dto.CommandeResponse, error) {
	cmd, err := uc.repo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, nil
	}
	return toCommandeResponse(cmd), nil
}

// List liste les commandes, filtrées par statut si fourni.
func (uc *CommandeUseCase) List(statut string, limit, offset int) (*dto.CommandeListResponse, error) {
	list, err := uc.repo.List(statut, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(statut)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommandeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCommandeResponse(c))
	}
	return &dto.CommandeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// UpdateStatut change le statut d'une commande.
func (uc *CommandeUseCase) UpdateStatut(numero string, in dto.UpdateStatutRequest) (*dto.CommandeResponse, error) {
	cmd, err := uc.repo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.StatutValide(in.Statut) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateStatut(cmd.ID, in.Statut); err != nil {
		return nil, err
	}
	cmd.Statut = in.Statut
	return toCommandeResponse(cmd), nil
}

func toCommandeResponse(c *entity.Commande) *dto.CommandeResponse {
	if c == nil {
		return nil
	}
	lignes := document.NormaliserLignes(c)
	return &dto.CommandeResponse{
		ID:            c.ID,
		Numero:        c.Numero,
		NumeroBL:      c.NumeroBL,
		NumeroDevis:   c.NumeroDevis,
		ClientNom:     c.ClientNom,
		ClientEmail:   c.ClientEmail,
		ClientTel:     c.ClientTel,
		ClientVille:   c.ClientVille,
		ModePaiement:  c.ModePaiement,
		Statut:        c.Statut,
		PrixHT:        valeurOuZero(c.PrixHT),
		PrixTTC:       valeurOuZero(c.PrixTTC),
		Remise:        valeurOuZero(c.Remise),
		NombreLignes:  len(lignes),
		DateLivraison: c.DateLivraison,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func valeurOuZero(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}
