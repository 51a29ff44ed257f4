package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wajdibz/boutika-api/internal/application/dto"
	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
	"github.com/wajdibz/boutika-api/internal/domain/repository"
)

// tauxTVAAdmis : taux tunisiens en vigueur (0, 7, 13, 19).
var tauxTVAAdmis = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromInt(7),
	decimal.NewFromInt(13),
	decimal.NewFromInt(19),
}

func tauxTVAValide(t decimal.Decimal) bool {
	for _, admis := range tauxTVAAdmis {
		if t.Equal(admis) {
			return true
		}
	}
	return false
}

// ProduitUseCase cas d'usage CRUD pour le catalogue produits.
type ProduitUseCase struct {
	repo repository.ProduitRepository
}

// NewProduitUseCase construit le cas d'usage.
func NewProduitUseCase(repo repository.ProduitRepository) *ProduitUseCase {
	return &ProduitUseCase{repo: repo}
}

// Create crée un nouveau produit. Le SKU doit être unique.
func (uc *ProduitUseCase) Create(in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if !tauxTVAValide(in.TauxTVA) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	produit := &entity.Produit{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Nom:         in.Nom,
		Description: in.Description,
		Prix:        in.Prix,
		TauxTVA:     in.TauxTVA,
		CategorieID: in.CategorieID,
		Marque:      in.Marque,
		ImagePath:   in.ImagePath,
		Statut:      "actif",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// GetByID obtient un produit par son identifiant.
func (uc *ProduitUseCase) GetByID(id string) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, nil
	}
	return toProduitResponse(produit), nil
}

// Update met à jour un produit champ par champ.
func (uc *ProduitUseCase) Update(id string, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, nil
	}
	if in.Nom != nil {
		produit.Nom = *in.Nom
	}
	if in.Description != nil {
		produit.Description = *in.Description
	}
	if in.Prix != nil {
		produit.Prix = *in.Prix
	}
	if in.TauxTVA != nil {
		if !tauxTVAValide(*in.TauxTVA) {
			return nil, domain.ErrInvalidInput
		}
		produit.TauxTVA = *in.TauxTVA
	}
	if in.CategorieID != nil {
		produit.CategorieID = *in.CategorieID
	}
	if in.Marque != nil {
		produit.Marque = *in.Marque
	}
	if in.ImagePath != nil {
		produit.ImagePath = *in.ImagePath
	}
	if in.Statut != nil {
		produit.Statut = *in.Statut
	}
	produit.UpdatedAt = time.Now()
	if err := uc.repo.Update(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// List liste les produits avec pagination.
func (uc *ProduitUseCase) List(limit, offset int) (*dto.ProduitListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProduitResponse(p))
	}
	return &dto.ProduitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime un produit.
func (uc *ProduitUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProduitResponse(p *entity.Produit) *dto.ProduitResponse {
	if p == nil {
		return nil
	}
	return &dto.ProduitResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Nom:         p.Nom,
		Description: p.Description,
		Prix:        p.Prix,
		TauxTVA:     p.TauxTVA,
		CategorieID: p.CategorieID,
		Marque:      p.Marque,
		ImagePath:   p.ImagePath,
		Statut:      p.Statut,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
