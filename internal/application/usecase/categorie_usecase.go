package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/wajdibz/boutika-api/internal/application/dto"
	"github.com/wajdibz/boutika-api/internal/domain"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
	"github.com/wajdibz/boutika-api/internal/domain/repository"
)

// CategorieUseCase cas d'usage CRUD pour l'arborescence des catégories.
type CategorieUseCase struct {
	repo repository.CategorieRepository
}

// NewCategorieUseCase construit le cas d'usage.
func NewCategorieUseCase(repo repository.CategorieRepository) *CategorieUseCase {
	return &CategorieUseCase{repo: repo}
}

// Create crée une catégorie. Le code doit être unique ; le parent, s'il est
// fourni, doit exister.
func (uc *CategorieUseCase) Create(in dto.CreateCategorieRequest) (*dto.CategorieResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	categorie := &entity.Categorie{
		ID:        uuid.New().String(),
		ParentID:  in.ParentID,
		Nom:       in.Nom,
		Code:      in.Code,
		Statut:    "actif",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(categorie); err != nil {
		return nil, err
	}
	return toCategorieResponse(categorie), nil
}

// GetByID obtient une catégorie par son identifiant.
func (uc *CategorieUseCase) GetByID(id string) (*dto.CategorieResponse, error) {
	categorie, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categorie == nil {
		return nil, nil
	}
	return toCategorieResponse(categorie), nil
}

// List liste les catégories.
func (uc *CategorieUseCase) List(limit, offset int) (*dto.CategorieListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategorieResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategorieResponse(c))
	}
	return &dto.CategorieListResponse{Items: items}, nil
}

// Delete supprime une catégorie.
func (uc *CategorieUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategorieResponse(c *entity.Categorie) *dto.CategorieResponse {
	if c == nil {
		return nil
	}
	return &dto.CategorieResponse{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Nom:       c.Nom,
		Code:      c.Code,
		Statut:    c.Statut,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
