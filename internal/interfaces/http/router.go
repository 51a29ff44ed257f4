package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wajdibz/boutika-api/internal/application/auth"
	"github.com/wajdibz/boutika-api/internal/application/documents"
	"github.com/wajdibz/boutika-api/internal/application/usecase"
	"github.com/wajdibz/boutika-api/internal/domain/entity"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	CommandeUC  *usecase.CommandeUseCase
	ProduitUC   *usecase.ProduitUseCase
	CategorieUC *usecase.CategorieUseCase
	DocumentsUC *documents.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth : login public, register réservé aux admins.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
		authHandler.Register)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Commandes et leurs documents commerciaux
	commandes := protected.Group("/commandes")
	commandeHandler := NewCommandeHandler(deps.CommandeUC)
	documentHandler := NewDocumentHandler(deps.DocumentsUC)
	commandes.Get("/", commandeHandler.List)
	commandes.Get("/:numero", commandeHandler.GetByNumero)
	commandes.Patch("/:numero/statut",
		RequireRole(entity.RoleAdmin, entity.RoleGestionnaire),
		commandeHandler.UpdateStatut)
	commandes.Get("/:numero/documents/:type", documentHandler.Telecharger)

	// Catalogue produits
	produits := protected.Group("/produits")
	produitHandler := NewProduitHandler(deps.ProduitUC)
	produits.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGestionnaire), produitHandler.Create)
	produits.Get("/", produitHandler.List)
	produits.Get("/:id", produitHandler.GetByID)
	produits.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleGestionnaire), produitHandler.Update)
	produits.Delete("/:id", RequireRole(entity.RoleAdmin), produitHandler.Delete)

	// Catégories
	categories := protected.Group("/categories")
	categorieHandler := NewCategorieHandler(deps.CategorieUC)
	categories.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGestionnaire), categorieHandler.Create)
	categories.Get("/", categorieHandler.List)
	categories.Get("/:id", categorieHandler.GetByID)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categorieHandler.Delete)
}
