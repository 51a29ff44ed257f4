package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wajdibz/boutika-api/internal/application/auth"
	"github.com/wajdibz/boutika-api/internal/application/documents"
	"github.com/wajdibz/boutika-api/internal/application/usecase"
	"github.com/wajdibz/boutika-api/internal/domain/document"
	infrapdf "github.com/wajdibz/boutika-api/internal/infrastructure/pdf"
	"github.com/wajdibz/boutika-api/internal/infrastructure/postgres"
	httpRouter "github.com/wajdibz/boutika-api/internal/interfaces/http"
	"github.com/wajdibz/boutika-api/pkg/config"
	"github.com/wajdibz/boutika-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	commandeRepo := postgres.NewCommandeRepository(pool)
	produitRepo := postgres.NewProduitRepository(pool)
	categorieRepo := postgres.NewCategorieRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Composeur de documents commerciaux : identité société, paramètres
	// fiscaux et base de vérification viennent de la configuration.
	composeur := document.NewComposeur(
		document.Emetteur{
			Nom:             cfg.Societe.Nom,
			Adresse:         cfg.Societe.Adresse,
			Ville:           cfg.Societe.Ville,
			CodePostal:      cfg.Societe.CodePostal,
			Tel:             cfg.Societe.Tel,
			Email:           cfg.Societe.Email,
			MatriculeFiscal: cfg.Societe.MatriculeFiscal,
			LogoPath:        cfg.Societe.LogoPath,
		},
		document.PiedBancaire{
			Banque: cfg.Societe.Banque,
			RIB:    cfg.Societe.RIB,
		},
		document.Parametres{
			TauxTVA:       cfg.Documents.TauxTVA,
			TimbreDevis:   cfg.Documents.TimbreDevis,
			TimbreFacture: cfg.Documents.TimbreFacture,
		},
		document.Verification{BaseURL: cfg.Documents.BaseVerificationURL},
	)

	pdfGenerator := infrapdf.NewMarotoDocumentGenerator()
	documentsUC := documents.NewUseCase(commandeRepo, composeur, pdfGenerator)

	commandeUC := usecase.NewCommandeUseCase(commandeRepo)
	produitUC := usecase.NewProduitUseCase(produitRepo)
	categorieUC := usecase.NewCategorieUseCase(categorieRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Boutika Back-Office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CommandeUC:  commandeUC,
		ProduitUC:   produitUC,
		CategorieUC: categorieUC,
		DocumentsUC: documentsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
