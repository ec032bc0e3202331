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

	_ "github.com/omigec/plateforme-api/docs"
	"github.com/omigec/plateforme-api/internal/application/auth"
	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/internal/infrastructure/events"
	infrapdf "github.com/omigec/plateforme-api/internal/infrastructure/pdf"
	"github.com/omigec/plateforme-api/internal/infrastructure/postgres"
	"github.com/omigec/plateforme-api/internal/infrastructure/storage"
	httpRouter "github.com/omigec/plateforme-api/internal/interfaces/http"
	"github.com/omigec/plateforme-api/pkg/config"
	"github.com/omigec/plateforme-api/pkg/logger"
)

// @title        API Plateforme OMIGEC
// @version      1.0
// @description  Annuaire de l'ordre, vérification des ingénieurs, abonnements entreprise et offres d'emploi.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	ingRepo := postgres.NewIngenieurRepository(pool)
	refRepo := postgres.NewReferenceRepository(pool)
	verifRepo := postgres.NewVerificationRepository(pool)
	entRepo := postgres.NewEntrepriseRepository(pool)
	abRepo := postgres.NewAbonnementRepository(pool)
	offreRepo := postgres.NewOffreRepository(pool)
	candRepo := postgres.NewCandidatureRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	partenaireRepo := postgres.NewPartenaireRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var uploader usecase.Uploader
	if cfg.Cloudinary.URL != "" {
		cldUploader, err := storage.NewCloudinaryUploader(cfg.Cloudinary)
		if err != nil {
			log.Fatal().Err(err).Msg("init stockage Cloudinary")
		}
		uploader = cldUploader
	} else {
		log.Warn().Msg("CLOUDINARY_URL absente, uploads de documents désactivés")
	}

	var notifier usecase.Notifier
	if cfg.Kafka.Broker != "" {
		kafkaNotifier := events.NewKafkaNotifier(cfg.Kafka, log)
		defer kafkaNotifier.Close()
		notifier = kafkaNotifier
	} else {
		notifier = events.NewLogNotifier(log)
	}

	attestationGen := infrapdf.NewMarotoAttestationGenerator()

	authUC := auth.NewAuthUseCase(ingRepo, entRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ingUC := usecase.NewIngenieurUseCase(ingRepo, attestationGen)
	entUC := usecase.NewEntrepriseUseCase(entRepo, uploader, txRunner)
	verifUC := usecase.NewVerificationUseCase(ingRepo, refRepo, verifRepo, uploader, notifier)
	abUC := usecase.NewAbonnementUseCase(abRepo, entRepo, offreRepo, txRunner)
	offreUC := usecase.NewOffreUseCase(offreRepo, abRepo, entRepo)
	candUC := usecase.NewCandidatureUseCase(candRepo, offreRepo)
	rechercheUC := usecase.NewRechercheUseCase(ingRepo)
	contenuUC := usecase.NewContenuUseCase(articleRepo, partenaireRepo, contactRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // documents scannés en multipart
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API Plateforme OMIGEC",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		IngenieurUC:    ingUC,
		EntrepriseUC:   entUC,
		VerificationUC: verifUC,
		AbonnementUC:   abUC,
		OffreUC:        offreUC,
		CandidatureUC:  candUC,
		RechercheUC:    rechercheUC,
		ContenuUC:      contenuUC,
		JWTSecret:      cfg.JWT.Secret,
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
