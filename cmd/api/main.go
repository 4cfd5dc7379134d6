package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/lmittmann/tint"

	"listora_admin/internal/controller"
	"listora_admin/internal/gateway"
	"listora_admin/internal/session"
	"listora_admin/pkg/config"
	"listora_admin/pkg/cron"
	"listora_admin/pkg/media"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Katalog (statik konfigürasyon)
	api.Get("/catalog", controller.GetCatalog)
	api.Get("/catalog/:category", controller.GetCategoryConfig)

	// Composer (ilan sihirbazı oturumları)
	composer := api.Group("/composer")
	composer.Post("/", controller.OpenComposer)
	composer.Get("/:id", controller.GetComposerState)
	composer.Patch("/:id", controller.MergeDraft)
	composer.Post("/:id/advance", controller.AdvanceStep)
	composer.Post("/:id/retreat", controller.RetreatStep)
	composer.Post("/:id/submit", controller.SubmitListing)
	composer.Delete("/:id", controller.CancelComposer)

	// Taslağın sıralı koleksiyonları
	composer.Post("/:id/faqs", controller.AddFAQ)
	composer.Put("/:id/faqs/:faq_id", controller.UpdateFAQ)
	composer.Delete("/:id/faqs/:faq_id", controller.RemoveFAQ)
	composer.Post("/:id/local-amenities", controller.AddLocalAmenity)
	composer.Put("/:id/local-amenities/:amenity_id", controller.UpdateLocalAmenity)
	composer.Delete("/:id/local-amenities/:amenity_id", controller.RemoveLocalAmenity)
	composer.Post("/:id/amenities", controller.AddCustomAmenity)
	composer.Patch("/:id/amenities/:amenity_id", controller.SetAmenitySelected)
	composer.Delete("/:id/amenities/:amenity_id", controller.RemoveCustomAmenity)
	composer.Put("/:id/payment-options", controller.SetPaymentOptions)

	// Medya yükleme
	composer.Post("/:id/media/:slot", controller.UploadComposerMedia)
	composer.Delete("/:id/media/:media_id", controller.DeleteComposerMedia)

	// İlan yönetimi tabloları
	listings := api.Group("/listings")
	listings.Get("/", controller.ListListings)
	listings.Get("/:id", controller.GetListing)
	listings.Put("/:id/status", controller.UpdateListingStatus)
	listings.Put("/:id/featured", controller.SetListingFeatured)
	listings.Delete("/:id", controller.DeleteListing)

	// İçerik yönetimi ekranları
	partners := api.Group("/partners")
	partners.Get("/", controller.ListPartners)
	partners.Post("/", controller.CreatePartner)
	partners.Put("/:id", controller.UpdatePartner)
	partners.Delete("/:id", controller.DeletePartner)

	team := api.Group("/team")
	team.Get("/", controller.ListTeamMembers)
	team.Post("/", controller.CreateTeamMember)
	team.Put("/:id", controller.UpdateTeamMember)
	team.Delete("/:id", controller.DeleteTeamMember)

	jobs := api.Group("/jobs")
	jobs.Get("/", controller.ListJobs)
	jobs.Post("/", controller.CreateJob)
	jobs.Put("/:id", controller.UpdateJob)
	jobs.Delete("/:id", controller.DeleteJob)

	policies := api.Group("/policies")
	policies.Get("/", controller.ListPolicyPages)
	policies.Post("/", controller.CreatePolicyPage)
	policies.Put("/:id", controller.UpdatePolicyPage)
	policies.Delete("/:id", controller.DeletePolicyPage)
}

func buildMediaStore(cfg *config.Config) (media.Store, error) {
	if cfg.Media.Backend == "s3" {
		return media.NewS3Store(context.Background(), cfg.Media.S3Bucket, cfg.Media.S3Region)
	}
	return media.NewLocalStore(cfg.Media.LocalDir)
}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	})))

	cfg := config.Load()

	staging, err := buildMediaStore(cfg)
	if err != nil {
		slog.Error("could not initialize media staging store", "error", err)
		os.Exit(1)
	}
	slog.Info("media staging store initialized", "backend", cfg.Media.Backend)

	client := gateway.New(
		cfg.Marketplace.BaseURL,
		cfg.Marketplace.APIKey,
		time.Duration(cfg.Marketplace.TimeoutSeconds)*time.Second,
		staging,
	)

	registry := session.NewRegistry(time.Duration(cfg.Session.TTLMinutes)*time.Minute, staging)
	cron.InitSessionSweeperCron(registry)

	controller.InitComposerController(registry, client, staging)
	controller.InitListingController(client)
	controller.InitContentController(client)

	app := fiber.New(fiber.Config{
		BodyLimit: 120 * 1024 * 1024, // video yüklemeleri için
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	slog.Info("server is running", "port", cfg.Server.Port, "marketplace", cfg.Marketplace.BaseURL)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
