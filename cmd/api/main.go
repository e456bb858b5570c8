package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/photoglow/photoglow-backend/internal/catalog"
	"github.com/photoglow/photoglow-backend/internal/config"
	"github.com/photoglow/photoglow-backend/internal/handler"
	"github.com/photoglow/photoglow-backend/internal/middleware"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/internal/repository"
	"github.com/photoglow/photoglow-backend/internal/service"
	"github.com/photoglow/photoglow-backend/pkg/database"
	"github.com/photoglow/photoglow-backend/pkg/logger"
	"github.com/photoglow/photoglow-backend/pkg/payment"
	"github.com/photoglow/photoglow-backend/pkg/receipt"
	"github.com/photoglow/photoglow-backend/pkg/storage"
	"github.com/photoglow/photoglow-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Config'i yükle
	cfg := config.LoadConfig()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Repositories
	creditsRepo := repository.NewUserCreditsRepository(db)
	attemptRepo := repository.NewPurchaseAttemptRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	purchaseRepo := repository.NewCheckoutPurchaseRepository(db)
	eventRepo := repository.NewSubscriptionEventRepository(db)

	// Storage service
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Product catalog (immutable, servislere inject edilir)
	productCatalog := catalog.Default()

	// Receipt verifiers
	appleVerifier := receipt.NewAppleVerifier(
		cfg.Apple.SharedSecret,
		cfg.Apple.ProductionURL,
		cfg.Apple.SandboxURL,
		zapLogger,
	)
	googleVerifier := receipt.NewGoogleVerifier(zapLogger)
	dispatcher := receipt.NewDispatcher(map[string]receipt.Verifier{
		models.PlatformIOS:     appleVerifier,
		models.PlatformAndroid: googleVerifier,
	})

	// Stripe service
	stripeService := payment.NewStripeService(
		cfg.Stripe.SecretKey,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
	)

	// Services
	purchaseService := service.NewPurchaseService(dispatcher, productCatalog, creditsRepo, attemptRepo, zapLogger)
	accountService := service.NewAccountService(creditsRepo, zapLogger)
	photoService := service.NewPhotoService(photoRepo, r2Storage, zapLogger)
	paymentService := service.NewPaymentService(stripeService, productCatalog, creditsRepo, attemptRepo, purchaseRepo, zapLogger)
	subscriptionService := service.NewSubscriptionService(eventRepo, zapLogger)

	// Validator'ı önce tanımla
	validator := utils.NewValidator()

	// Handlers
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, validator)
	userHandler := handler.NewUserHandler(accountService, validator)
	photoHandler := handler.NewPhotoHandler(photoService)
	paymentHandler := handler.NewPaymentHandler(paymentService, cfg.Stripe.WebhookSecret, zapLogger)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, zapLogger)

	// Router
	app := fiber.New()

	// Global middleware'ler önce tanımlanmalı
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://photoglow.app, https://www.photoglow.app, http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Server-to-server webhooks (auth middleware'den ÖNCE olmalı)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)
	api.Post("/subscriptions/:platform", subscriptionHandler.HandleSubscriptionUpdate)

	// Protected routes
	api.Use(middleware.AuthMiddleware(zapLogger))
	{
		purchases := api.Group("/purchases")
		purchases.Post("/verify", purchaseHandler.VerifyPurchase)
		purchases.Get("/history", purchaseHandler.GetPurchaseHistory)

		user := api.Group("/user")
		user.Post("/credits", userHandler.AddCredits)
		user.Get("/info/:userId", userHandler.GetUserInfo)
		user.Get("/photos/:userId", photoHandler.GetUserPhotos)

		photos := api.Group("/photos")
		photos.Post("/", photoHandler.UploadPhoto)
		photos.Delete("/:id", photoHandler.DeletePhoto)

		payments := api.Group("/payments")
		payments.Post("/checkout/:productId", paymentHandler.CreateCheckoutSession)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
