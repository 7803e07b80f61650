package app

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api"
	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/identity"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/money"
	"storefront/internal/procedure"
	"storefront/internal/repositories"
	"storefront/internal/routes"
	"storefront/internal/services"
	"storefront/internal/validator"
	"storefront/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		apperrors.Debug = false
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := prepareDatabase(cfg, gormDB); err != nil {
		logger.Fatal("Failed to prepare database", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Server starting", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server startup error", "error", err)
	}
}

func prepareDatabase(cfg *config.Config, gormDB *gorm.DB) error {
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			return err
		}
		logger.Info("Database migrated")
	}

	if cfg.Database.Seed {
		created, err := database.SeedProducts(gormDB, database.DemoProducts())
		if err != nil {
			return err
		}
		logger.Info("Demo products seeded", "created", created)
	}
	return nil
}

// SetupRouter собирает сервисы, дерево процедур и gin.Engine
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	identityProvider, err := newIdentityProvider(cfg)
	if err != nil {
		return nil, err
	}

	verifier, err := auth.NewVerifier(cfg.JWT.Secret, cfg.JWT.PublicKey, cfg.JWT.Issuer)
	if err != nil {
		return nil, fmt.Errorf("session verifier: %w", err)
	}

	serviceContainer, err := initializeServices(cfg, identityProvider)
	if err != nil {
		return nil, err
	}
	appRouter := api.NewAppRouter(validator.New(), serviceContainer)
	logger.Info("Procedures registered", "paths", appRouter.Paths())

	appHandlers := initializeHandlers(appRouter)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, verifier)

	return ginRouter, nil
}

func newIdentityProvider(cfg *config.Config) (identity.Provider, error) {
	switch cfg.Identity.Provider {
	case "clerk":
		logger.Info("Identity provider: clerk", "base_url", cfg.Identity.BaseURL)
		return identity.NewClerkClient(cfg.Identity.BaseURL, cfg.Identity.SecretKey, cfg.Identity.Timeout), nil
	case "static":
		logger.Warn("Identity provider: static. Every caller gets a profile named after its id.")
		provider := identity.NewStaticProvider()
		provider.Fallback = true
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", cfg.Identity.Provider)
	}
}

func initializeServices(cfg *config.Config, identityProvider identity.Provider) (*services.ServiceContainer, error) {
	currency, err := money.CurrencyFromCode(cfg.Store.Currency)
	if err != nil {
		return nil, fmt.Errorf("store currency: %w", err)
	}
	logger.Info("Store currency", "code", currency.Code, "exponent", currency.Exponent)

	productRepo := repositories.NewProductRepository()
	userRepo := repositories.NewUserRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &services.ServiceContainer{
		ProductService: services.NewProductService(productRepo, currency),
		ReviewService:  services.NewReviewService(productRepo, userRepo, reviewRepo, identityProvider),
	}, nil
}

func initializeHandlers(appRouter *procedure.Router) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler()

	return &handlers.AppHandlers{
		ProcedureHandler:  handlers.NewProcedureHandler(baseHandler, appRouter),
		StorefrontHandler: handlers.NewStorefrontHandler(baseHandler, appRouter),
		HealthHandler:     handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
