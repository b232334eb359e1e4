package router

import (
	"github.com/oksasatya/go-ecommerce-api/internal/application"
	"github.com/oksasatya/go-ecommerce-api/internal/container"
	pginfra "github.com/oksasatya/go-ecommerce-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-ecommerce-api/internal/interface/http"
	"github.com/oksasatya/go-ecommerce-api/internal/router/modules"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is filled.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)
	reviewRepo := pginfra.NewReviewRepository(pool)
	cartRepo := pginfra.NewCartRepository(pool)

	authSvc := application.NewAuthService(
		userRepo,
		container.GetJWT(),
		container.GetRedis(),
		container.GetRabbitPub(),
		logger,
		cfg.MailSendEnabled,
	)
	userSvc := application.NewUserService(userRepo, container.GetGCS(), cfg.GCSBucket, logger)
	productSvc := application.NewProductService(productRepo, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESProductsIndex, logger)
	reviewSvc := application.NewReviewService(reviewRepo, productRepo, logger)
	cartSvc := application.NewCartService(cartRepo, productRepo, logger)

	cookies := helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure, cfg.CookieTTL)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cookies)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	productHandler := handlers.NewProductHandler(productSvc, logger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, logger)
	cartHandler := handlers.NewCartHandler(cartSvc, logger)

	r.Add(modules.NewUserModule(authHandler, userHandler, container.GetJWT()))
	r.Add(modules.NewProductModule(productHandler, container.GetJWT()))
	r.Add(modules.NewReviewModule(reviewHandler, container.GetJWT()))
	r.Add(modules.NewCartModule(cartHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
