package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinerank/database"
	"cinerank/internal/api/handler"
	"cinerank/internal/api/middleware"
	"cinerank/internal/api/repository"
	"cinerank/internal/api/service"
	"cinerank/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := cfg.NewLogger()

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	listRepo := repository.NewListRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	catalogService := service.NewCatalogService(itemRepo, ratingRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo, itemRepo)
	ratingService := service.NewRatingService(ratingRepo, itemRepo)
	rankingService := service.NewRankingService(ratingRepo, itemRepo, categoryRepo)
	statsService := service.NewStatsService(categoryRepo, ratingRepo, itemRepo)
	listService := service.NewListService(listRepo, itemRepo)
	importService := service.NewImportService(itemRepo, categoryRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	rankingHandler := handler.NewRankingHandler(rankingService)
	listHandler := handler.NewListHandler(listService)
	adminHandler := handler.NewAdminHandler(statsService, importService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")

	// Public surface: browsing, rankings and rating reads need no token, but
	// an optional one personalizes the item detail.
	authHandler.RegisterRoutes(api.Group("/auth"))

	publicItems := api.Group("/items")
	publicItems.Use(middleware.OptionalAuth(authService))
	itemHandler.RegisterPublicRoutes(publicItems)
	ratingHandler.RegisterPublicRoutes(publicItems)

	categoryHandler.RegisterPublicRoutes(api.Group("/categories"))
	rankingHandler.RegisterPublicRoutes(api.Group("/rankings"))

	// Authenticated surface: rating writes and personal lists. Write rate
	// limiting applies here only.
	userItems := api.Group("/items")
	userItems.Use(middleware.AuthMiddleware(authService))
	userItems.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	ratingHandler.RegisterUserRoutes(userItems)

	lists := api.Group("/lists")
	lists.Use(middleware.AuthMiddleware(authService))
	lists.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	listHandler.RegisterRoutes(lists)

	// Admin surface
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService))
	admin.Use(middleware.RequireAdmin())
	itemHandler.RegisterAdminRoutes(admin.Group("/items"))
	categoryHandler.RegisterAdminRoutes(admin.Group("/categories"))
	rankingHandler.RegisterAdminRoutes(admin.Group("/rankings"))
	adminHandler.RegisterRoutes(admin)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
