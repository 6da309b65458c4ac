package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movielobby/catalog-api/internal/api/handler"
	"github.com/movielobby/catalog-api/internal/api/middleware"
	"github.com/movielobby/catalog-api/internal/core/domain"
	"github.com/movielobby/catalog-api/internal/core/service"
	"github.com/movielobby/catalog-api/internal/core/token"
	"github.com/movielobby/catalog-api/internal/infrastructure/cache"
	"github.com/movielobby/catalog-api/internal/infrastructure/config"
	mongodb "github.com/movielobby/catalog-api/internal/infrastructure/db/mongo"
	"github.com/movielobby/catalog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all dependencies constructed and
// all routes registered. Every mutable collaborator (stores, cache, token
// manager) is an explicitly constructed instance owned here; nothing is
// process-global.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("movielobby"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWTSecret, token.DefaultTTL)

	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	respCache := cache.NewRedisCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	movieService := service.NewMovieService(movieRepo, respCache, cfg.CacheTTL, log)

	userHandler := handler.NewUserHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)

	authed := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- User routes (no auth required) ---
	e.POST("/users", userHandler.Register)
	e.POST("/users/login", userHandler.Login)

	// --- Movie routes ---
	// All movie routes sit behind token auth; the response cache lives
	// inside the listing read path, so nothing is served pre-auth.
	movies := e.Group("/movies", authed)
	movies.POST("", movieHandler.Create, adminOnly)
	movies.GET("", movieHandler.List)
	movies.GET("/search", movieHandler.Search)
	movies.PUT("/:id", movieHandler.Update, adminOnly)
	movies.DELETE("/:id", movieHandler.Delete, adminOnly)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
