// Package api assembles the HTTP surface: routing, middleware, error
// mapping, and Prometheus metrics.
package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/uzeed/marketplace-api/docs"
	"github.com/uzeed/marketplace-api/internal/api/handler"
	"github.com/uzeed/marketplace-api/internal/api/middleware"
	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
	"github.com/uzeed/marketplace-api/internal/core/service"
	"github.com/uzeed/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/uzeed/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/uzeed/marketplace-api/internal/realtime"
)

// Dependencies carries the externally managed pieces the router wires
// handlers onto. The realtime and view components have their own lifecycles
// (worker pools, registries) so main owns them, not the router.
type Dependencies struct {
	Config      *config.Config
	Mongo       *mongo.Database
	Redis       *redis.Client
	Registry    *realtime.Registry
	Hub         *realtime.Hub
	Tracker     *realtime.Tracker
	ViewService ports.ViewService
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("uzeed"))

	// --- Repositories ---
	users := mongostore.NewUserRepository(deps.Mongo)
	establishments := mongostore.NewEstablishmentRepository(deps.Mongo)
	catalog := mongostore.NewCatalogRepository(deps.Mongo)
	ratings := mongostore.NewRatingRepository(deps.Mongo)
	favorites := mongostore.NewFavoriteRepository(deps.Mongo)
	requests := mongostore.NewRequestRepository(deps.Mongo)
	messages := mongostore.NewMessageRepository(deps.Mongo)

	// --- Services ---
	cfg := deps.Config
	authService := service.NewAuthService(users, cfg.JWTSecret, 7*24*time.Hour)
	directoryService := service.NewDirectoryService(users, establishments, catalog, ratings, deps.ViewService, deps.Log)
	favoriteService := service.NewFavoriteService(favorites, users, ratings, deps.Log)
	ratingService := service.NewRatingService(ratings, users, establishments, deps.Hub, deps.Log)
	requestService := service.NewRequestService(requests, users, deps.Hub, deps.Log)
	messageService := service.NewMessageService(messages, deps.Hub, deps.Log)
	adminService := service.NewAdminService(users, establishments, catalog, deps.Log)

	// --- Handlers ---
	secureCookie := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, secureCookie)
	realtimeHandler := handler.NewRealtimeHandler(deps.Registry, deps.Tracker, cfg.Realtime.HeartbeatInterval, deps.Log)
	directoryHandler := handler.NewDirectoryHandler(directoryService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	requestHandler := handler.NewRequestHandler(requestService)
	messageHandler := handler.NewMessageHandler(messageService)
	adminHandler := handler.NewAdminHandler(adminService)
	viewHandler := handler.NewViewHandler(deps.ViewService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me, auth)

	// --- Realtime stream ---
	v1.GET("/realtime/stream", realtimeHandler.Stream, auth)

	// --- Directory (public reads; profile detail records views when authenticated) ---
	v1.GET("/directory/professionals", directoryHandler.SearchProfessionals)
	v1.GET("/directory/professionals/:id", directoryHandler.GetProfessional, middleware.OptionalAuth(cfg.JWTSecret))
	v1.GET("/directory/establishments", directoryHandler.SearchEstablishments)
	v1.GET("/directory/establishments/:id", directoryHandler.GetEstablishment)
	v1.GET("/directory/categories", directoryHandler.ListCategories)
	v1.GET("/directory/plans", directoryHandler.ListPlans)

	// --- Favorites ---
	v1.GET("/favorites", favoriteHandler.List, auth)
	v1.PUT("/favorites/:id", favoriteHandler.Add, auth)
	v1.DELETE("/favorites/:id", favoriteHandler.Remove, auth)

	// --- Ratings ---
	v1.POST("/ratings/professionals/:id", ratingHandler.RateProfessional, auth)
	v1.POST("/ratings/establishments/:id", ratingHandler.RateEstablishment, auth)

	// --- Service requests ---
	v1.POST("/requests", requestHandler.Create, auth)
	v1.GET("/requests", requestHandler.List, auth)
	v1.PATCH("/requests/:id/status", requestHandler.UpdateStatus, auth)

	// --- Messaging ---
	v1.POST("/conversations", messageHandler.CreateConversation, auth)
	v1.GET("/conversations", messageHandler.ListConversations, auth)
	v1.GET("/conversations/:id/messages", messageHandler.ListMessages, auth)
	v1.POST("/conversations/:id/messages", messageHandler.Send, auth)

	// --- Profile view history ---
	v1.GET("/me/views", viewHandler.ListRecent, auth)

	// --- Back office (admin only) ---
	admin := v1.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PATCH("/categories/:id", adminHandler.RenameCategory)
	admin.POST("/establishments", adminHandler.CreateEstablishment)
	admin.PUT("/establishments/:id", adminHandler.UpdateEstablishment)
	admin.POST("/plans", adminHandler.CreatePlan)
	admin.PUT("/plans/:id", adminHandler.UpdatePlan)
	admin.PATCH("/users/:id/active", adminHandler.SetUserActive)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	// liveness – is the process alive? readiness – are dependencies up?
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
