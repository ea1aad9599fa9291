package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/NatePombi/inventory-management-system-api/docs"
	"github.com/NatePombi/inventory-management-system-api/internal/api/handler"
	"github.com/NatePombi/inventory-management-system-api/internal/api/middleware"
	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/service"
	"github.com/NatePombi/inventory-management-system-api/internal/pkg/config"
	"github.com/NatePombi/inventory-management-system-api/internal/pkg/token"
	mongodb "github.com/NatePombi/inventory-management-system-api/internal/infrastructure/db/mongo"
	redisdb "github.com/NatePombi/inventory-management-system-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Public paths (login, registration, docs, probes, metrics) bypass the auth
// middleware; everything else requires a valid bearer token.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	denylist := redisdb.NewDenylist(rdb)
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, denylist, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(tokens, userRepo, denylist)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated routes ---
	auth := e.Group("/auth", authRequired)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("", userHandler.List, adminOnly)
	auth.GET("/:username", userHandler.Get, adminOnly)
	auth.DELETE("/:username", userHandler.Delete, adminOnly)

	products := e.Group("/product", authRequired)
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PATCH("/:id", productHandler.Update)
	// Route-level admin gate on deletion, on top of the in-service ownership check.
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	return e
}
