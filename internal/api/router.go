// Package api wires the HTTP surface: routing, access policy, and the
// central error handler.
package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glowmart/shop-api/internal/api/handler"
	"github.com/glowmart/shop-api/internal/api/middleware"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// Deps bundles everything the router needs. All services arrive fully
// constructed; the router owns only HTTP concerns.
type Deps struct {
	Auth       ports.AuthService
	Tokens     ports.TokenService
	Products   ports.ProductService
	Categories ports.CategoryService
	Reviews    ports.ReviewService
	Heroes     ports.HeroService

	DB          *mongo.Database
	Redis       *redis.Client
	FrontendURL string
	Log         zerolog.Logger
}

// accessRules is the ordered access policy, evaluated top to bottom with the
// first match winning. Order matters: the authenticated account routes sit
// above the public catch-all for /api/auth, and the per-verb catalog rules
// sit above their admin catch-alls. Anything unmatched requires
// authentication.
var accessRules = []middleware.Rule{
	{Method: "GET", Pattern: "/health/**", Require: middleware.Public},
	{Method: "GET", Pattern: "/metrics", Require: middleware.Public},
	{Method: "GET", Pattern: "/swagger/**", Require: middleware.Public},

	{Method: "POST", Pattern: "/api/auth/change-password", Require: middleware.Authenticated},
	{Method: "GET", Pattern: "/api/auth/user/**", Require: middleware.Authenticated},
	{Method: "*", Pattern: "/api/auth/users/**", Require: middleware.AdminOnly},
	{Method: "POST", Pattern: "/api/auth/**", Require: middleware.Public},

	{Method: "GET", Pattern: "/api/products/**", Require: middleware.Public},
	{Method: "*", Pattern: "/api/products/**", Require: middleware.AdminOnly},

	{Method: "GET", Pattern: "/api/categories/**", Require: middleware.Public},
	{Method: "*", Pattern: "/api/categories/**", Require: middleware.AdminOnly},

	{Method: "GET", Pattern: "/api/hero", Require: middleware.Public},
	{Method: "*", Pattern: "/api/hero/**", Require: middleware.AdminOnly},

	{Method: "GET", Pattern: "/api/reviews/approved", Require: middleware.Public},
	{Method: "POST", Pattern: "/api/reviews", Require: middleware.Authenticated},
	{Method: "*", Pattern: "/api/reviews/**", Require: middleware.AdminOnly},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{d.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("shop"))
	e.Use(middleware.Auth(d.Tokens))
	e.Use(middleware.Policy(accessRules))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	productHandler := handler.NewProductHandler(d.Products)
	categoryHandler := handler.NewCategoryHandler(d.Categories)
	reviewHandler := handler.NewReviewHandler(d.Reviews)
	heroHandler := handler.NewHeroHandler(d.Heroes)
	healthHandler := handler.NewHealthHandler(d.DB, d.Redis)

	// --- Ops routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/confirm-email", authHandler.ConfirmEmail)
	auth.POST("/change-password", authHandler.ChangePassword)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.GET("/user/profile", authHandler.Profile)
	auth.GET("/user/role", authHandler.Role)
	auth.GET("/users", authHandler.ListUsers)
	auth.GET("/users/:id", authHandler.GetUser)
	auth.PUT("/users/:id/role", authHandler.UpdateRole)
	auth.DELETE("/users/:id", authHandler.DeleteUser)

	// --- Catalog routes ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/bestsellers", productHandler.Bestsellers)
	products.GET("/new-arrivals", productHandler.NewArrivals)
	products.GET("/category/:id", productHandler.ListByCategory)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Hero banner ---
	e.GET("/api/hero", heroHandler.Get)
	e.PUT("/api/hero", heroHandler.Update)

	// --- Review routes ---
	reviews := e.Group("/api/reviews")
	reviews.GET("/approved", reviewHandler.ListApproved)
	reviews.GET("", reviewHandler.ListAll)
	reviews.POST("", reviewHandler.Submit)
	reviews.PUT("/:id/approve", reviewHandler.Approve)
	reviews.DELETE("/:id", reviewHandler.Delete)

	return e
}
