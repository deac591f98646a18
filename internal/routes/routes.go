package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/lunarcommerce/lunar-backend/internal/config"
	"github.com/lunarcommerce/lunar-backend/internal/handlers"
	"github.com/lunarcommerce/lunar-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	oauthHandler *handlers.OAuthHandler,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.CategoryHandler,
	orderHandler *handlers.OrderHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth routes are public with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh-token", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/oauth/google/callback", oauthHandler.GoogleCallback)
	auth.Post("/oauth/apple/callback", oauthHandler.AppleCallback)

	jwtOnly := middleware.JWTProtected(cfg)
	adminOnly := middleware.AdminRequired(db)

	// Protected auth routes - apply middleware to individual routes so
	// the JWT middleware doesn't affect the public ones above
	api.Post("/auth/logout-all", jwtOnly, authHandler.LogoutAll)
	api.Get("/auth/profile", jwtOnly, authHandler.Profile)
	api.Post("/auth/oauth/link-social", jwtOnly, oauthHandler.LinkSocial)

	// Catalog: reads are public, writes are admin-only
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/gender/:gender", productHandler.ListByGender)
	products.Get("/gender/:gender/:category", productHandler.ListByGenderAndCategory)
	products.Get("/:id", productHandler.Get)
	products.Post("/", jwtOnly, adminOnly, productHandler.Create)
	products.Put("/:id", jwtOnly, adminOnly, productHandler.Update)
	products.Delete("/:id", jwtOnly, adminOnly, productHandler.Delete)

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:gender", categoryHandler.NamesByGender)
	categories.Post("/", jwtOnly, adminOnly, categoryHandler.Create)

	// Orders: customers see their own, admins see and manage all
	orders := api.Group("/orders")
	orders.Post("/", jwtOnly, orderHandler.Create)
	orders.Get("/my-orders", jwtOnly, orderHandler.MyOrders)
	orders.Get("/", jwtOnly, adminOnly, orderHandler.ListAll)
	orders.Put("/:id/status", jwtOnly, adminOnly, orderHandler.UpdateStatus)
	orders.Get("/:id", jwtOnly, orderHandler.Get)

	api.Get("/users", jwtOnly, adminOnly, userHandler.ListAll)
	api.Get("/admin/stats", jwtOnly, adminOnly, userHandler.Stats)
}
