package routes

import (
	"time"

	"github.com/annadata/backend/internal/config"
	"github.com/annadata/backend/internal/handlers"
	"github.com/annadata/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	cropHandler *handlers.CropHandler,
	equipmentHandler *handlers.EquipmentHandler,
	tradeHandler *handlers.TradeHandler,
	dashboardHandler *handlers.DashboardHandler,
	marketHandler *handlers.MarketHandler,
	advisoryHandler *handlers.AdvisoryHandler,
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

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Profiles
	api.Post("/users", middleware.JWTProtected(cfg), profileHandler.Create)
	api.Get("/users", middleware.JWTProtected(cfg), profileHandler.Get)

	// Listings
	api.Post("/crops", middleware.JWTProtected(cfg), cropHandler.Create)
	api.Get("/crops", middleware.JWTProtected(cfg), cropHandler.List)
	api.Post("/equipment", middleware.JWTProtected(cfg), equipmentHandler.Create)
	api.Get("/equipment", middleware.JWTProtected(cfg), equipmentHandler.List)

	// Trades
	api.Post("/crops/:id/purchase", middleware.JWTProtected(cfg), tradeHandler.PurchaseCrop)
	api.Post("/equipment/:id/purchase", middleware.JWTProtected(cfg), tradeHandler.PurchaseEquipment)
	api.Post("/equipment/:id/rentals", middleware.JWTProtected(cfg), tradeHandler.RentEquipment)

	// Dashboard
	api.Get("/dashboard", middleware.JWTProtected(cfg), dashboardHandler.Stats)

	// Market data & advisory
	api.Get("/market/mandi-prices", middleware.JWTProtected(cfg), marketHandler.ListMandiPrices)
	api.Get("/weather", middleware.JWTProtected(cfg), advisoryHandler.Weather)
	api.Get("/schemes", middleware.JWTProtected(cfg), advisoryHandler.Schemes)

	// Admin (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Put("/mandi-prices/:crop", marketHandler.SetMandiPrice)
}
