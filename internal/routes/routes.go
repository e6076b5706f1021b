package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/handlers"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/middleware"
	"github.com/Prithwiraj731/Money-Miners/internal/services"
)

// Deps carries everything the route handlers need.
type Deps struct {
	DB             *gorm.DB
	Cfg            *config.Config
	Mail           *mailer.Dispatcher
	MailMock       bool
	Log            *logrus.Logger
	LimiterStorage fiber.Storage
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, d Deps) {
	verifier := services.NewEnvAdminVerifier(d.Cfg.AdminEmail, d.Cfg.AdminPass)

	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg, d.Mail, d.MailMock, d.Log)
	adminHandler := handlers.NewAdminHandler(d.DB, d.Cfg, verifier, d.Mail, d.Log)
	cartHandler := handlers.NewCartHandler(d.DB)
	purchaseHandler := handlers.NewPurchaseHandler(d.DB, d.Cfg, d.Mail, d.Log)
	contactHandler := handlers.NewContactHandler(d.DB, d.Cfg, d.Mail, d.MailMock, d.Log)
	catalogHandler := handlers.NewCatalogHandler()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "running", "message": "Money Miners API v2.1"})
	})

	api := app.Group("/api", middleware.RateLimit("api", d.Cfg.APILimit, d.LimiterStorage,
		"Too many requests from this IP, please try again later."))

	api.Get("/debug-status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "online",
			"purchases_ready": true,
			"mail_mock":       d.MailMock,
		})
	})

	// Auth routes, each with its own abuse limiter
	auth := api.Group("/auth")
	auth.Post("/send-otp",
		middleware.RateLimit("auth_otp", d.Cfg.OTPLimit, d.LimiterStorage,
			"Too many OTP requests. Please try again after 5 minutes."),
		authHandler.SendOtp)
	auth.Post("/register",
		middleware.RateLimit("auth_register", d.Cfg.RegisterLimit, d.LimiterStorage,
			"Too many registration attempts. Please try again later."),
		authHandler.Register)
	auth.Post("/login",
		middleware.RateLimit("auth_login", d.Cfg.LoginLimit, d.LimiterStorage,
			"Too many login attempts. Please try again after 15 minutes."),
		authHandler.Login)

	// Course catalog (public, static data)
	courses := api.Group("/courses")
	courses.Get("/", catalogHandler.ListCourses)
	courses.Get("/:id", catalogHandler.GetCourse)

	// Cart (user auth)
	cart := api.Group("/cart", middleware.RequireAuth(d.Cfg))
	cart.Post("/add", cartHandler.AddToCart)
	cart.Get("/", cartHandler.GetCart)
	cart.Delete("/:courseId", cartHandler.RemoveFromCart)

	// Purchases (user auth)
	purchases := api.Group("/purchases", middleware.RequireAuth(d.Cfg))
	purchases.Post("/submit", purchaseHandler.SubmitPurchase)
	purchases.Get("/user", purchaseHandler.GetUserPurchases)
	purchases.Get("/:id", purchaseHandler.GetPurchase)

	// Contact / lead capture (public, rate-limited)
	contact := api.Group("/contact", middleware.RateLimit("contact", d.Cfg.ContactLimit, d.LimiterStorage,
		"Too many submissions. Please wait before submitting again."))
	contact.Post("/", contactHandler.SubmitContactForm)
	contact.Post("/exclusive-inquiry", contactHandler.SendExclusiveInquiry)

	// Admin console
	admin := api.Group("/admin")
	admin.Post("/login",
		middleware.RateLimit("admin_login", d.Cfg.AdminLimit, d.LimiterStorage,
			"Too many admin login attempts. Please try again after 15 minutes."),
		adminHandler.Login)

	adminOnly := admin.Group("", middleware.RequireAdmin(d.Cfg))
	adminOnly.Get("/purchases/all", adminHandler.ListAllPurchases)
	adminOnly.Put("/purchases/status", adminHandler.UpdatePurchaseStatus)
	adminOnly.Get("/stats", adminHandler.Stats)

	// Trailing 404 with path/method echoed for debugging
	app.Use(func(c *fiber.Ctx) error {
		d.Log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Warn("route not found")

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Route not found",
			"path":   c.Path(),
			"method": c.Method(),
		})
	})
}
