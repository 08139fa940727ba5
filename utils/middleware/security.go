package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SecurityConfig holds security middleware configuration
type SecurityConfig struct {
	AllowedOrigins string
}

// SetupSecurity applies all security middleware
func SetupSecurity(app *fiber.App, config SecurityConfig) {
	// Request ID middleware - add unique ID to each request
	app.Use(requestid.New())

	// Logger middleware - log all requests
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${ip}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	// Recover middleware - recover from panics
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Helmet middleware - secure HTTP headers
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "no-referrer",
	}))

	// CORS middleware. The catalog is read-only public data, so open
	// origins are fine; admin routes are guarded by the shared secret.
	origins := config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,x-admin-secret",
	}))
}
