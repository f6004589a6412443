package cmd

import (
	"errors"

	"mc-panel/core/loader"
	"mc-panel/core/logger"
	"mc-panel/core/middleware/auth"
	"mc-panel/core/middleware/proxy"
	"mc-panel/core/middleware/rayid"
	"mc-panel/feature/admins"
	login "mc-panel/feature/auth"
	"mc-panel/feature/servers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "mc-panel/docs/swagger"
)

// newApp builds the Fiber application with every feature mounted.
// Global middleware is registered before any route so the proxy path
// rewrite is what gets routed.
func newApp(p *panel, db *gorm.DB) (*fiber.App, error) {
	cfg, logg := p.cfg, p.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Request logging
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// 3. Reverse proxy headers
	app.Use(proxy.New())

	// 4. Session cookie encryption
	if cfg.Server.CookieKey != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.Server.CookieKey}))
	} else {
		logg.Warn("SERVER_COOKIE_KEY is empty, session cookies are not encrypted")
	}

	// Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	gate := auth.NewGate(cfg.Session)
	gate.VerifyWith(admins.NewStore(db))

	mgr := loader.NewManager(logg)
	mgr.Register(login.NewFeature(db, gate, logg))
	mgr.Register(servers.NewFeature(p.servers, gate, logg))
	mgr.Register(admins.NewFeature(db, gate, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

// errorHandler renders handler errors as JSON. Errors were already logged
// by the request middleware; server-side failures only expose the status
// text.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	msg := err.Error()
	if code >= fiber.StatusInternalServerError {
		msg = utils.StatusMessage(code)
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
