package auth

import (
	"fmt"
	"html"

	"mc-panel/core/database"
	"mc-panel/core/logger"
	"mc-panel/core/middleware/auth"
	"mc-panel/core/middleware/proxy"
	"mc-panel/feature/admins"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const loginForm = `<!doctype html>
<title>Login</title>
<form method="post" action="%s">
<input name="username" placeholder="username" autofocus>
<input name="password" type="password" placeholder="password">
<button type="submit">Log in</button>
</form>
`

// Handler serves the login form and the session transitions.
type Handler struct {
	db     *gorm.DB
	gate   *auth.Gate
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(db *gorm.DB, gate *auth.Gate, logger *zap.Logger) *Handler {
	return &Handler{db: db, gate: gate, logger: logger}
}

// RegisterRoutes registers the login routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(auth.LoginPath, h.HandleForm)
	app.Post(auth.LoginPath, database.Scoped(h.db), h.HandleLogin)
	app.All(auth.LoginPath, func(c *fiber.Ctx) error {
		return fiber.ErrBadRequest
	})
	app.Get("/logout", h.HandleLogout)
}

// HandleForm renders the login form.
func (h *Handler) HandleForm(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(fmt.Sprintf(loginForm, html.EscapeString(proxy.URL(c, auth.LoginPath))))
}

// HandleLogin validates the submitted credentials. Success redirects to the
// page that sent the visitor here, or to the landing page; failure redirects
// back to the form.
// @Summary Log in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Router /login/ [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	username := c.FormValue("username")

	store := admins.NewStore(database.FromCtx(c, h.db))
	ok, err := store.Validate(c.UserContext(), username, c.FormValue("password"))
	if err != nil {
		return err
	}
	if !ok {
		l.Info("Login rejected", zap.String("username", username), zap.String("ip", c.IP()))
		return proxy.Redirect(c, auth.LoginPath)
	}

	sess, err := h.gate.Session(c)
	if err != nil {
		return err
	}
	next, err := sess.Login(username)
	if err != nil {
		return err
	}

	l.Info("Login accepted", zap.String("username", username))
	if next != "" {
		return c.Redirect(next, fiber.StatusFound)
	}
	return proxy.Redirect(c, "/")
}

// HandleLogout discards the session.
// @Summary Log out
// @Tags auth
// @Success 302
// @Router /logout [get]
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.gate.Session(c)
	if err != nil {
		return err
	}
	user := sess.Username()
	if err := sess.Logout(); err != nil {
		return err
	}
	if user != "" {
		logger.WithRayID(h.logger, c).Info("Logout", zap.String("username", user))
	}
	return proxy.Redirect(c, auth.LoginPath)
}
