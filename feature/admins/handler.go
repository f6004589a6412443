package admins

import (
	"errors"
	"fmt"
	"html"

	"mc-panel/core/database"
	"mc-panel/core/logger"
	"mc-panel/core/middleware/auth"
	"mc-panel/core/middleware/proxy"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const newAdminForm = `<!doctype html>
<title>New admin</title>
<form method="post" action="%s">
<input name="username" placeholder="username">
<input name="password" type="password" placeholder="password">
<button type="submit">Create</button>
</form>
`

// Handler handles HTTP requests for admin management.
type Handler struct {
	db     *gorm.DB
	gate   *auth.Gate
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(db *gorm.DB, gate *auth.Gate, logger *zap.Logger) *Handler {
	return &Handler{db: db, gate: gate, logger: logger}
}

// RegisterRoutes registers the admin routes. Every route requires a session
// and runs inside one transaction.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	guard := func(handler fiber.Handler) []fiber.Handler {
		return []fiber.Handler{h.gate.Protect(), database.Scoped(h.db), handler}
	}

	app.Get("/admins/", guard(h.HandleList)...)
	app.Get("/admins/:user/delete", guard(h.HandleDelete)...)
	app.Get("/admins/:user/", guard(h.HandleGet)...)
	app.Post("/admins/:user/", guard(h.HandleUpdate)...)
	app.All("/admins/:user/", badMethod)
	app.Get("/newadmin", guard(h.HandleNewForm)...)
	app.Post("/newadmin", guard(h.HandleCreate)...)
	app.All("/newadmin", badMethod)
}

func (h *Handler) store(c *fiber.Ctx) *Store {
	return NewStore(database.FromCtx(c, h.db))
}

// HandleList returns all usernames.
// @Summary List admins
// @Tags admins
// @Produce json
// @Success 200 {object} map[string][]string "Usernames"
// @Router /admins/ [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	names, err := h.store(c).List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admins": names})
}

// HandleGet returns one admin.
// @Summary Show admin
// @Tags admins
// @Produce json
// @Param user path string true "Username"
// @Success 200 {object} models.Admin
// @Failure 404 {object} map[string]string "Unknown admin"
// @Router /admins/{user}/ [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	user, err := proxy.Param(c, "user")
	if err != nil {
		return err
	}
	admin, err := h.store(c).Get(c.UserContext(), user)
	if err != nil {
		return statusError(err)
	}
	return c.JSON(admin)
}

// HandleUpdate renames an admin and optionally changes the password.
// @Summary Update admin
// @Tags admins
// @Accept x-www-form-urlencoded
// @Param user path string true "Username"
// @Param username formData string true "New username"
// @Param password formData string false "New password, empty keeps the current one"
// @Success 302
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown admin"
// @Failure 409 {object} map[string]string "Username taken"
// @Router /admins/{user}/ [post]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	old, err := proxy.Param(c, "user")
	if err != nil {
		return err
	}
	newName := c.FormValue("username")
	if err := h.store(c).Update(c.UserContext(), old, newName, c.FormValue("password")); err != nil {
		return statusError(err)
	}

	logger.WithRayID(h.logger, c).Info("Admin updated",
		zap.String("admin", old),
		zap.String("username", newName),
		zap.String("by", auth.Username(c)),
	)
	return proxy.Redirect(c, "/admins/")
}

// HandleDelete removes an admin.
// @Summary Delete admin
// @Tags admins
// @Param user path string true "Username"
// @Success 302
// @Failure 404 {object} map[string]string "Unknown admin"
// @Router /admins/{user}/delete [get]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	user, err := proxy.Param(c, "user")
	if err != nil {
		return err
	}
	if err := h.store(c).Delete(c.UserContext(), user); err != nil {
		return statusError(err)
	}

	logger.WithRayID(h.logger, c).Info("Admin deleted",
		zap.String("admin", user),
		zap.String("by", auth.Username(c)),
	)
	return proxy.Redirect(c, "/admins/")
}

// HandleNewForm renders the creation form.
func (h *Handler) HandleNewForm(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(fmt.Sprintf(newAdminForm, html.EscapeString(proxy.URL(c, "/newadmin"))))
}

// HandleCreate adds an admin.
// @Summary Create admin
// @Tags admins
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username taken"
// @Router /newadmin [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	user := c.FormValue("username")
	if err := h.store(c).Create(c.UserContext(), user, c.FormValue("password")); err != nil {
		return statusError(err)
	}

	logger.WithRayID(h.logger, c).Info("Admin created",
		zap.String("admin", user),
		zap.String("by", auth.Username(c)),
	)
	return proxy.Redirect(c, "/admins/")
}

func badMethod(c *fiber.Ctx) error {
	return fiber.ErrBadRequest
}

func statusError(err error) error {
	switch {
	case errors.Is(err, ErrAdminNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrUsernameTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
