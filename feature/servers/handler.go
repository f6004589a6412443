package servers

import (
	"errors"
	"net/url"

	"mc-panel/core/logger"
	"mc-panel/core/manager"
	"mc-panel/core/middleware/auth"
	"mc-panel/core/middleware/proxy"
	"mc-panel/core/tasks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderTaskID carries the id of a submitted lifecycle task.
const HeaderTaskID = "X-Task-ID"

// NoServersMessage is the landing page body when no server is known.
const NoServersMessage = "No servers? :("

// Handler handles HTTP requests for servers.
type Handler struct {
	service *Service
	gate    *auth.Gate
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, gate *auth.Gate, logger *zap.Logger) *Handler {
	return &Handler{service: service, gate: gate, logger: logger}
}

// RegisterRoutes registers the server routes. Everything but the landing
// page requires a session.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Get("/server/:name/", h.gate.Protect(), h.HandleDetail)
	app.Get("/server/:name/:action", h.gate.Protect(), h.HandleAction)
	app.Get("/tasks/:id", h.gate.Protect(), h.HandleTask)
}

// DetailPath returns the detail view path of a server.
func DetailPath(name string) string {
	return "/server/" + url.PathEscape(name) + "/"
}

// HandleIndex redirects to the first known server.
// @Summary Landing page
// @Tags servers
// @Produce plain
// @Success 200 {string} string "No servers configured"
// @Success 302
// @Router / [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	reg, err := h.service.Registry(c.UserContext())
	if err != nil {
		return err
	}
	first, ok := reg.First()
	if !ok {
		return c.SendString(NoServersMessage)
	}
	return proxy.Redirect(c, DetailPath(first.Name))
}

// HandleDetail returns the server's state, worlds and the jar catalog.
// @Summary Server detail
// @Tags servers
// @Produce json
// @Param name path string true "Server name"
// @Success 200 {object} servers.Detail
// @Failure 404 {object} map[string]string "Unknown server"
// @Failure 500 {object} map[string]string "Manager failure"
// @Router /server/{name}/ [get]
func (h *Handler) HandleDetail(c *fiber.Ctx) error {
	name, err := proxy.Param(c, "name")
	if err != nil {
		return err
	}
	detail, err := h.service.Detail(c.UserContext(), name)
	if err != nil {
		return statusError(err)
	}
	return c.JSON(detail)
}

// HandleAction submits start, stop or restart and returns to the detail
// view without waiting for the command.
// @Summary Server lifecycle action
// @Tags servers
// @Param name path string true "Server name"
// @Param action path string true "start, stop or restart"
// @Success 302 {string} string "Redirect to the detail view, X-Task-ID set"
// @Failure 404 {object} map[string]string "Unknown server or action"
// @Failure 503 {object} map[string]string "Shutting down"
// @Router /server/{name}/{action} [get]
func (h *Handler) HandleAction(c *fiber.Ctx) error {
	name, err := proxy.Param(c, "name")
	if err != nil {
		return err
	}
	action, ok := manager.ParseAction(c.Params("action"))
	if !ok {
		return fiber.ErrNotFound
	}

	task, err := h.service.Submit(c.UserContext(), name, action)
	if err != nil {
		return statusError(err)
	}

	logger.WithRayID(h.logger, c).Info("Lifecycle action submitted",
		zap.String("server", name),
		zap.String("action", string(action)),
		zap.String("task_id", task.ID),
		zap.String("by", auth.Username(c)),
	)
	c.Set(HeaderTaskID, task.ID)
	return proxy.Redirect(c, DetailPath(name))
}

// HandleTask returns the status of a lifecycle task.
// @Summary Task status
// @Tags servers
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} tasks.Task
// @Failure 404 {object} map[string]string "Unknown task"
// @Router /tasks/{id} [get]
func (h *Handler) HandleTask(c *fiber.Ctx) error {
	task, err := h.service.Task(c.Params("id"))
	if err != nil {
		return statusError(err)
	}
	return c.JSON(task)
}

func statusError(err error) error {
	switch {
	case errors.Is(err, ErrServerNotFound), errors.Is(err, tasks.ErrTaskNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, tasks.ErrShuttingDown):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	return err
}
