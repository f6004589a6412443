package servers

import (
	"mc-panel/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the servers feature.
func NewFeature(service *Service, gate *auth.Gate, logger *zap.Logger) *Feature {
	return &Feature{service: service, handler: NewHandler(service, gate, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "servers"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
