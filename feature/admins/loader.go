package admins

import (
	"mc-panel/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the admin management feature.
func NewFeature(db *gorm.DB, gate *auth.Gate, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(db, gate, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "admins"
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
