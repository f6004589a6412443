package database

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const txKey = "db_tx"

// Scoped returns middleware that runs the rest of the chain inside one
// transaction. It commits when the chain returns nil and rolls back on an
// error or a panic, so the handle is released on every exit path.
func Scoped(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			c.Locals(txKey, tx)
			defer c.Locals(txKey, nil)
			return c.Next()
		})
	}
}

// FromCtx returns the request scoped transaction, or fallback when the route
// is not wrapped by Scoped.
func FromCtx(c *fiber.Ctx, fallback *gorm.DB) *gorm.DB {
	if tx, ok := c.Locals(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}
