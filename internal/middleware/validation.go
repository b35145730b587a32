package middleware

import (
	"mvpduo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedLevelKey     = "validated_level"
	ValidatedSessionIDKey = "validated_session_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateLevel validates the :level path parameter
func (vm *ValidationMiddleware) ValidateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		level, errs := vm.validator.ParseLevel(c.Params("level"))
		if len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		c.Locals(ValidatedLevelKey, level)
		return c.Next()
	}
}

// ValidateSessionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateSessionID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedSessionIDKey, id)
		return c.Next()
	}
}
