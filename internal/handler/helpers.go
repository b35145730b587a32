package handler

import (
	"mvpduo/internal/domain"
	"mvpduo/internal/dto"
	"mvpduo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) (dto.AuthenticatedUser, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return dto.AuthenticatedUser{}, domain.NewUnauthorizedError("user not authenticated")
	}
	return user, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	return nil
}
