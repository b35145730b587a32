package handler

import (
	"mvpduo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	User        *UserHandler
	Progression *ProgressionHandler
	Health      *HealthHandler
}

// SetupRoutes mounts the v1 API under /api/v1. protected guards every route but /health.
func SetupRoutes(app *fiber.App, h Handlers, protected fiber.Handler) {
	vm := middleware.NewValidationMiddleware()

	api := app.Group("/api/v1")
	api.Get("/health", h.Health.GetHealth)

	api.Get("/profile", protected, h.User.GetMyProfile)
	api.Get("/onboarding", protected, h.User.GetOnboarding)
	api.Put("/preferences", protected, h.User.UpdatePreferences)
	api.Get("/achievements", protected, h.User.GetMyAchievements)

	api.Get("/curriculum/levels/:level", protected, vm.ValidateLevel(), h.Progression.GetLevelMap)

	api.Post("/sessions", protected, h.Progression.StartSession)
	api.Get("/sessions/active", protected, h.Progression.GetActiveSession)
	api.Post("/sessions/:id/answers", protected, vm.ValidateSessionID(), h.Progression.SubmitAnswer)
	api.Post("/sessions/:id/finish", protected, vm.ValidateSessionID(), h.Progression.FinishSession)
}
