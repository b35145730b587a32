package handler

import (
	"mvpduo/internal/dto"
	"mvpduo/internal/service"
	"mvpduo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves the learner's profile, onboarding state and achievements
type UserHandler struct {
	service   service.ProgressionService
	validator *validation.Validator
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(svc service.ProgressionService) *UserHandler {
	return &UserHandler{service: svc, validator: validation.NewValidator()}
}

// GetMyProfile godoc
// @Summary Get current learner's profile
// @Description Returns the stored profile, creating it on first use. When the store is unreachable a default profile is returned with degraded=true.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	res, err := h.service.LoadProfile(c.UserContext(), user.ID, user.Email)
	if err != nil {
		return err
	}
	resp := dto.NewProfileResponse(res.Profile)
	resp.Source = string(res.Source)
	resp.Degraded = res.Source == service.ProfileDefault
	return c.JSON(resp)
}

// GetOnboarding godoc
// @Summary Get onboarding status
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.OnboardingResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /onboarding [get]
func (h *UserHandler) GetOnboarding(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	status, err := h.service.OnboardingStatus(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOnboardingResponse(status))
}

// UpdatePreferences godoc
// @Summary Set exam preferences
// @Description Replaces the learner's exam tracks and returns the updated onboarding status.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.PreferencesRequest true "Exam tracks"
// @Success 200 {object} dto.OnboardingResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /preferences [put]
func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.PreferencesRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidatePreferencesRequest(req); len(errs) > 0 {
		return errs
	}
	if err := h.service.SavePreferences(c.UserContext(), user.ID, req.ToDomain(user.ID)); err != nil {
		return err
	}
	status, err := h.service.OnboardingStatus(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOnboardingResponse(status))
}

// GetMyAchievements godoc
// @Summary List achievements
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.AchievementsResponse
// @Router /achievements [get]
func (h *UserHandler) GetMyAchievements(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	achievements, err := h.service.Achievements(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	resp := dto.AchievementsResponse{Achievements: make([]dto.AchievementResponse, 0, len(achievements))}
	for _, a := range achievements {
		resp.Achievements = append(resp.Achievements, dto.NewAchievementResponse(a))
	}
	return c.JSON(resp)
}
