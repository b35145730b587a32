package handler

import (
	"fmt"

	"mvpduo/internal/domain"
	"mvpduo/internal/dto"
	"mvpduo/internal/logger"
	"mvpduo/internal/middleware"
	"mvpduo/internal/service"
	"mvpduo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProgressionHandler serves the curriculum map and quiz sessions
type ProgressionHandler struct {
	service   service.ProgressionService
	validator *validation.Validator
}

// NewProgressionHandler creates a new ProgressionHandler instance
func NewProgressionHandler(svc service.ProgressionService) *ProgressionHandler {
	return &ProgressionHandler{service: svc, validator: validation.NewValidator()}
}

// GetLevelMap godoc
// @Summary Get one level of the curriculum
// @Description Returns the twelve units of a level in the learner's current kıdem with their state.
// @Tags curriculum
// @Produce json
// @Security ApiKeyAuth
// @Param level path int true "Level (1-100)"
// @Success 200 {object} dto.LevelMapResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /curriculum/levels/{level} [get]
func (h *ProgressionHandler) GetLevelMap(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	level, _ := c.Locals(middleware.ValidatedLevelKey).(int)
	units, err := h.service.LevelMap(c.UserContext(), user.ID, level)
	if err != nil {
		return err
	}

	resp := dto.LevelMapResponse{Level: level, Units: make([]dto.LevelUnitResponse, 0, len(units))}
	for _, u := range units {
		resp.Kidem = u.Kidem
		resp.Units = append(resp.Units, dto.NewLevelUnitResponse(u.Position, u.Tracks, u.State))
	}
	return c.JSON(resp)
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Opens a session on a unit and makes it the learner's active session. Correct options are not included.
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.StartSessionRequest true "Unit and track"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *ProgressionHandler) StartSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.StartSessionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateStartSessionRequest(req); len(errs) > 0 {
		return errs
	}

	session, err := h.service.StartSession(c.UserContext(), user.ID, service.StartSessionRequest{
		Unit:     req.Unit(),
		ExamType: domain.ExamTrack(req.ExamType),
		Division: req.Division,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSessionResponse(session))
}

// GetActiveSession godoc
// @Summary Get the active session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/active [get]
func (h *ProgressionHandler) GetActiveSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	session, err := h.service.ActiveSession(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session))
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/answers [post]
func (h *ProgressionHandler) SubmitAnswer(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	sessionID, _ := c.Locals(middleware.ValidatedSessionIDKey).(string)
	var req dto.SubmitAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(sessionID, req); len(errs) > 0 {
		return errs
	}

	res, err := h.service.SubmitAnswer(c.UserContext(), user.ID, sessionID, req.QuestionID, *req.Option)
	if err != nil {
		return err
	}
	return c.JSON(dto.AnswerResponse{
		Correct:       res.Correct,
		CorrectOption: res.CorrectOption,
		Explanation:   res.Explanation,
		Answered:      res.Answered,
		Total:         res.Total,
		Mistakes:      res.Mistakes,
		CanStillPass:  res.CanStillPass,
		Complete:      res.Complete,
	})
}

// FinishSession godoc
// @Summary Finish a session
// @Description Evaluates a fully answered session. A passed session advances the learner and returns the new profile and achievement.
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.FinishSessionResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /sessions/{id}/finish [post]
func (h *ProgressionHandler) FinishSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	sessionID, _ := c.Locals(middleware.ValidatedSessionIDKey).(string)

	res, err := h.service.CompleteSession(c.UserContext(), user.ID, sessionID)
	if err != nil {
		return err
	}

	resp := dto.FinishSessionResponse{
		SessionID:    res.Outcome.SessionID,
		Unit:         dto.NewPositionResponse(res.Outcome.Unit),
		Passed:       res.Outcome.Passed,
		CorrectCount: res.Outcome.CorrectCount,
		TotalCount:   res.Outcome.TotalCount,
		MistakeCount: res.Outcome.MistakeCount,
	}
	if adv := res.Advance; adv != nil {
		resp.Profile = dto.NewProfileResponse(adv.Profile)
		achievement := dto.NewAchievementResponse(adv.Achievement)
		resp.Achievement = &achievement
		if n := len(adv.SecondaryFailures); n > 0 {
			logger.Get().Warn("FinishSession: secondary writes failed",
				zap.String("userID", user.ID), zap.String("sessionID", sessionID), zap.Errors("errors", adv.SecondaryFailures))
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("%d progress record(s) could not be saved", n))
		}
	}
	return c.JSON(resp)
}
