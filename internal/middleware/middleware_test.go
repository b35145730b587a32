package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"mvpduo/internal/domain"
	"mvpduo/internal/dto"
	"mvpduo/internal/logger"
	"mvpduo/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ManualMockAuthService implements service.AuthService
type ManualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func (m *ManualMockAuthService) CreateJWT(ctx context.Context, userID, email string, ttl time.Duration) (string, error) {
	panic("not implemented in mock")
}

const testUserID = "9f1c1d4e-6a53-4c8f-9a55-2a8f6f1f2b10"

func decodeError(t *testing.T, body []byte) middleware.ErrorResponse {
	t.Helper()
	var res middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &res))
	return res
}

func TestProtected(t *testing.T) {
	authSvc := &ManualMockAuthService{
		ValidateJWTFunc: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
			if tokenString != "good" {
				return nil, errors.New("signature is invalid")
			}
			return &dto.AuthClaims{Email: "a@example.com", RegisteredClaims: jwt.RegisteredClaims{Subject: testUserID}}, nil
		},
	}

	app := fiber.New()
	app.Get("/me", middleware.Protected(authSvc), func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(user.ID + "|" + user.Email)
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", fiber.StatusUnauthorized, "MISSING_AUTH_HEADER"},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized, "INVALID_AUTH_SCHEME"},
		{"empty token", "Bearer ", fiber.StatusUnauthorized, "EMPTY_TOKEN"},
		{"invalid token", "Bearer bad", fiber.StatusUnauthorized, "INVALID_TOKEN"},
		{"valid token", "Bearer good", fiber.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, body).Code)
			} else {
				assert.Equal(t, testUserID+"|a@example.com", string(body))
			}
		})
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.NewNotFoundError("x"), 404, "NOT_FOUND"},
		{domain.NewNoQuestionsError(domain.StartPosition()), 404, "NO_QUESTIONS"},
		{domain.NewAlreadyAnsweredError("q"), 409, "ALREADY_ANSWERED"},
		{domain.NewIncompleteSessionError(1, 5), 422, "INCOMPLETE_SESSION"},
		{domain.NewOutcomeNotPassedError(4), 422, "OUTCOME_NOT_PASSED"},
		{domain.NewPersistenceError("db", errors.New("down")), 503, "PERSISTENCE_FAILURE"},
		{domain.NewUnitLockedError(domain.StartPosition()), 403, "UNIT_LOCKED"},
		{domain.NewOnboardingIncompleteError(domain.StepExamPreferences), 403, "ONBOARDING_INCOMPLETE"},
		{domain.NewInvalidInputError("bad"), 400, "INVALID_INPUT"},
		{domain.NewUnauthorizedError("who"), 401, "UNAUTHORIZED"},
		{fmt.Errorf("wrapped: %w", domain.NewNotFoundError("x")), 404, "NOT_FOUND"},
		{domain.ValidationErrors{domain.NewMissingFieldError("option")}, 400, "INVALID_INPUT"},
		{fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "HTTP_ERROR"},
		{errors.New("boom"), 500, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestValidationMiddleware(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/levels/:level", vm.ValidateLevel(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"level": c.Locals(middleware.ValidatedLevelKey)})
	})
	app.Get("/sessions/:id", vm.ValidateSessionID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.ValidatedSessionIDKey).(string))
	})

	for path, want := range map[string]int{
		"/levels/24":                          200,
		"/levels/0":                           400,
		"/levels/abc":                         400,
		"/sessions/01HGZ8VNRYXS8QKNJV5GRWPWDQ": 200,
		"/sessions/not-a-ulid":                400,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestRequestLogger_LogsRenderedStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.NewNotFoundError("gone") })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 404, entries[0].ContextMap()["status"])
}
