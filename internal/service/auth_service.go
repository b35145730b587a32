package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mvpduo/internal/config"
	"mvpduo/internal/dto"
	"mvpduo/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidJWTToken = errors.New("invalid JWT token")
	ErrInvalidSubject  = errors.New("token subject is not a user id")
)

// AuthService validates access tokens issued by the hosted auth service.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	// CreateJWT signs an access token for local development and tests.
	CreateJWT(ctx context.Context, userID, email string, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	secret []byte
	now    func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret for auth service is not configured")
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret), now: time.Now}, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	claims := &dto.AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		snippet := tokenString[:min(len(tokenString), 20)] + "..."
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err), zap.String("token_snippet", snippet))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err), zap.String("token_snippet", snippet))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		appLogger.Warn("JWT subject is not a uuid", zap.String("sub", claims.Subject))
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, claims.Subject)
	}
	return claims, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, userID, email string, ttl time.Duration) (string, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSubject, userID)
	}
	now := s.now()
	claims := dto.AuthClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
