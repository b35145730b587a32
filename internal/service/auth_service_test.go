package service

import (
	"context"
	"testing"
	"time"

	"mvpduo/internal/config"
	"mvpduo/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{})
	assert.Error(t, err)
}

func TestAuthService_RoundTrip(t *testing.T) {
	svc, err := NewAuthService(config.AuthConfig{JWTSecret: "test-secret"})
	require.NoError(t, err)
	userID := uuid.NewString()

	token, err := svc.CreateJWT(context.Background(), userID, "a@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestAuthService_Rejections(t *testing.T) {
	svc, err := NewAuthService(config.AuthConfig{JWTSecret: "test-secret"})
	require.NoError(t, err)
	ctx := context.Background()

	sign := func(secret string, method jwt.SigningMethod, claims dto.AuthClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := func(sub string, exp time.Time) dto.AuthClaims {
		return dto.AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub, ExpiresAt: jwt.NewNumericDate(exp)}}
	}

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, sign("other", jwt.SigningMethodHS256, valid(uuid.NewString(), time.Now().Add(time.Hour))))
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
	t.Run("expired", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, sign("test-secret", jwt.SigningMethodHS256, valid(uuid.NewString(), time.Now().Add(-time.Minute))))
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
	t.Run("no expiry", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, sign("test-secret", jwt.SigningMethodHS256, dto.AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}}))
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
	t.Run("subject not a uuid", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, sign("test-secret", jwt.SigningMethodHS256, valid("not-a-uuid", time.Now().Add(time.Hour))))
		assert.ErrorIs(t, err, ErrInvalidSubject)
	})
	t.Run("other hmac algorithms", func(t *testing.T) {
		for _, method := range []jwt.SigningMethod{jwt.SigningMethodHS384, jwt.SigningMethodHS512} {
			_, err := svc.ValidateJWT(ctx, sign("test-secret", method, valid(uuid.NewString(), time.Now().Add(time.Hour))))
			assert.ErrorIs(t, err, ErrInvalidJWTToken, method.Alg())
		}
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, "abc")
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
}
