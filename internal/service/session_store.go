package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mvpduo/internal/cache"
	"mvpduo/internal/domain"
	"mvpduo/internal/logger"

	"go.uber.org/zap"
)

// SessionStore keeps each user's single in-progress quiz session between requests.
type SessionStore interface {
	// Save replaces the user's active session.
	Save(ctx context.Context, session *domain.QuizSession) error
	// Get returns NOT_FOUND when the user has no live session. A successful read
	// restarts the session's TTL.
	Get(ctx context.Context, userID string) (*domain.QuizSession, error)
	Delete(ctx context.Context, userID string) error
}

type sessionStoreImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewSessionStore(c domain.Cache, ttl time.Duration) SessionStore {
	return &sessionStoreImpl{cache: c, ttl: ttl}
}

func (s *sessionStoreImpl) Save(ctx context.Context, session *domain.QuizSession) error {
	if session == nil || session.UserID == "" {
		return domain.NewInvalidInputError("cannot store a session without a user")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}
	key := cache.ActiveSessionKey(session.UserID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("SessionStore: failed to save session", zap.String("key", key), zap.Error(err))
		return domain.NewPersistenceError("failed to save quiz session", err)
	}
	return nil
}

func (s *sessionStoreImpl) Get(ctx context.Context, userID string) (*domain.QuizSession, error) {
	key := cache.ActiveSessionKey(userID)
	data, err := s.cache.GetAndTouch(ctx, key, s.ttl)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError("no active quiz session")
		}
		return nil, domain.NewPersistenceError("failed to read quiz session", err)
	}
	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Warn("SessionStore: discarding undecodable session", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil, domain.NewNotFoundError("no active quiz session")
	}
	return &session, nil
}

func (s *sessionStoreImpl) Delete(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, cache.ActiveSessionKey(userID)); err != nil {
		return domain.NewPersistenceError("failed to delete quiz session", err)
	}
	return nil
}
