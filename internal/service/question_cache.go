package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mvpduo/internal/cache"
	"mvpduo/internal/domain"
	"mvpduo/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuestionSetCache serves approved question sets, reading through Redis.
type QuestionSetCache interface {
	GetApprovedQuestions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error)
	// InvalidateUnit drops every cached set of unit and returns how many were removed.
	InvalidateUnit(ctx context.Context, unit domain.Position) (int, error)
}

type questionSetCacheImpl struct {
	cache   domain.Cache
	repo    domain.QuestionRepository
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewQuestionSetCache wraps repo with cache. A nil cache reads the repository directly.
func NewQuestionSetCache(c domain.Cache, repo domain.QuestionRepository, ttl time.Duration) QuestionSetCache {
	if c == nil {
		logger.Get().Warn("QuestionSetCache initialized with nil cache. Reads go straight to the repository.")
	}
	return &questionSetCacheImpl{cache: c, repo: repo, ttl: ttl}
}

func (s *questionSetCacheImpl) GetApprovedQuestions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	if s.cache == nil {
		return s.load(ctx, filter)
	}

	key := cache.QuestionSetKey(filter)
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var questions []domain.Question
		errUnmarshal := json.Unmarshal([]byte(cached), &questions)
		if errUnmarshal == nil {
			logger.Get().Debug("QuestionSetCache: cache hit", zap.String("key", key), zap.Int("count", len(questions)))
			return questions, nil
		}
		logger.Get().Warn("QuestionSetCache: dropping undecodable entry", zap.String("key", key), zap.Error(errUnmarshal))
	case errors.Is(err, domain.ErrCacheMiss):
		logger.Get().Debug("QuestionSetCache: cache miss", zap.String("key", key))
	default:
		logger.Get().Warn("QuestionSetCache: cache read failed, using repository", zap.String("key", key), zap.Error(err))
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		questions, err := s.load(ctx, filter)
		if err != nil {
			return nil, err
		}
		// Empty sets stay uncached so newly seeded content shows up immediately.
		if len(questions) > 0 {
			s.store(ctx, key, questions)
		}
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	questions, ok := res.([]domain.Question)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for question set: %T", res)
	}
	return questions, nil
}

func (s *questionSetCacheImpl) InvalidateUnit(ctx context.Context, unit domain.Position) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.DeleteMatching(ctx, cache.QuestionSetUnitPattern(unit))
}

func (s *questionSetCacheImpl) load(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	questions, err := s.repo.GetApprovedQuestions(ctx, filter)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to load approved questions", err)
	}
	return questions, nil
}

func (s *questionSetCacheImpl) store(ctx context.Context, key string, questions []domain.Question) {
	data, err := json.Marshal(questions)
	if err != nil {
		logger.Get().Warn("QuestionSetCache: failed to marshal question set", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Warn("QuestionSetCache: failed to cache question set", zap.String("key", key), zap.Error(err))
	}
}
