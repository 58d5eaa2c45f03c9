package service

import (
	"context"
	"errors"
	"time"

	"learn2drive/internal/cache"
	"learn2drive/internal/domain"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
)

// PresentedTest is a road-sign test as it was shown to the learner, including
// the option mapping needed to re-derive correctness on submission.
type PresentedTest struct {
	TestID    string                     `json:"test_id"`
	Mode      string                     `json:"mode"`
	Category  string                     `json:"category,omitempty"`
	Questions []domain.PresentedQuestion `json:"questions"`
	CreatedAt time.Time                  `json:"created_at"`
	ExpiresAt time.Time                  `json:"expires_at"`
}

// Question returns the presented question for a sign.
func (t *PresentedTest) Question(itemID string) (*domain.PresentedQuestion, bool) {
	for i := range t.Questions {
		if t.Questions[i].Item.ID == itemID {
			return &t.Questions[i], true
		}
	}
	return nil, false
}

// PresentedTestStore keeps presented road-sign tests between start and submit.
type PresentedTestStore interface {
	Put(ctx context.Context, test *PresentedTest) error
	// Take removes and returns a test in one step; of two concurrent callers
	// only one gets it. Unknown, expired or already taken ids are
	// TEST_SESSION_NOT_FOUND.
	Take(ctx context.Context, testID string) (*PresentedTest, error)
	// Restore puts a taken test back for the rest of its lifetime.
	Restore(ctx context.Context, test *PresentedTest, now time.Time) error
	TTL() time.Duration
}

type presentedTestStoreImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewPresentedTestStore stores sessions in c, expiring after ttl.
func NewPresentedTestStore(c domain.Cache, ttl time.Duration) PresentedTestStore {
	return &presentedTestStoreImpl{cache: c, ttl: ttl}
}

func (s *presentedTestStoreImpl) TTL() time.Duration {
	return s.ttl
}

func (s *presentedTestStoreImpl) Put(ctx context.Context, test *PresentedTest) error {
	return s.store(ctx, test, s.ttl)
}

func (s *presentedTestStoreImpl) store(ctx context.Context, test *PresentedTest, ttl time.Duration) error {
	if test == nil || test.TestID == "" {
		return domain.NewInvalidInputError("cannot store a road sign test without id")
	}
	key := cache.PresentedTestKey(test.TestID)
	if err := cache.SetJSON(ctx, s.cache, key, test, ttl); err != nil {
		logger.Get().Error("Failed to store presented test", zap.String("key", key), zap.Error(err))
		return domain.NewInternalError("failed to store road sign test", err)
	}
	logger.Get().Debug("Stored presented test",
		zap.String("test_id", test.TestID),
		zap.Int("questions", len(test.Questions)),
		zap.Duration("ttl", ttl))
	return nil
}

func (s *presentedTestStoreImpl) Take(ctx context.Context, testID string) (*PresentedTest, error) {
	key := cache.PresentedTestKey(testID)
	test, err := cache.TakeJSON[PresentedTest](ctx, s.cache, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewTestSessionNotFoundError(testID)
		}
		logger.Get().Error("Failed to take presented test", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError("failed to load road sign test", err)
	}
	return &test, nil
}

// Restore is a no-op for a test whose lifetime has already ended.
func (s *presentedTestStoreImpl) Restore(ctx context.Context, test *PresentedTest, now time.Time) error {
	remaining := test.ExpiresAt.Sub(now)
	if remaining <= 0 {
		return nil
	}
	return s.store(ctx, test, remaining)
}
