package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learn2drive/internal/adapter"
	"learn2drive/internal/cache"
	"learn2drive/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePresentedTest() *PresentedTest {
	sign := domain.AssessmentItem{ID: "stop", Kind: domain.KindRoadSign, GroupKey: "regulatory", Text: "Stop", Detail: "Come to a full stop"}
	return &PresentedTest{
		TestID: "01J0TEST",
		Mode:   domain.RoadSignModeAll,
		Questions: []domain.PresentedQuestion{{
			Item: sign,
			Options: []domain.AnswerOption{
				{Letter: "A", Text: "Yield to traffic", ItemID: "yield"},
				{Letter: "B", Text: "Come to a full stop", ItemID: "stop"},
			},
			CorrectLetter: "B",
		}},
		CreatedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPresentedTestStore_TakeConsumes(t *testing.T) {
	store := NewPresentedTestStore(newMemoryCache(), time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, samplePresentedTest()))
	got, err := store.Take(ctx, "01J0TEST")
	require.NoError(t, err)

	q, ok := got.Question("stop")
	require.True(t, ok)
	id, ok := q.ResolveLetter("B")
	assert.True(t, ok)
	assert.Equal(t, "stop", id)
	_, ok = got.Question("yield")
	assert.False(t, ok)

	_, err = store.Take(ctx, "01J0TEST")
	assert.True(t, domain.HasCode(err, domain.CodeTestSessionNotFound))
}

func TestPresentedTestStore_Restore(t *testing.T) {
	c := newMemoryCache()
	store := NewPresentedTestStore(c, time.Hour)
	ctx := context.Background()
	test := samplePresentedTest()

	require.NoError(t, store.Restore(ctx, test, test.ExpiresAt.Add(-10*time.Minute)))
	got, err := store.Take(ctx, test.TestID)
	require.NoError(t, err)
	assert.Equal(t, test.TestID, got.TestID)

	require.NoError(t, store.Restore(ctx, test, test.ExpiresAt.Add(time.Second)))
	assert.Zero(t, c.len(), "an expired test is not brought back")
}

func TestPresentedTestStore_RestoreUsesRemainingLifetime(t *testing.T) {
	c := new(MockCache)
	store := NewPresentedTestStore(c, time.Hour)
	ctx := context.Background()
	test := samplePresentedTest()
	c.On("Set", ctx, cache.PresentedTestKey(test.TestID), mock.Anything, 10*time.Minute).Return(nil)

	require.NoError(t, store.Restore(ctx, test, test.ExpiresAt.Add(-10*time.Minute)))
	c.AssertExpectations(t)
}

func TestPresentedTestStore_RejectsMissingID(t *testing.T) {
	store := NewPresentedTestStore(newMemoryCache(), time.Hour)
	err := store.Put(context.Background(), &PresentedTest{})
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
}

func TestPresentedTestStore_CacheFailure(t *testing.T) {
	c := new(MockCache)
	store := NewPresentedTestStore(c, time.Minute)
	ctx := context.Background()
	c.On("GetDel", ctx, cache.PresentedTestKey("x")).Return("", errors.New("connection refused"))
	c.On("Set", ctx, mock.Anything, mock.Anything, time.Minute).Return(errors.New("OOM"))

	_, err := store.Take(ctx, "x")
	assert.True(t, domain.HasCode(err, domain.CodeInternal))

	err = store.Put(ctx, samplePresentedTest())
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestPresentedTestStore_TakeUsesGetDel(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	store := NewPresentedTestStore(adapter.NewRedisCacheAdapter(client), 30*time.Minute)

	rmock.ExpectGetDel(cache.PresentedTestKey("01J0TEST")).SetVal(`{"test_id":"01J0TEST","mode":"all","questions":[]}`)
	rmock.ExpectGetDel(cache.PresentedTestKey("01J0TEST")).RedisNil()

	got, err := store.Take(context.Background(), "01J0TEST")
	require.NoError(t, err)
	assert.Equal(t, "01J0TEST", got.TestID)

	_, err = store.Take(context.Background(), "01J0TEST")
	assert.True(t, domain.HasCode(err, domain.CodeTestSessionNotFound))
	assert.NoError(t, rmock.ExpectationsWereMet())
}
