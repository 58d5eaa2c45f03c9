package service

import (
	"context"
	"sync"
	"time"

	"learn2drive/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListItems(ctx context.Context, kind domain.AssessmentKind, groupKey string) ([]domain.AssessmentItem, error) {
	args := m.Called(ctx, kind, groupKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssessmentItem), args.Error(1)
}

func (m *MockCatalogRepository) GetItemsByIDs(ctx context.Context, kind domain.AssessmentKind, ids []string) ([]domain.AssessmentItem, error) {
	args := m.Called(ctx, kind, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssessmentItem), args.Error(1)
}

func (m *MockCatalogRepository) ListGroups(ctx context.Context, kind domain.AssessmentKind) ([]domain.ItemGroup, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemGroup), args.Error(1)
}

func (m *MockCatalogRepository) GroupExists(ctx context.Context, kind domain.AssessmentKind, groupKey string) (bool, error) {
	args := m.Called(ctx, kind, groupKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) CountItems(ctx context.Context, kind domain.AssessmentKind) (int, error) {
	args := m.Called(ctx, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) SaveGroup(ctx context.Context, group *domain.ItemGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockCatalogRepository) SaveItem(ctx context.Context, item *domain.AssessmentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) SaveAttempt(ctx context.Context, attempt *domain.Attempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetAttempt(ctx context.Context, id string) (*domain.Attempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) ListAttempts(ctx context.Context, learnerID string, kind domain.AssessmentKind) ([]*domain.Attempt, error) {
	args := m.Called(ctx, learnerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attempt), args.Error(1)
}

// --- MockLearnerRepository ---
type MockLearnerRepository struct {
	mock.Mock
}

func (m *MockLearnerRepository) CreateLearner(ctx context.Context, learner *domain.Learner) error {
	args := m.Called(ctx, learner)
	return args.Error(0)
}

func (m *MockLearnerRepository) GetLearner(ctx context.Context, id string) (*domain.Learner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Learner), args.Error(1)
}

func (m *MockLearnerRepository) ListLearners(ctx context.Context) ([]*domain.Learner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Learner), args.Error(1)
}

func (m *MockLearnerRepository) UpdateLearner(ctx context.Context, learner *domain.Learner) (bool, error) {
	args := m.Called(ctx, learner)
	return args.Bool(0), args.Error(1)
}

func (m *MockLearnerRepository) DeleteLearner(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockDrivingLogRepository ---
type MockDrivingLogRepository struct {
	mock.Mock
}

func (m *MockDrivingLogRepository) CreateLog(ctx context.Context, log *domain.DrivingLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockDrivingLogRepository) GetLog(ctx context.Context, id string) (*domain.DrivingLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrivingLog), args.Error(1)
}

func (m *MockDrivingLogRepository) ListLogs(ctx context.Context, learnerID string) ([]*domain.DrivingLog, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DrivingLog), args.Error(1)
}

func (m *MockDrivingLogRepository) UpdateLog(ctx context.Context, log *domain.DrivingLog) (bool, error) {
	args := m.Called(ctx, log)
	return args.Bool(0), args.Error(1)
}

func (m *MockDrivingLogRepository) DeleteLog(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockTrainingRepository ---
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) SavePhase(ctx context.Context, phase *domain.TrainingPhase) error {
	args := m.Called(ctx, phase)
	return args.Error(0)
}

func (m *MockTrainingRepository) ListPhases(ctx context.Context, learnerID string) ([]*domain.TrainingPhase, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainingPhase), args.Error(1)
}

func (m *MockTrainingRepository) GetTask(ctx context.Context, id string) (*domain.TrainingTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingTask), args.Error(1)
}

func (m *MockTrainingRepository) UpdateTaskProgress(ctx context.Context, task *domain.TrainingTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTrainingRepository) ListAllTasks(ctx context.Context) ([]*domain.TrainingTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainingTask), args.Error(1)
}

func (m *MockTrainingRepository) SetTeachingNotes(ctx context.Context, taskID, notes string) error {
	args := m.Called(ctx, taskID, notes)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) GetDel(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// memoryCache is a map-backed domain.Cache for flow tests that need real storage.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) GetDel(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	delete(c.data, key)
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }

func (c *memoryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// passthroughTx runs fn without a database.
type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Ensure all required methods for interfaces are present in the mocks
var _ domain.CatalogRepository = (*MockCatalogRepository)(nil)
var _ domain.AttemptRepository = (*MockAttemptRepository)(nil)
var _ domain.LearnerRepository = (*MockLearnerRepository)(nil)
var _ domain.TrainingRepository = (*MockTrainingRepository)(nil)
var _ domain.DrivingLogRepository = (*MockDrivingLogRepository)(nil)
var _ domain.Cache = (*MockCache)(nil)
var _ domain.Cache = (*memoryCache)(nil)
var _ domain.TransactionManager = passthroughTx{}
