package handler_test

import (
	"context"
	"errors"

	"learn2drive/internal/dto"
	"learn2drive/internal/handler"
	"learn2drive/internal/middleware"
	"learn2drive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

// MockAssessmentService
type MockAssessmentService struct {
	ListQuizTopicsFunc         func(ctx context.Context) (*dto.GroupListResponse, error)
	StartQuizFunc              func(ctx context.Context, topic string, count *int) (*dto.QuizQuestionsResponse, error)
	SubmitQuizFunc             func(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.AttemptResponse, error)
	ListRoadSignCategoriesFunc func(ctx context.Context) (*dto.GroupListResponse, error)
	StartRoadSignTestFunc      func(ctx context.Context, category string, count *int, mode string) (*dto.RoadSignTestResponse, error)
	SubmitRoadSignTestFunc     func(ctx context.Context, req *dto.SubmitRoadSignTestRequest) (*dto.AttemptResponse, error)
	GetDrivingTestRubricFunc   func(ctx context.Context) (*dto.RubricResponse, error)
	SubmitDrivingTestFunc      func(ctx context.Context, req *dto.SubmitDrivingTestRequest) (*dto.AttemptResponse, error)
	GetAttemptFunc             func(ctx context.Context, id string) (*dto.AttemptResponse, error)
	ListAttemptsFunc           func(ctx context.Context, learnerID string, kind string) (*dto.AttemptListResponse, error)
	CatalogStatusFunc          func(ctx context.Context) (*dto.CatalogStatusResponse, error)
}

var errNotMocked = errors.New("not mocked")

func (m *MockAssessmentService) ListQuizTopics(ctx context.Context) (*dto.GroupListResponse, error) {
	if m.ListQuizTopicsFunc != nil {
		return m.ListQuizTopicsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) StartQuiz(ctx context.Context, topic string, count *int) (*dto.QuizQuestionsResponse, error) {
	if m.StartQuizFunc != nil {
		return m.StartQuizFunc(ctx, topic, count)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.AttemptResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) ListRoadSignCategories(ctx context.Context) (*dto.GroupListResponse, error) {
	if m.ListRoadSignCategoriesFunc != nil {
		return m.ListRoadSignCategoriesFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) StartRoadSignTest(ctx context.Context, category string, count *int, mode string) (*dto.RoadSignTestResponse, error) {
	if m.StartRoadSignTestFunc != nil {
		return m.StartRoadSignTestFunc(ctx, category, count, mode)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) SubmitRoadSignTest(ctx context.Context, req *dto.SubmitRoadSignTestRequest) (*dto.AttemptResponse, error) {
	if m.SubmitRoadSignTestFunc != nil {
		return m.SubmitRoadSignTestFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) GetDrivingTestRubric(ctx context.Context) (*dto.RubricResponse, error) {
	if m.GetDrivingTestRubricFunc != nil {
		return m.GetDrivingTestRubricFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) SubmitDrivingTest(ctx context.Context, req *dto.SubmitDrivingTestRequest) (*dto.AttemptResponse, error) {
	if m.SubmitDrivingTestFunc != nil {
		return m.SubmitDrivingTestFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) GetAttempt(ctx context.Context, id string) (*dto.AttemptResponse, error) {
	if m.GetAttemptFunc != nil {
		return m.GetAttemptFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) ListAttempts(ctx context.Context, learnerID string, kind string) (*dto.AttemptListResponse, error) {
	if m.ListAttemptsFunc != nil {
		return m.ListAttemptsFunc(ctx, learnerID, kind)
	}
	return nil, errNotMocked
}

func (m *MockAssessmentService) CatalogStatus(ctx context.Context) (*dto.CatalogStatusResponse, error) {
	if m.CatalogStatusFunc != nil {
		return m.CatalogStatusFunc(ctx)
	}
	return nil, errNotMocked
}

// MockLearnerService
type MockLearnerService struct {
	CreateLearnerFunc func(ctx context.Context, req *dto.CreateLearnerRequest) (*dto.LearnerResponse, error)
	GetLearnerFunc    func(ctx context.Context, id string) (*dto.LearnerResponse, error)
	ListLearnersFunc  func(ctx context.Context) (*dto.LearnerListResponse, error)
	UpdateLearnerFunc func(ctx context.Context, id string, req *dto.UpdateLearnerRequest) (*dto.LearnerResponse, error)
	DeleteLearnerFunc func(ctx context.Context, id string) error
}

func (m *MockLearnerService) CreateLearner(ctx context.Context, req *dto.CreateLearnerRequest) (*dto.LearnerResponse, error) {
	if m.CreateLearnerFunc != nil {
		return m.CreateLearnerFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockLearnerService) GetLearner(ctx context.Context, id string) (*dto.LearnerResponse, error) {
	if m.GetLearnerFunc != nil {
		return m.GetLearnerFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockLearnerService) ListLearners(ctx context.Context) (*dto.LearnerListResponse, error) {
	if m.ListLearnersFunc != nil {
		return m.ListLearnersFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockLearnerService) UpdateLearner(ctx context.Context, id string, req *dto.UpdateLearnerRequest) (*dto.LearnerResponse, error) {
	if m.UpdateLearnerFunc != nil {
		return m.UpdateLearnerFunc(ctx, id, req)
	}
	return nil, errNotMocked
}

func (m *MockLearnerService) DeleteLearner(ctx context.Context, id string) error {
	if m.DeleteLearnerFunc != nil {
		return m.DeleteLearnerFunc(ctx, id)
	}
	return errNotMocked
}

// MockDrivingLogService
type MockDrivingLogService struct {
	CreateLogFunc func(ctx context.Context, req *dto.CreateDrivingLogRequest) (*dto.DrivingLogResponse, error)
	GetLogFunc    func(ctx context.Context, id string) (*dto.DrivingLogResponse, error)
	ListLogsFunc  func(ctx context.Context, learnerID string) (*dto.DrivingLogListResponse, error)
	UpdateLogFunc func(ctx context.Context, id string, req *dto.UpdateDrivingLogRequest) (*dto.DrivingLogResponse, error)
	DeleteLogFunc func(ctx context.Context, id string) error
}

func (m *MockDrivingLogService) CreateLog(ctx context.Context, req *dto.CreateDrivingLogRequest) (*dto.DrivingLogResponse, error) {
	if m.CreateLogFunc != nil {
		return m.CreateLogFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockDrivingLogService) GetLog(ctx context.Context, id string) (*dto.DrivingLogResponse, error) {
	if m.GetLogFunc != nil {
		return m.GetLogFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockDrivingLogService) ListLogs(ctx context.Context, learnerID string) (*dto.DrivingLogListResponse, error) {
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc(ctx, learnerID)
	}
	return nil, errNotMocked
}

func (m *MockDrivingLogService) UpdateLog(ctx context.Context, id string, req *dto.UpdateDrivingLogRequest) (*dto.DrivingLogResponse, error) {
	if m.UpdateLogFunc != nil {
		return m.UpdateLogFunc(ctx, id, req)
	}
	return nil, errNotMocked
}

func (m *MockDrivingLogService) DeleteLog(ctx context.Context, id string) error {
	if m.DeleteLogFunc != nil {
		return m.DeleteLogFunc(ctx, id)
	}
	return errNotMocked
}

// MockTrainingService
type MockTrainingService struct {
	UpdateTaskProgressFunc    func(ctx context.Context, taskID string, req *dto.UpdateTaskProgressRequest) (*dto.TaskResponse, error)
	BulkUpdateProgressFunc    func(ctx context.Context, req *dto.BulkTaskProgressRequest) (*dto.BulkTaskProgressResponse, error)
	BackfillTeachingNotesFunc func(ctx context.Context) (*dto.BackfillResponse, error)
}

func (m *MockTrainingService) UpdateTaskProgress(ctx context.Context, taskID string, req *dto.UpdateTaskProgressRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskProgressFunc != nil {
		return m.UpdateTaskProgressFunc(ctx, taskID, req)
	}
	return nil, errNotMocked
}

func (m *MockTrainingService) BulkUpdateProgress(ctx context.Context, req *dto.BulkTaskProgressRequest) (*dto.BulkTaskProgressResponse, error) {
	if m.BulkUpdateProgressFunc != nil {
		return m.BulkUpdateProgressFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockTrainingService) BackfillTeachingNotes(ctx context.Context) (*dto.BackfillResponse, error) {
	if m.BackfillTeachingNotesFunc != nil {
		return m.BackfillTeachingNotesFunc(ctx)
	}
	return nil, errNotMocked
}

var (
	_ service.AssessmentService = (*MockAssessmentService)(nil)
	_ service.LearnerService    = (*MockLearnerService)(nil)
	_ service.TrainingService   = (*MockTrainingService)(nil)
	_ service.DrivingLogService = (*MockDrivingLogService)(nil)
)

type mocks struct {
	assessment *MockAssessmentService
	learners   *MockLearnerService
	training   *MockTrainingService
	logs       *MockDrivingLogService
}

// setupApp wires the real routes and error handler over the mocks.
func setupApp() (*fiber.App, *mocks) {
	m := &mocks{
		assessment: &MockAssessmentService{},
		learners:   &MockLearnerService{},
		training:   &MockTrainingService{},
		logs:       &MockDrivingLogService{},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app.Group("/api"),
		handler.NewAssessmentHandler(m.assessment),
		handler.NewLearnerHandler(m.learners),
		handler.NewTrainingHandler(m.training),
		handler.NewDrivingLogHandler(m.logs))
	return app, m
}

const (
	learnerID = "01J1Q9Z4D7T3XW2M8K6B5N0PAV"
	itemID    = "01J1Q9Z4D7T3XW2M8K6B5N0PAW"
	testID    = "01J1Q9Z4D7T3XW2M8K6B5N0PAX"
	taskID    = "01J1Q9Z4D7T3XW2M8K6B5N0PAY"
)

func letter(s string) *string { return &s }

