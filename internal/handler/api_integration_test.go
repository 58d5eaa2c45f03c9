package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"learn2drive/internal/config"
	"learn2drive/internal/database"
	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/handler"
	"learn2drive/internal/middleware"
	"learn2drive/internal/repository"
	"learn2drive/internal/seed"
	"learn2drive/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const seedDataDir = "../../configs/seed_data"

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
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

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
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

// setupIntegrationApp runs the full stack over a migrated and seeded sqlite file.
// The returned catalog is what was seeded.
func setupIntegrationApp(t *testing.T) (*fiber.App, *seed.Catalog) {
	t.Helper()
	ctx := context.Background()
	log := zap.NewNop()

	cfg := &config.Config{DB: config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "learn2drive.db"),
	}}
	db, err := database.Open(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(ctx, db, cfg.DB.Driver, log))

	catalogFiles, err := seed.LoadCatalog(seedDataDir)
	require.NoError(t, err)
	txManager := repository.NewTransactionManagerAdapter(db)
	_, err = seed.NewSeeder(repository.NewCatalogDatabaseAdapter(db), txManager, log).Run(ctx, catalogFiles)
	require.NoError(t, err)

	cache := &memoryCache{data: make(map[string]string)}
	learners := repository.NewLearnerDatabaseAdapter(db)
	training := repository.NewTrainingDatabaseAdapter(db)
	notes := domain.NewTeachingNotes(catalogFiles.TeachingNotes.Notes)

	assessment := service.NewAssessmentService(
		service.NewCachedCatalogRepository(repository.NewCatalogDatabaseAdapter(db), cache, time.Minute),
		repository.NewAttemptDatabaseAdapter(db),
		learners,
		service.NewPresentedTestStore(cache, time.Hour),
		nil,
		domain.DefaultAssessmentConfig(),
		catalogFiles.DrivingTest.AutomaticFailConditions,
	)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app.Group("/api"),
		handler.NewAssessmentHandler(assessment),
		handler.NewLearnerHandler(service.NewLearnerService(learners, training, txManager, catalogFiles.Training.Phases, notes)),
		handler.NewTrainingHandler(service.NewTrainingService(training, txManager, notes)),
		handler.NewDrivingLogHandler(service.NewDrivingLogService(repository.NewDrivingLogDatabaseAdapter(db), learners)),
	)
	return app, catalogFiles
}

func seededCount(catalog *seed.Catalog, kind domain.AssessmentKind) int {
	n := 0
	for _, g := range catalog.Groups()[kind] {
		n += len(g.Items)
	}
	return n
}

func TestIntegration_LearnerAssessmentFlows(t *testing.T) {
	app, catalog := setupIntegrationApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/catalog/status", nil))
	require.NoError(t, err)
	status := decode[dto.CatalogStatusResponse](t, resp.Body)
	assert.True(t, status.Ready)
	assert.Equal(t, seededCount(catalog, domain.KindQuiz), status.Counts["quiz"])
	assert.Equal(t, seededCount(catalog, domain.KindRoadSign), status.Counts["road_sign"])
	assert.Positive(t, status.Counts["road_sign"])

	// An explicit zero count is a selection error, unlike an omitted one.
	for _, url := range []string{"/api/quiz/questions?count=0", "/api/road-signs/test?count=0"} {
		resp, err = app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, url)
		body := decode[middleware.ErrorResponse](t, resp.Body)
		assert.Equal(t, string(domain.CodeInvalidSelection), body.Code, url)
	}

	// Register a learner; the checklist comes with them.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/learners", dto.CreateLearnerRequest{
		Name: "Sam Rivera", BirthDate: "2008-03-14", StartDate: "2024-06-01",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	learner := decode[dto.LearnerResponse](t, resp.Body)
	require.NotEmpty(t, learner.Phases)
	assert.Positive(t, learner.TotalTasks)
	assert.Zero(t, learner.CompletedTasks)

	// Quiz: five questions, answer everything with A.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/questions?count=5", nil), -1)
	require.NoError(t, err)
	quiz := decode[dto.QuizQuestionsResponse](t, resp.Body)
	require.Len(t, quiz.Questions, 5)

	answers := make([]dto.QuizAnswerRequest, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers = append(answers, dto.QuizAnswerRequest{ItemID: q.ID, Selected: letter("A")})
	}
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/quiz/attempts", dto.SubmitQuizRequest{
		LearnerID: learner.ID, Mode: domain.QuizModeTest, TimeTakenSeconds: 90, Responses: answers,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	quizAttempt := decode[dto.AttemptResponse](t, resp.Body)
	assert.Equal(t, 5, quizAttempt.Total)
	assert.LessOrEqual(t, quizAttempt.Score, 5)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/attempts/"+quizAttempt.ID, nil), -1)
	require.NoError(t, err)
	stored := decode[dto.AttemptResponse](t, resp.Body)
	assert.Equal(t, quizAttempt.Score, stored.Score)
	assert.Len(t, stored.Responses, 5)

	// Road signs: practice test, only the first sign answered.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/road-signs/test?mode=practice", nil), -1)
	require.NoError(t, err)
	test := decode[dto.RoadSignTestResponse](t, resp.Body)
	require.Len(t, test.Questions, 10)
	for _, q := range test.Questions {
		assert.Len(t, q.Options, 4)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/road-signs/attempts", dto.SubmitRoadSignTestRequest{
		TestID:    test.TestID,
		LearnerID: learner.ID,
		Responses: []dto.RoadSignAnswerRequest{{ItemID: test.Questions[0].ItemID, Selected: letter("B"), ElapsedSeconds: 4}},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	signAttempt := decode[dto.AttemptResponse](t, resp.Body)
	assert.Equal(t, 10, signAttempt.Total)
	assert.LessOrEqual(t, signAttempt.Score, 1)
	assert.False(t, signAttempt.Passed)

	// The session is consumed by the first submission.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/road-signs/attempts", dto.SubmitRoadSignTestRequest{
		TestID: test.TestID, LearnerID: learner.ID,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Driving test: a clean drive scores the full rubric.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/driving-test/rubric", nil), -1)
	require.NoError(t, err)
	rubric := decode[dto.RubricResponse](t, resp.Body)
	var evaluations []dto.CriterionEvaluationRequest
	for _, c := range rubric.Categories {
		for _, crit := range c.Criteria {
			evaluations = append(evaluations, dto.CriterionEvaluationRequest{CriterionID: crit.ID})
		}
	}
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/driving-test/attempts", dto.SubmitDrivingTestRequest{
		LearnerID: learner.ID, EvaluatorName: "J. Ortiz", Evaluations: evaluations,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	drive := decode[dto.AttemptResponse](t, resp.Body)
	assert.Equal(t, rubric.MaxScore, drive.Score)
	assert.True(t, drive.Passed)

	// History
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/learners/"+learner.ID+"/attempts", nil), -1)
	require.NoError(t, err)
	history := decode[dto.AttemptListResponse](t, resp.Body)
	assert.Len(t, history.Attempts, 3)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/learners/"+learner.ID+"/attempts?kind=road_sign", nil), -1)
	require.NoError(t, err)
	history = decode[dto.AttemptListResponse](t, resp.Body)
	require.Len(t, history.Attempts, 1)
	assert.Equal(t, signAttempt.ID, history.Attempts[0].ID)
}

func TestIntegration_TaskProgress(t *testing.T) {
	app, _ := setupIntegrationApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/learners", dto.CreateLearnerRequest{
		Name: "Alex Chen", BirthDate: "2007-11-02", StartDate: "2024-09-15",
	}), -1)
	require.NoError(t, err)
	learner := decode[dto.LearnerResponse](t, resp.Body)
	task := learner.Phases[0].Tasks[0]

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/tasks/"+task.ID+"/progress", dto.UpdateTaskProgressRequest{
		Status: "completed", Notes: "Done on the first lesson",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.TaskResponse](t, resp.Body)
	assert.NotNil(t, updated.CompletedAt)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/learners/"+learner.ID, nil), -1)
	require.NoError(t, err)
	learner = decode[dto.LearnerResponse](t, resp.Body)
	assert.Equal(t, 1, learner.CompletedTasks)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/tasks/teaching-notes/backfill", nil), -1)
	require.NoError(t, err)
	report := decode[dto.BackfillResponse](t, resp.Body)
	assert.Equal(t, learner.TotalTasks, report.Total)
	assert.Equal(t, report.Total, report.Updated+report.Skipped)
}

func TestIntegration_DrivingLogsAndLearnerLifecycle(t *testing.T) {
	app, _ := setupIntegrationApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/learners", dto.CreateLearnerRequest{
		Name: "Jo Park", BirthDate: "2007-05-20", StartDate: "2024-08-01",
	}), -1)
	require.NoError(t, err)
	learner := decode[dto.LearnerResponse](t, resp.Body)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/learners/"+learner.ID, map[string]string{"name": "Jo Park-Lee"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	renamed := decode[dto.LearnerResponse](t, resp.Body)
	assert.Equal(t, "Jo Park-Lee", renamed.Name)
	assert.Equal(t, "2007-05-20", renamed.BirthDate)

	var logIDs []string
	for _, req := range []dto.CreateDrivingLogRequest{
		{LearnerID: learner.ID, Date: "2024-08-03", DurationMinutes: 40, RoadTypes: []string{"parking"}},
		{LearnerID: learner.ID, Date: "2024-08-10", DurationMinutes: 65, Weather: "rain", RoadTypes: []string{"city", "highway"}},
	} {
		resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/driving-logs", req), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		logIDs = append(logIDs, decode[dto.DrivingLogResponse](t, resp.Body).ID)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/driving-logs?learner_id="+learner.ID, nil), -1)
	require.NoError(t, err)
	list := decode[dto.DrivingLogListResponse](t, resp.Body)
	require.Len(t, list.Logs, 2)
	assert.Equal(t, "2024-08-10", list.Logs[0].Date)
	assert.Equal(t, "Jo Park-Lee", list.Logs[0].LearnerName)
	assert.Equal(t, []string{"city", "highway"}, list.Logs[0].RoadTypes)
	assert.Equal(t, 105, list.TotalMinutes)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/driving-logs/"+logIDs[0], map[string]interface{}{
		"duration_minutes": 50, "notes": "Reverse bay parking",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/driving-logs/"+logIDs[0], nil), -1)
	require.NoError(t, err)
	updated := decode[dto.DrivingLogResponse](t, resp.Body)
	assert.Equal(t, 50, updated.DurationMinutes)
	assert.Equal(t, "Reverse bay parking", updated.Notes)
	assert.Equal(t, []string{"parking"}, updated.RoadTypes)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/driving-logs/"+logIDs[0], nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/driving-logs/"+logIDs[0], nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A stored attempt must not block deleting the learner.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/questions?count=2", nil), -1)
	require.NoError(t, err)
	quiz := decode[dto.QuizQuestionsResponse](t, resp.Body)
	answers := make([]dto.QuizAnswerRequest, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers = append(answers, dto.QuizAnswerRequest{ItemID: q.ID, Selected: letter("A")})
	}
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/quiz/attempts", dto.SubmitQuizRequest{
		LearnerID: learner.ID, Mode: domain.QuizModeTest, Responses: answers,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	attempt := decode[dto.AttemptResponse](t, resp.Body)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/learners/"+learner.ID, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	for _, url := range []string{
		"/api/learners/" + learner.ID,
		"/api/attempts/" + attempt.ID,
		"/api/driving-logs/" + logIDs[1],
	} {
		resp, err = app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, url)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/learners/"+learner.ID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
