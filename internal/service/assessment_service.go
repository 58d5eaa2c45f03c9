package service

import (
	"context"
	"errors"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AssessmentService runs the three scored assessments: selecting what to
// present, scoring submissions and storing the resulting attempts.
type AssessmentService interface {
	ListQuizTopics(ctx context.Context) (*dto.GroupListResponse, error)
	StartQuiz(ctx context.Context, topic string, count *int) (*dto.QuizQuestionsResponse, error)
	SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.AttemptResponse, error)

	ListRoadSignCategories(ctx context.Context) (*dto.GroupListResponse, error)
	StartRoadSignTest(ctx context.Context, category string, count *int, mode string) (*dto.RoadSignTestResponse, error)
	SubmitRoadSignTest(ctx context.Context, req *dto.SubmitRoadSignTestRequest) (*dto.AttemptResponse, error)

	GetDrivingTestRubric(ctx context.Context) (*dto.RubricResponse, error)
	SubmitDrivingTest(ctx context.Context, req *dto.SubmitDrivingTestRequest) (*dto.AttemptResponse, error)

	GetAttempt(ctx context.Context, id string) (*dto.AttemptResponse, error)
	ListAttempts(ctx context.Context, learnerID string, kind string) (*dto.AttemptListResponse, error)
	CatalogStatus(ctx context.Context) (*dto.CatalogStatusResponse, error)
}

type assessmentService struct {
	catalog                 domain.CatalogRepository
	attempts                domain.AttemptRepository
	learners                domain.LearnerRepository
	sessions                PresentedTestStore
	selector                *domain.Selector
	cfg                     domain.AssessmentConfig
	automaticFailConditions []string
	now                     func() time.Time
}

// NewAssessmentService creates an AssessmentService. rnd drives every shuffle;
// pass nil for the process-wide source.
func NewAssessmentService(
	catalog domain.CatalogRepository,
	attempts domain.AttemptRepository,
	learners domain.LearnerRepository,
	sessions PresentedTestStore,
	rnd domain.RandomSource,
	cfg domain.AssessmentConfig,
	automaticFailConditions []string,
) AssessmentService {
	return &assessmentService{
		catalog:                 catalog,
		attempts:                attempts,
		learners:                learners,
		sessions:                sessions,
		selector:                domain.NewSelector(rnd, cfg.DistractorCount),
		cfg:                     cfg,
		automaticFailConditions: automaticFailConditions,
		now:                     time.Now,
	}
}

// resolveCount applies the default when count is nil and enforces the bounds.
// An explicit zero is rejected like any other non-positive count.
func (s *assessmentService) resolveCount(count *int, defaultCount int) (int, error) {
	if count == nil {
		return defaultCount, nil
	}
	n := *count
	if n <= 0 {
		return 0, domain.NewInvalidSelectionError("count must be positive").
			WithContext("count", n)
	}
	if s.cfg.MaxQuestionCount > 0 && n > s.cfg.MaxQuestionCount {
		return 0, domain.NewInvalidSelectionError("too many questions requested").
			WithContext("count", n).
			WithContext("max", s.cfg.MaxQuestionCount)
	}
	return n, nil
}

// checkGroup rejects a filter naming a topic or category that does not exist.
func (s *assessmentService) checkGroup(ctx context.Context, kind domain.AssessmentKind, groupKey string) error {
	if groupKey == "" {
		return nil
	}
	exists, err := s.catalog.GroupExists(ctx, kind, groupKey)
	if err != nil {
		return domain.NewInternalError("failed to look up group", err)
	}
	if !exists {
		return domain.NewInvalidSelectionError("unknown group: " + groupKey).
			WithContext("kind", string(kind))
	}
	return nil
}

func (s *assessmentService) loadLearner(ctx context.Context, learnerID string) (*domain.Learner, error) {
	learner, err := s.learners.GetLearner(ctx, learnerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load learner", err)
	}
	if learner == nil {
		return nil, domain.NewLearnerNotFoundError(learnerID)
	}
	return learner, nil
}

func (s *assessmentService) listGroups(ctx context.Context, kind domain.AssessmentKind) (*dto.GroupListResponse, error) {
	groups, err := s.catalog.ListGroups(ctx, kind)
	if err != nil {
		return nil, domain.NewInternalError("failed to list groups", err)
	}
	return &dto.GroupListResponse{Groups: toGroupResponses(groups)}, nil
}

// record scores a submission, stores the attempt and returns it with item details.
func (s *assessmentService) record(
	ctx context.Context,
	learner *domain.Learner,
	items []domain.AssessmentItem,
	sub domain.Submission,
	attempt *domain.Attempt,
) (*dto.AttemptResponse, error) {
	kind := attempt.Result.Kind
	result, err := domain.Score(s.cfg.Policy(kind), items, sub)
	if err != nil {
		return nil, err
	}

	attempt.LearnerID = learner.ID
	attempt.LearnerName = learner.Name
	attempt.Result = *result
	attempt.CreatedAt = s.now()

	if err := s.attempts.SaveAttempt(ctx, attempt); err != nil {
		logger.Get().Error("Failed to save attempt",
			zap.String("learner_id", learner.ID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return nil, domain.NewPersistenceError("failed to save attempt", err)
	}

	logger.Get().Info("Attempt recorded",
		zap.String("attempt_id", attempt.ID),
		zap.String("learner_id", learner.ID),
		zap.String("kind", string(kind)),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Bool("passed", result.Passed))
	return toAttemptResponse(attempt, indexItems(items)), nil
}

// GetAttempt implements AssessmentService
func (s *assessmentService) GetAttempt(ctx context.Context, id string) (*dto.AttemptResponse, error) {
	attempt, err := s.attempts.GetAttempt(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewAttemptNotFoundError(id)
	}

	ids := make([]string, 0, len(attempt.Result.Outcomes))
	for _, o := range attempt.Result.Outcomes {
		ids = append(ids, o.ItemID)
	}
	var items map[string]domain.AssessmentItem
	if len(ids) > 0 {
		found, err := s.catalog.GetItemsByIDs(ctx, attempt.Result.Kind, ids)
		if err != nil {
			// The attempt itself is complete without item details.
			logger.Get().Warn("Failed to load items for attempt", zap.String("attempt_id", id), zap.Error(err))
		} else {
			items = indexItems(found)
		}
	}
	return toAttemptResponse(attempt, items), nil
}

// ListAttempts implements AssessmentService
func (s *assessmentService) ListAttempts(ctx context.Context, learnerID string, kind string) (*dto.AttemptListResponse, error) {
	k := domain.AssessmentKind(kind)
	if kind != "" && !k.Valid() {
		return nil, domain.NewInvalidInputError("unknown assessment kind: " + kind)
	}
	if _, err := s.loadLearner(ctx, learnerID); err != nil {
		return nil, err
	}

	attempts, err := s.attempts.ListAttempts(ctx, learnerID, k)
	if err != nil {
		return nil, domain.NewInternalError("failed to list attempts", err)
	}

	resp := &dto.AttemptListResponse{
		LearnerID: learnerID,
		Kind:      kind,
		Attempts:  make([]dto.AttemptResponse, 0, len(attempts)),
	}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, *toAttemptResponse(a, nil))
	}
	return resp, nil
}

// CatalogStatus implements AssessmentService
func (s *assessmentService) CatalogStatus(ctx context.Context) (*dto.CatalogStatusResponse, error) {
	kinds := []domain.AssessmentKind{domain.KindQuiz, domain.KindRoadSign, domain.KindDrivingTest}
	counts := make([]int, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			n, err := s.catalog.CountItems(gctx, kind)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to count catalog items", err)
	}

	resp := &dto.CatalogStatusResponse{Counts: make(map[string]int, len(kinds)), Ready: true}
	for i, kind := range kinds {
		resp.Counts[string(kind)] = counts[i]
		if counts[i] == 0 {
			resp.Ready = false
		}
	}
	return resp, nil
}

// asDomainError keeps domain errors from errgroup loads intact and wraps anything else.
func asDomainError(err error, message string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewInternalError(message, err)
}

// persistenceError keeps domain errors intact and reports anything else as a failed write.
func persistenceError(err error, message string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewPersistenceError(message, err)
}
