package service

import (
	"context"
	"fmt"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"
	"learn2drive/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListRoadSignCategories implements AssessmentService
func (s *assessmentService) ListRoadSignCategories(ctx context.Context) (*dto.GroupListResponse, error) {
	return s.listGroups(ctx, domain.KindRoadSign)
}

// StartRoadSignTest implements AssessmentService. The option mapping is kept
// server-side under the returned test id; only letters and texts go out.
func (s *assessmentService) StartRoadSignTest(ctx context.Context, category string, count *int, mode string) (*dto.RoadSignTestResponse, error) {
	if mode == "" {
		mode = domain.RoadSignModeAll
	}
	n, err := s.resolveCount(count, s.cfg.RoadSignCount(mode))
	if err != nil {
		return nil, err
	}
	if err := s.checkGroup(ctx, domain.KindRoadSign, category); err != nil {
		return nil, err
	}

	signs, err := s.catalog.ListItems(ctx, domain.KindRoadSign, category)
	if err != nil {
		return nil, domain.NewInternalError("failed to load road signs", err)
	}
	questions, err := s.selector.BuildRoadSignTest(signs, category, n)
	if err != nil {
		return nil, err
	}

	now := s.now()
	test := &PresentedTest{
		TestID:    util.NewULID(),
		Mode:      mode,
		Category:  category,
		Questions: questions,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessions.TTL()),
	}
	if err := s.sessions.Put(ctx, test); err != nil {
		return nil, err
	}

	resp := &dto.RoadSignTestResponse{
		TestID:    test.TestID,
		Mode:      mode,
		Category:  category,
		ExpiresAt: test.ExpiresAt,
		Questions: make([]dto.RoadSignQuestionResponse, 0, len(questions)),
	}
	if mode == domain.RoadSignModeTimed {
		resp.SecondsPerQuestion = s.cfg.RoadSignSecondsPerQuestion
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.RoadSignQuestionResponse{
			ItemID:       q.Item.ID,
			SignName:     q.Item.Text,
			Category:     q.Item.GroupKey,
			CategoryName: q.Item.GroupName,
			Options:      toOptionResponses(q.Options),
		})
	}
	logger.Get().Debug("Road sign test started",
		zap.String("test_id", test.TestID),
		zap.String("mode", mode),
		zap.Int("questions", len(questions)))
	return resp, nil
}

// SubmitRoadSignTest implements AssessmentService. Letters are resolved through
// the stored mapping; any presented sign without a response counts as unanswered.
// The session is taken before scoring, so a test id is accepted at most once.
// A submission that fails before the attempt is stored puts the session back.
func (s *assessmentService) SubmitRoadSignTest(ctx context.Context, req *dto.SubmitRoadSignTestRequest) (*dto.AttemptResponse, error) {
	var (
		learner *domain.Learner
		test    *PresentedTest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		learner, err = s.loadLearner(gctx, req.LearnerID)
		return err
	})
	g.Go(func() error {
		var err error
		test, err = s.sessions.Take(gctx, req.TestID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.restoreSession(ctx, test)
		return nil, asDomainError(err, "failed to load road sign submission data")
	}

	resp, err := s.scoreRoadSignTest(ctx, learner, test, req)
	if err != nil {
		s.restoreSession(ctx, test)
		return nil, err
	}
	return resp, nil
}

func (s *assessmentService) scoreRoadSignTest(
	ctx context.Context,
	learner *domain.Learner,
	test *PresentedTest,
	req *dto.SubmitRoadSignTestRequest,
) (*dto.AttemptResponse, error) {
	sub, err := s.resolveRoadSignResponses(test, req.Responses)
	if err != nil {
		return nil, err
	}

	items := make([]domain.AssessmentItem, 0, len(test.Questions))
	for _, q := range test.Questions {
		items = append(items, q.Item)
	}

	attempt := &domain.Attempt{
		Mode:             test.Mode,
		TimeTakenSeconds: req.TimeTakenSeconds,
		Result:           domain.AttemptResult{Kind: domain.KindRoadSign},
	}
	return s.record(ctx, learner, items, sub, attempt)
}

// restoreSession gives a rejected submission's test back to the learner.
func (s *assessmentService) restoreSession(ctx context.Context, test *PresentedTest) {
	if test == nil {
		return
	}
	if err := s.sessions.Restore(ctx, test, s.now()); err != nil {
		logger.Get().Warn("Failed to restore road sign test", zap.String("test_id", test.TestID), zap.Error(err))
	}
}

func (s *assessmentService) resolveRoadSignResponses(test *PresentedTest, answers []dto.RoadSignAnswerRequest) (domain.Submission, error) {
	sub := domain.Submission{Responses: make([]domain.Response, 0, len(test.Questions))}
	answered := make(map[string]struct{}, len(answers))

	for _, a := range answers {
		q, ok := test.Question(a.ItemID)
		if !ok {
			return sub, domain.NewDanglingReferenceError(a.ItemID).WithContext("test_id", test.TestID)
		}
		resp := domain.Response{ItemID: a.ItemID, ElapsedSeconds: a.ElapsedSeconds}

		timedOut := test.Mode == domain.RoadSignModeTimed &&
			s.cfg.RoadSignSecondsPerQuestion > 0 &&
			a.ElapsedSeconds > s.cfg.RoadSignSecondsPerQuestion
		if a.Selected != nil && !timedOut {
			selectedID, ok := q.ResolveLetter(*a.Selected)
			if !ok {
				return sub, domain.NewInvalidSubmissionError(
					fmt.Sprintf("%q is not an option for sign %s", *a.Selected, a.ItemID))
			}
			letter := *a.Selected
			resp.Selected = &letter
			resp.SelectedItemID = selectedID
		}

		answered[a.ItemID] = struct{}{}
		sub.Responses = append(sub.Responses, resp)
	}

	for _, q := range test.Questions {
		if _, ok := answered[q.Item.ID]; !ok {
			sub.Responses = append(sub.Responses, domain.Response{ItemID: q.Item.ID})
		}
	}
	return sub, nil
}
