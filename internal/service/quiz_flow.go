package service

import (
	"context"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListQuizTopics implements AssessmentService
func (s *assessmentService) ListQuizTopics(ctx context.Context) (*dto.GroupListResponse, error) {
	return s.listGroups(ctx, domain.KindQuiz)
}

// StartQuiz implements AssessmentService. The answer keys are not part of the response.
func (s *assessmentService) StartQuiz(ctx context.Context, topic string, count *int) (*dto.QuizQuestionsResponse, error) {
	n, err := s.resolveCount(count, s.cfg.DefaultQuizCount)
	if err != nil {
		return nil, err
	}
	if err := s.checkGroup(ctx, domain.KindQuiz, topic); err != nil {
		return nil, err
	}

	items, err := s.catalog.ListItems(ctx, domain.KindQuiz, topic)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz questions", err)
	}
	selected, err := s.selector.SelectItems(items, topic, n)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuizQuestionsResponse{
		Topic:     topic,
		Count:     len(selected),
		Questions: make([]dto.QuizQuestionResponse, 0, len(selected)),
	}
	for _, item := range selected {
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			ID:        item.ID,
			Topic:     item.GroupKey,
			TopicName: item.GroupName,
			Question:  item.Text,
			Choices:   toChoiceResponses(item.Choices),
		})
	}
	logger.Get().Debug("Quiz started", zap.String("topic", topic), zap.Int("questions", len(selected)))
	return resp, nil
}

// SubmitQuiz implements AssessmentService
func (s *assessmentService) SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.AttemptResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = domain.QuizModePractice
	}

	ids := make([]string, 0, len(req.Responses))
	sub := domain.Submission{Responses: make([]domain.Response, 0, len(req.Responses))}
	for _, r := range req.Responses {
		ids = append(ids, r.ItemID)
		sub.Responses = append(sub.Responses, domain.Response{ItemID: r.ItemID, Selected: r.Selected})
	}

	var (
		learner *domain.Learner
		items   []domain.AssessmentItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		learner, err = s.loadLearner(gctx, req.LearnerID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.catalog.GetItemsByIDs(gctx, domain.KindQuiz, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, asDomainError(err, "failed to load quiz submission data")
	}

	attempt := &domain.Attempt{
		Mode:             mode,
		TimeTakenSeconds: req.TimeTakenSeconds,
		Result:           domain.AttemptResult{Kind: domain.KindQuiz},
	}
	return s.record(ctx, learner, items, sub, attempt)
}
