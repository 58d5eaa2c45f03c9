package service

import (
	"context"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"

	"golang.org/x/sync/errgroup"
)

// GetDrivingTestRubric implements AssessmentService
func (s *assessmentService) GetDrivingTestRubric(ctx context.Context) (*dto.RubricResponse, error) {
	var (
		groups   []domain.ItemGroup
		criteria []domain.AssessmentItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = s.catalog.ListGroups(gctx, domain.KindDrivingTest)
		return err
	})
	g.Go(func() error {
		var err error
		criteria, err = s.catalog.ListItems(gctx, domain.KindDrivingTest, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to load driving test rubric", err)
	}

	byGroup := make(map[string][]dto.CriterionResponse, len(groups))
	for _, c := range criteria {
		byGroup[c.GroupKey] = append(byGroup[c.GroupKey], dto.CriterionResponse{
			ID:        c.ID,
			Name:      c.Text,
			Guide:     c.Detail,
			MaxPoints: c.MaxPoints,
		})
	}

	resp := &dto.RubricResponse{
		MaxScore:                s.cfg.DrivingTestMaxScore,
		PassScore:               s.cfg.DrivingTestPassScore,
		Categories:              make([]dto.RubricCategoryResponse, 0, len(groups)),
		AutomaticFailConditions: s.automaticFailConditions,
	}
	if resp.AutomaticFailConditions == nil {
		resp.AutomaticFailConditions = []string{}
	}
	for _, grp := range groups {
		cat := dto.RubricCategoryResponse{
			Key:         grp.Key,
			Name:        grp.Name,
			Description: grp.Description,
			Criteria:    byGroup[grp.Key],
		}
		for _, c := range cat.Criteria {
			cat.MaxPoints += c.MaxPoints
		}
		if cat.Criteria == nil {
			cat.Criteria = []dto.CriterionResponse{}
		}
		resp.Categories = append(resp.Categories, cat)
	}
	return resp, nil
}

// SubmitDrivingTest implements AssessmentService. The whole rubric is loaded so
// that a missing criterion is detected.
func (s *assessmentService) SubmitDrivingTest(ctx context.Context, req *dto.SubmitDrivingTestRequest) (*dto.AttemptResponse, error) {
	var (
		learner  *domain.Learner
		criteria []domain.AssessmentItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		learner, err = s.loadLearner(gctx, req.LearnerID)
		return err
	})
	g.Go(func() error {
		var err error
		criteria, err = s.catalog.ListItems(gctx, domain.KindDrivingTest, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, asDomainError(err, "failed to load driving test submission data")
	}

	sub := domain.Submission{
		Responses:     make([]domain.Response, 0, len(req.Evaluations)),
		AutomaticFail: req.AutomaticFail,
	}
	for _, e := range req.Evaluations {
		sub.Responses = append(sub.Responses, domain.Response{
			ItemID:         e.CriterionID,
			PointsDeducted: e.PointsDeducted,
			Note:           e.Note,
		})
	}

	attempt := &domain.Attempt{
		TimeTakenSeconds: req.TimeTakenSeconds,
		EvaluatorName:    req.EvaluatorName,
		Notes:            req.Notes,
		Result:           domain.AttemptResult{Kind: domain.KindDrivingTest},
	}
	if req.AutomaticFail {
		attempt.AutomaticFailReasons = req.AutomaticFailReasons
	}
	return s.record(ctx, learner, criteria, sub, attempt)
}
