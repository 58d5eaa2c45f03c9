package service

import (
	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
)

func toGroupResponses(groups []domain.ItemGroup) []dto.GroupResponse {
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{
			Key:         g.Key,
			Name:        g.Name,
			Description: g.Description,
			ItemCount:   g.ItemCount,
			MaxPoints:   g.MaxPoints,
		})
	}
	return out
}

func toChoiceResponses(choices []string) []dto.ChoiceResponse {
	out := make([]dto.ChoiceResponse, 0, len(choices))
	for i, text := range choices {
		out = append(out, dto.ChoiceResponse{Letter: domain.LetterFor(i), Text: text})
	}
	return out
}

func toOptionResponses(options []domain.AnswerOption) []dto.ChoiceResponse {
	out := make([]dto.ChoiceResponse, 0, len(options))
	for _, opt := range options {
		out = append(out, dto.ChoiceResponse{Letter: opt.Letter, Text: opt.Text})
	}
	return out
}

// toAttemptResponse converts a stored attempt. items, when given, fill in the
// prompt and the right answer of each response.
func toAttemptResponse(a *domain.Attempt, items map[string]domain.AssessmentItem) *dto.AttemptResponse {
	resp := &dto.AttemptResponse{
		ID:                   a.ID,
		LearnerID:            a.LearnerID,
		LearnerName:          a.LearnerName,
		Kind:                 string(a.Result.Kind),
		Mode:                 a.Mode,
		Score:                a.Result.Score,
		Total:                a.Result.Total,
		Percentage:           a.Result.Percentage,
		Passed:               a.Result.Passed,
		AutomaticFail:        a.Result.AutomaticFail,
		AutomaticFailReasons: a.AutomaticFailReasons,
		TimeTakenSeconds:     a.TimeTakenSeconds,
		EvaluatorName:        a.EvaluatorName,
		Notes:                a.Notes,
		CreatedAt:            a.CreatedAt,
		Breakdown:            make([]dto.GroupScoreResponse, 0, len(a.Result.Breakdown)),
	}
	for _, b := range a.Result.Breakdown {
		resp.Breakdown = append(resp.Breakdown, dto.GroupScoreResponse{
			GroupKey:   b.GroupKey,
			GroupName:  b.GroupName,
			Earned:     b.Earned,
			Possible:   b.Possible,
			Percentage: b.Percentage,
		})
	}
	for _, o := range a.Result.Outcomes {
		detail := dto.ResponseDetail{
			ItemID:         o.ItemID,
			GroupKey:       o.GroupKey,
			Selected:       o.Selected,
			Correct:        o.Correct,
			PointsDeducted: o.PointsDeducted,
			Earned:         o.Earned,
			Possible:       o.Possible,
			Note:           o.Note,
			ElapsedSeconds: o.ElapsedSeconds,
		}
		if item, ok := items[o.ItemID]; ok {
			detail.Prompt = item.Text
			switch item.Kind {
			case domain.KindQuiz:
				detail.CorrectAnswer = item.CorrectKey
				detail.Explanation = item.Detail
			case domain.KindRoadSign:
				detail.CorrectAnswer = item.Detail
			}
		}
		resp.Responses = append(resp.Responses, detail)
	}
	return resp
}

func indexItems(items []domain.AssessmentItem) map[string]domain.AssessmentItem {
	out := make(map[string]domain.AssessmentItem, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}

func toTaskResponse(t *domain.TrainingTask) dto.TaskResponse {
	return dto.TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		TeachingNotes: t.TeachingNotes,
		Status:        string(t.Status),
		Notes:         t.Notes,
		Feedback:      t.Feedback,
		CompletedAt:   t.CompletedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toLearnerResponse(l *domain.Learner) *dto.LearnerResponse {
	resp := &dto.LearnerResponse{
		ID:        l.ID,
		Name:      l.Name,
		BirthDate: l.BirthDate.Format(dto.DateLayout),
		StartDate: l.StartDate.Format(dto.DateLayout),
		CreatedAt: l.CreatedAt,
	}
	for _, p := range l.Phases {
		phase := dto.PhaseResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Completed:   p.CompletedCount(),
			Total:       len(p.Tasks),
			Tasks:       make([]dto.TaskResponse, 0, len(p.Tasks)),
		}
		for _, t := range p.Tasks {
			phase.Tasks = append(phase.Tasks, toTaskResponse(t))
		}
		resp.CompletedTasks += phase.Completed
		resp.TotalTasks += phase.Total
		resp.Phases = append(resp.Phases, phase)
	}
	return resp
}

func toDrivingLogResponse(l *domain.DrivingLog) *dto.DrivingLogResponse {
	roads := l.RoadTypes
	if roads == nil {
		roads = []string{}
	}
	return &dto.DrivingLogResponse{
		ID:              l.ID,
		LearnerID:       l.LearnerID,
		LearnerName:     l.LearnerName,
		Date:            l.Date.Format(dto.DateLayout),
		DurationMinutes: l.DurationMinutes,
		Notes:           l.Notes,
		Weather:         l.Weather,
		RoadTypes:       roads,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
