package service

import (
	"context"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
)

// LearnerService registers learners and reads them back with their checklist.
type LearnerService interface {
	CreateLearner(ctx context.Context, req *dto.CreateLearnerRequest) (*dto.LearnerResponse, error)
	GetLearner(ctx context.Context, id string) (*dto.LearnerResponse, error)
	ListLearners(ctx context.Context) (*dto.LearnerListResponse, error)
	UpdateLearner(ctx context.Context, id string, req *dto.UpdateLearnerRequest) (*dto.LearnerResponse, error)
	DeleteLearner(ctx context.Context, id string) error
}

type learnerService struct {
	learners  domain.LearnerRepository
	training  domain.TrainingRepository
	tx        domain.TransactionManager
	templates []domain.PhaseTemplate
	notes     *domain.TeachingNotes
}

// NewLearnerService creates a LearnerService. Every new learner gets a copy of
// templates as their checklist, with teaching notes filled in where notes has them.
func NewLearnerService(
	learners domain.LearnerRepository,
	training domain.TrainingRepository,
	tx domain.TransactionManager,
	templates []domain.PhaseTemplate,
	notes *domain.TeachingNotes,
) LearnerService {
	return &learnerService{
		learners:  learners,
		training:  training,
		tx:        tx,
		templates: templates,
		notes:     notes,
	}
}

// CreateLearner implements LearnerService. The learner and the whole checklist
// are written in one transaction.
func (s *learnerService) CreateLearner(ctx context.Context, req *dto.CreateLearnerRequest) (*dto.LearnerResponse, error) {
	birth, err := time.Parse(dto.DateLayout, req.BirthDate)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("birth_date", req.BirthDate)}
	}
	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("start_date", req.StartDate)}
	}

	learner := domain.NewLearner(req.Name, birth, start)
	if err := learner.Validate(); err != nil {
		return nil, err
	}
	learner.Phases = s.instantiateChecklist()

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.learners.CreateLearner(ctx, learner); err != nil {
			return err
		}
		for _, phase := range learner.Phases {
			phase.LearnerID = learner.ID
			if err := s.training.SavePhase(ctx, phase); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("Failed to create learner", zap.String("name", learner.Name), zap.Error(err))
		return nil, domain.NewPersistenceError("failed to create learner", err)
	}

	logger.Get().Info("Learner created",
		zap.String("learner_id", learner.ID),
		zap.Int("phases", len(learner.Phases)))
	return toLearnerResponse(learner), nil
}

func (s *learnerService) instantiateChecklist() []*domain.TrainingPhase {
	now := time.Now()
	phases := make([]*domain.TrainingPhase, 0, len(s.templates))
	for i, tpl := range s.templates {
		phase := &domain.TrainingPhase{
			Title:       tpl.Title,
			Description: tpl.Description,
			OrderIndex:  i,
			Tasks:       make([]*domain.TrainingTask, 0, len(tpl.Tasks)),
		}
		for j, task := range tpl.Tasks {
			notes, _ := s.notes.Find(task.Title)
			phase.Tasks = append(phase.Tasks, &domain.TrainingTask{
				Title:         task.Title,
				Description:   task.Description,
				TeachingNotes: notes,
				OrderIndex:    j,
				Status:        domain.TaskNotStarted,
				UpdatedAt:     now,
			})
		}
		phases = append(phases, phase)
	}
	return phases
}

// GetLearner implements LearnerService
func (s *learnerService) GetLearner(ctx context.Context, id string) (*dto.LearnerResponse, error) {
	learner, err := s.learners.GetLearner(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load learner", err)
	}
	if learner == nil {
		return nil, domain.NewLearnerNotFoundError(id)
	}

	phases, err := s.training.ListPhases(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load training checklist", err)
	}
	learner.Phases = phases
	return toLearnerResponse(learner), nil
}

// ListLearners implements LearnerService. Checklists are not loaded.
func (s *learnerService) ListLearners(ctx context.Context) (*dto.LearnerListResponse, error) {
	learners, err := s.learners.ListLearners(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list learners", err)
	}
	resp := &dto.LearnerListResponse{Learners: make([]dto.LearnerResponse, 0, len(learners))}
	for _, l := range learners {
		resp.Learners = append(resp.Learners, *toLearnerResponse(l))
	}
	return resp, nil
}

// UpdateLearner implements LearnerService. Only the fields present in req change.
func (s *learnerService) UpdateLearner(ctx context.Context, id string, req *dto.UpdateLearnerRequest) (*dto.LearnerResponse, error) {
	birth, fieldErrs := parseOptionalDate("birth_date", req.BirthDate)
	start, startErrs := parseOptionalDate("start_date", req.StartDate)
	if fieldErrs = append(fieldErrs, startErrs...); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	learner, err := s.learners.GetLearner(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load learner", err)
	}
	if learner == nil {
		return nil, domain.NewLearnerNotFoundError(id)
	}

	learner.ApplyUpdate(req.Name, birth, start, time.Now())
	if err := learner.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.learners.UpdateLearner(ctx, learner)
	if err != nil {
		logger.Get().Error("Failed to update learner", zap.String("learner_id", id), zap.Error(err))
		return nil, domain.NewPersistenceError("failed to update learner", err)
	}
	if !ok {
		return nil, domain.NewLearnerNotFoundError(id)
	}

	logger.Get().Info("Learner updated", zap.String("learner_id", id))
	return toLearnerResponse(learner), nil
}

// DeleteLearner implements LearnerService. The repository removes the
// learner's checklist, attempts and driving logs with them.
func (s *learnerService) DeleteLearner(ctx context.Context, id string) error {
	ok, err := s.learners.DeleteLearner(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to delete learner", zap.String("learner_id", id), zap.Error(err))
		return domain.NewPersistenceError("failed to delete learner", err)
	}
	if !ok {
		return domain.NewLearnerNotFoundError(id)
	}
	logger.Get().Info("Learner deleted", zap.String("learner_id", id))
	return nil
}

// parseOptionalDate parses value when present; a nil value yields a nil time.
func parseOptionalDate(field string, value *string) (*time.Time, domain.ValidationErrors) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *value)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError(field, *value)}
	}
	return &t, nil
}
