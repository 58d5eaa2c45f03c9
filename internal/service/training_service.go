package service

import (
	"context"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
)

// TrainingService records progress on the skill checklist.
type TrainingService interface {
	UpdateTaskProgress(ctx context.Context, taskID string, req *dto.UpdateTaskProgressRequest) (*dto.TaskResponse, error)
	BulkUpdateProgress(ctx context.Context, req *dto.BulkTaskProgressRequest) (*dto.BulkTaskProgressResponse, error)
	BackfillTeachingNotes(ctx context.Context) (*dto.BackfillResponse, error)
}

type trainingService struct {
	training domain.TrainingRepository
	tx       domain.TransactionManager
	notes    *domain.TeachingNotes
	now      func() time.Time
}

func NewTrainingService(training domain.TrainingRepository, tx domain.TransactionManager, notes *domain.TeachingNotes) TrainingService {
	return &trainingService{training: training, tx: tx, notes: notes, now: time.Now}
}

func (s *trainingService) loadTask(ctx context.Context, taskID string) (*domain.TrainingTask, error) {
	task, err := s.training.GetTask(ctx, taskID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load task", err)
	}
	if task == nil {
		return nil, domain.NewTaskNotFoundError(taskID)
	}
	return task, nil
}

// UpdateTaskProgress implements TrainingService
func (s *trainingService) UpdateTaskProgress(ctx context.Context, taskID string, req *dto.UpdateTaskProgressRequest) (*dto.TaskResponse, error) {
	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("status", req.Status)}
	}

	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.ApplyProgress(status, req.Notes, req.Feedback, s.now())
	if err := s.training.UpdateTaskProgress(ctx, task); err != nil {
		return nil, persistenceError(err, "failed to update task progress")
	}

	logger.Get().Info("Task progress updated", zap.String("task_id", taskID), zap.String("status", string(status)))
	resp := toTaskResponse(task)
	return &resp, nil
}

// BulkUpdateProgress implements TrainingService. Notes and feedback of each task
// are kept; either every task is updated or none is.
func (s *trainingService) BulkUpdateProgress(ctx context.Context, req *dto.BulkTaskProgressRequest) (*dto.BulkTaskProgressResponse, error) {
	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("status", req.Status)}
	}

	now := s.now()
	updated := make([]*domain.TrainingTask, 0, len(req.TaskIDs))
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, id := range req.TaskIDs {
			task, err := s.loadTask(ctx, id)
			if err != nil {
				return err
			}
			task.ApplyProgress(status, task.Notes, task.Feedback, now)
			if err := s.training.UpdateTaskProgress(ctx, task); err != nil {
				return err
			}
			updated = append(updated, task)
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to update task progress")
	}

	resp := &dto.BulkTaskProgressResponse{Updated: len(updated), Tasks: make([]dto.TaskResponse, 0, len(updated))}
	for _, t := range updated {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	logger.Get().Info("Bulk task progress updated", zap.Int("tasks", resp.Updated), zap.String("status", string(status)))
	return resp, nil
}

// BackfillTeachingNotes implements TrainingService. Tasks that already have
// notes, or whose title matches nothing, are skipped.
func (s *trainingService) BackfillTeachingNotes(ctx context.Context) (*dto.BackfillResponse, error) {
	tasks, err := s.training.ListAllTasks(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list tasks", err)
	}

	report := domain.BackfillReport{Total: len(tasks)}
	for _, task := range tasks {
		if task.TeachingNotes != "" {
			report.Skipped++
			continue
		}
		notes, ok := s.notes.Find(task.Title)
		if !ok {
			report.Skipped++
			continue
		}
		if err := s.training.SetTeachingNotes(ctx, task.ID, notes); err != nil {
			return nil, domain.NewPersistenceError("failed to store teaching notes", err)
		}
		report.Updated++
	}

	logger.Get().Info("Teaching notes backfilled",
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("total", report.Total))
	return &dto.BackfillResponse{Updated: report.Updated, Skipped: report.Skipped, Total: report.Total}, nil
}
