package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/repository/models"
	"learn2drive/internal/util"

	"github.com/jmoiron/sqlx"
)

const taskColumns = `id, phase_id, title, description, teaching_notes, order_index, status, notes, feedback, completed_at, updated_at`

// TrainingDatabaseAdapter implements domain.TrainingRepository using sqlx.
type TrainingDatabaseAdapter struct {
	db *sqlx.DB
}

func NewTrainingDatabaseAdapter(db *sqlx.DB) domain.TrainingRepository {
	return &TrainingDatabaseAdapter{db: db}
}

func toDomainTask(m *models.TrainingTask) *domain.TrainingTask {
	return &domain.TrainingTask{
		ID:            m.ID,
		PhaseID:       m.PhaseID,
		Title:         m.Title,
		Description:   m.Description.String,
		TeachingNotes: m.TeachingNotes.String,
		OrderIndex:    m.OrderIndex,
		Status:        domain.TaskStatus(m.Status),
		Notes:         m.Notes.String,
		Feedback:      m.Feedback.String,
		CompletedAt:   util.NullTimeToPtr(m.CompletedAt),
		UpdatedAt:     m.UpdatedAt,
	}
}

// SavePhase implements domain.TrainingRepository. The phase's tasks are inserted with it.
func (r *TrainingDatabaseAdapter) SavePhase(ctx context.Context, phase *domain.TrainingPhase) error {
	if phase.ID == "" {
		phase.ID = util.NewULID()
	}

	return withTx(ctx, r.db, func(ctx context.Context, exec DBTX) error {
		query := `INSERT INTO training_phases (id, learner_id, title, description, order_index) VALUES (?, ?, ?, ?, ?)`
		if _, err := exec.ExecContext(ctx, exec.Rebind(query),
			phase.ID, phase.LearnerID, phase.Title, util.StringToNullString(phase.Description), phase.OrderIndex,
		); err != nil {
			return fmt.Errorf("failed to save phase %s: %w", phase.Title, err)
		}

		taskQuery := `INSERT INTO training_tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for _, task := range phase.Tasks {
			if task.ID == "" {
				task.ID = util.NewULID()
			}
			task.PhaseID = phase.ID
			if task.Status == "" {
				task.Status = domain.TaskNotStarted
			}
			if task.UpdatedAt.IsZero() {
				task.UpdatedAt = time.Now()
			}
			if _, err := exec.ExecContext(ctx, exec.Rebind(taskQuery),
				task.ID, task.PhaseID, task.Title,
				util.StringToNullString(task.Description),
				util.StringToNullString(task.TeachingNotes),
				task.OrderIndex, string(task.Status),
				util.StringToNullString(task.Notes),
				util.StringToNullString(task.Feedback),
				util.TimePtrToNullTime(task.CompletedAt),
				task.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to save task %s: %w", task.Title, err)
			}
		}
		return nil
	})
}

// ListPhases implements domain.TrainingRepository
func (r *TrainingDatabaseAdapter) ListPhases(ctx context.Context, learnerID string) ([]*domain.TrainingPhase, error) {
	exec := GetExecutor(ctx, r.db)

	var phaseRows []models.TrainingPhase
	query := `SELECT id, learner_id, title, description, order_index FROM training_phases WHERE learner_id = ? ORDER BY order_index, id`
	if err := exec.SelectContext(ctx, &phaseRows, exec.Rebind(query), learnerID); err != nil {
		return nil, fmt.Errorf("failed to list phases of learner %s: %w", learnerID, err)
	}

	phases := make([]*domain.TrainingPhase, 0, len(phaseRows))
	byID := make(map[string]*domain.TrainingPhase, len(phaseRows))
	ids := make([]string, 0, len(phaseRows))
	for _, p := range phaseRows {
		phase := &domain.TrainingPhase{
			ID:          p.ID,
			LearnerID:   p.LearnerID,
			Title:       p.Title,
			Description: p.Description.String,
			OrderIndex:  p.OrderIndex,
		}
		phases = append(phases, phase)
		byID[p.ID] = phase
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return phases, nil
	}

	taskQuery := `SELECT ` + taskColumns + ` FROM training_tasks WHERE phase_id IN (?) ORDER BY order_index, id`
	taskRows, err := selectIn[models.TrainingTask](ctx, exec, taskQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of learner %s: %w", learnerID, err)
	}
	for i := range taskRows {
		if phase, ok := byID[taskRows[i].PhaseID]; ok {
			phase.Tasks = append(phase.Tasks, toDomainTask(&taskRows[i]))
		}
	}
	return phases, nil
}

// GetTask implements domain.TrainingRepository
func (r *TrainingDatabaseAdapter) GetTask(ctx context.Context, id string) (*domain.TrainingTask, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.TrainingTask
	query := `SELECT ` + taskColumns + ` FROM training_tasks WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return toDomainTask(&row), nil
}

// UpdateTaskProgress implements domain.TrainingRepository
func (r *TrainingDatabaseAdapter) UpdateTaskProgress(ctx context.Context, task *domain.TrainingTask) error {
	exec := GetExecutor(ctx, r.db)

	query := `UPDATE training_tasks SET status = ?, notes = ?, feedback = ?, completed_at = ?, updated_at = ? WHERE id = ?`
	result, err := exec.ExecContext(ctx, exec.Rebind(query),
		string(task.Status),
		util.StringToNullString(task.Notes),
		util.StringToNullString(task.Feedback),
		util.TimePtrToNullTime(task.CompletedAt),
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.NewTaskNotFoundError(task.ID)
	}
	return nil
}

// ListAllTasks implements domain.TrainingRepository
func (r *TrainingDatabaseAdapter) ListAllTasks(ctx context.Context) ([]*domain.TrainingTask, error) {
	exec := GetExecutor(ctx, r.db)

	var rows []models.TrainingTask
	query := `SELECT ` + taskColumns + ` FROM training_tasks ORDER BY phase_id, order_index, id`
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domain.TrainingTask, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, toDomainTask(&rows[i]))
	}
	return tasks, nil
}

// SetTeachingNotes implements domain.TrainingRepository
func (r *TrainingDatabaseAdapter) SetTeachingNotes(ctx context.Context, taskID, notes string) error {
	exec := GetExecutor(ctx, r.db)

	query := `UPDATE training_tasks SET teaching_notes = ? WHERE id = ?`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query), util.StringToNullString(notes), taskID); err != nil {
		return fmt.Errorf("failed to set teaching notes of task %s: %w", taskID, err)
	}
	return nil
}
