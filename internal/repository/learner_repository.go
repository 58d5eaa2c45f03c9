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

// LearnerDatabaseAdapter implements domain.LearnerRepository using sqlx.
type LearnerDatabaseAdapter struct {
	db *sqlx.DB
}

func NewLearnerDatabaseAdapter(db *sqlx.DB) domain.LearnerRepository {
	return &LearnerDatabaseAdapter{db: db}
}

func toDomainLearner(m *models.Learner) *domain.Learner {
	return &domain.Learner{
		ID:        m.ID,
		Name:      m.Name,
		BirthDate: m.BirthDate,
		StartDate: m.StartDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateLearner implements domain.LearnerRepository
func (r *LearnerDatabaseAdapter) CreateLearner(ctx context.Context, learner *domain.Learner) error {
	if learner.ID == "" {
		learner.ID = util.NewULID()
	}
	now := time.Now()
	if learner.CreatedAt.IsZero() {
		learner.CreatedAt = now
	}
	if learner.UpdatedAt.IsZero() {
		learner.UpdatedAt = now
	}

	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO learners (id, name, birth_date, start_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := exec.ExecContext(ctx, exec.Rebind(query),
		learner.ID, learner.Name, learner.BirthDate, learner.StartDate, learner.CreatedAt, learner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create learner: %w", err)
	}
	return nil
}

// GetLearner implements domain.LearnerRepository
func (r *LearnerDatabaseAdapter) GetLearner(ctx context.Context, id string) (*domain.Learner, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Learner
	query := `SELECT id, name, birth_date, start_date, created_at, updated_at FROM learners WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get learner %s: %w", id, err)
	}
	return toDomainLearner(&row), nil
}

// ListLearners implements domain.LearnerRepository
func (r *LearnerDatabaseAdapter) ListLearners(ctx context.Context) ([]*domain.Learner, error) {
	exec := GetExecutor(ctx, r.db)

	var rows []models.Learner
	query := `SELECT id, name, birth_date, start_date, created_at, updated_at FROM learners ORDER BY name, id`
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list learners: %w", err)
	}

	learners := make([]*domain.Learner, 0, len(rows))
	for i := range rows {
		learners = append(learners, toDomainLearner(&rows[i]))
	}
	return learners, nil
}

// UpdateLearner implements domain.LearnerRepository
func (r *LearnerDatabaseAdapter) UpdateLearner(ctx context.Context, learner *domain.Learner) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE learners SET name = ?, birth_date = ?, start_date = ?, updated_at = ? WHERE id = ?`
	res, err := exec.ExecContext(ctx, exec.Rebind(query),
		learner.Name, learner.BirthDate, learner.StartDate, learner.UpdatedAt, learner.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update learner %s: %w", learner.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update learner %s: %w", learner.ID, err)
	}
	return n > 0, nil
}

// learnerDependents lists the statements that clear a learner's rows,
// children first, so deletion does not rely on ON DELETE CASCADE.
var learnerDependents = []string{
	`DELETE FROM attempt_responses WHERE attempt_id IN (SELECT id FROM attempts WHERE learner_id = ?)`,
	`DELETE FROM attempt_group_scores WHERE attempt_id IN (SELECT id FROM attempts WHERE learner_id = ?)`,
	`DELETE FROM attempts WHERE learner_id = ?`,
	`DELETE FROM driving_logs WHERE learner_id = ?`,
	`DELETE FROM training_tasks WHERE phase_id IN (SELECT id FROM training_phases WHERE learner_id = ?)`,
	`DELETE FROM training_phases WHERE learner_id = ?`,
}

// DeleteLearner implements domain.LearnerRepository. The learner's checklist,
// attempts and driving logs are removed in the same transaction.
func (r *LearnerDatabaseAdapter) DeleteLearner(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := withTx(ctx, r.db, func(ctx context.Context, exec DBTX) error {
		for _, query := range learnerDependents {
			if _, err := exec.ExecContext(ctx, exec.Rebind(query), id); err != nil {
				return fmt.Errorf("failed to delete data of learner %s: %w", id, err)
			}
		}
		res, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM learners WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("failed to delete learner %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to delete learner %s: %w", id, err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
