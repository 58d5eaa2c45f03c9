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

const drivingLogSelect = `SELECT d.id, d.learner_id, l.name AS learner_name, d.log_date, d.duration_minutes,
	d.notes, d.weather, d.road_types, d.created_at, d.updated_at
	FROM driving_logs d JOIN learners l ON l.id = d.learner_id`

// DrivingLogDatabaseAdapter implements domain.DrivingLogRepository using sqlx.
type DrivingLogDatabaseAdapter struct {
	db *sqlx.DB
}

func NewDrivingLogDatabaseAdapter(db *sqlx.DB) domain.DrivingLogRepository {
	return &DrivingLogDatabaseAdapter{db: db}
}

func toDomainDrivingLog(m *models.DrivingLog) *domain.DrivingLog {
	roads := []string(m.RoadTypes)
	if roads == nil {
		roads = []string{}
	}
	return &domain.DrivingLog{
		ID:              m.ID,
		LearnerID:       m.LearnerID,
		LearnerName:     m.LearnerName,
		Date:            m.LogDate,
		DurationMinutes: m.DurationMinutes,
		Notes:           m.Notes.String,
		Weather:         m.Weather.String,
		RoadTypes:       roads,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CreateLog implements domain.DrivingLogRepository
func (r *DrivingLogDatabaseAdapter) CreateLog(ctx context.Context, log *domain.DrivingLog) error {
	if log.ID == "" {
		log.ID = util.NewULID()
	}
	now := time.Now()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = now
	}
	if log.UpdatedAt.IsZero() {
		log.UpdatedAt = now
	}

	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO driving_logs (id, learner_id, log_date, duration_minutes, notes, weather, road_types, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := exec.ExecContext(ctx, exec.Rebind(query),
		log.ID, log.LearnerID, log.Date, log.DurationMinutes,
		util.StringToNullString(log.Notes),
		util.StringToNullString(log.Weather),
		models.StringSlice(log.RoadTypes),
		log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create driving log: %w", err)
	}
	return nil
}

// GetLog implements domain.DrivingLogRepository
func (r *DrivingLogDatabaseAdapter) GetLog(ctx context.Context, id string) (*domain.DrivingLog, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.DrivingLog
	if err := exec.GetContext(ctx, &row, exec.Rebind(drivingLogSelect+` WHERE d.id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driving log %s: %w", id, err)
	}
	return toDomainDrivingLog(&row), nil
}

// ListLogs implements domain.DrivingLogRepository. An empty learnerID lists every learner's logs.
func (r *DrivingLogDatabaseAdapter) ListLogs(ctx context.Context, learnerID string) ([]*domain.DrivingLog, error) {
	exec := GetExecutor(ctx, r.db)

	query := drivingLogSelect
	var args []interface{}
	if learnerID != "" {
		query += ` WHERE d.learner_id = ?`
		args = append(args, learnerID)
	}
	query += ` ORDER BY d.log_date DESC, d.id DESC`

	var rows []models.DrivingLog
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list driving logs: %w", err)
	}

	logs := make([]*domain.DrivingLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, toDomainDrivingLog(&rows[i]))
	}
	return logs, nil
}

// UpdateLog implements domain.DrivingLogRepository
func (r *DrivingLogDatabaseAdapter) UpdateLog(ctx context.Context, log *domain.DrivingLog) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE driving_logs SET log_date = ?, duration_minutes = ?, notes = ?, weather = ?, road_types = ?, updated_at = ?
		WHERE id = ?`
	res, err := exec.ExecContext(ctx, exec.Rebind(query),
		log.Date, log.DurationMinutes,
		util.StringToNullString(log.Notes),
		util.StringToNullString(log.Weather),
		models.StringSlice(log.RoadTypes),
		log.UpdatedAt, log.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update driving log %s: %w", log.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update driving log %s: %w", log.ID, err)
	}
	return n > 0, nil
}

// DeleteLog implements domain.DrivingLogRepository
func (r *DrivingLogDatabaseAdapter) DeleteLog(ctx context.Context, id string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	res, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM driving_logs WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete driving log %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete driving log %s: %w", id, err)
	}
	return n > 0, nil
}
