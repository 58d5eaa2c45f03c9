package models

import (
	"database/sql"
	"time"
)

// DrivingLog maps the driving_logs table joined with the learner name.
type DrivingLog struct {
	ID              string         `db:"id"`
	LearnerID       string         `db:"learner_id"`
	LearnerName     string         `db:"learner_name"`
	LogDate         time.Time      `db:"log_date"`
	DurationMinutes int            `db:"duration_minutes"`
	Notes           sql.NullString `db:"notes"`
	Weather         sql.NullString `db:"weather"`
	RoadTypes       StringSlice    `db:"road_types"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
