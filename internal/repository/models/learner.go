package models

import (
	"database/sql"
	"time"
)

// Learner maps the learners table.
type Learner struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
	StartDate time.Time `db:"start_date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TrainingPhase maps the training_phases table.
type TrainingPhase struct {
	ID          string         `db:"id"`
	LearnerID   string         `db:"learner_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	OrderIndex  int            `db:"order_index"`
}

// TrainingTask maps the training_tasks table.
type TrainingTask struct {
	ID            string         `db:"id"`
	PhaseID       string         `db:"phase_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	TeachingNotes sql.NullString `db:"teaching_notes"`
	OrderIndex    int            `db:"order_index"`
	Status        string         `db:"status"`
	Notes         sql.NullString `db:"notes"`
	Feedback      sql.NullString `db:"feedback"`
	CompletedAt   sql.NullTime   `db:"completed_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
