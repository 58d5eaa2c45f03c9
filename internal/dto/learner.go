package dto

import "time"

// DateLayout is the format of birth and start dates in requests and responses.
const DateLayout = "2006-01-02"

// CreateLearnerRequest represents a new learner
// @Description Request body for registering a learner
type CreateLearnerRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	StartDate string `json:"start_date"`
}

// UpdateLearnerRequest changes a learner. Omitted fields keep their value.
type UpdateLearnerRequest struct {
	Name      *string `json:"name"`
	BirthDate *string `json:"birth_date"`
	StartDate *string `json:"start_date"`
}

type TaskResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	TeachingNotes string     `json:"teaching_notes,omitempty"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	Feedback      string     `json:"feedback,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PhaseResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Completed   int            `json:"completed"`
	Total       int            `json:"total"`
	Tasks       []TaskResponse `json:"tasks"`
}

// LearnerResponse is a learner, with the checklist when it was loaded
// @Description Learner information
type LearnerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	BirthDate      string          `json:"birth_date"`
	StartDate      string          `json:"start_date"`
	CreatedAt      time.Time       `json:"created_at"`
	CompletedTasks int             `json:"completed_tasks"`
	TotalTasks     int             `json:"total_tasks"`
	Phases         []PhaseResponse `json:"phases,omitempty"`
}

type LearnerListResponse struct {
	Learners []LearnerResponse `json:"learners"`
}

// UpdateTaskProgressRequest sets the progress of one task
type UpdateTaskProgressRequest struct {
	Status   string `json:"status"`
	Notes    string `json:"notes"`
	Feedback string `json:"feedback"`
}

// BulkTaskProgressRequest moves several tasks to one status
type BulkTaskProgressRequest struct {
	TaskIDs []string `json:"task_ids"`
	Status  string   `json:"status"`
}

type BulkTaskProgressResponse struct {
	Updated int            `json:"updated"`
	Tasks   []TaskResponse `json:"tasks"`
}

// BackfillResponse reports a teaching-notes backfill run
type BackfillResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
