package domain

import (
	"strings"
	"time"
)

// Learner is a driver in training.
type Learner struct {
	ID        string
	Name      string
	BirthDate time.Time
	StartDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	Phases    []*TrainingPhase
}

// NewLearner creates a new Learner instance
func NewLearner(name string, birthDate, startDate time.Time) *Learner {
	now := time.Now()
	return &Learner{
		Name:      strings.TrimSpace(name),
		BirthDate: birthDate,
		StartDate: startDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the learner
func (l *Learner) Validate() error {
	if l.Name == "" {
		return NewValidationError("name is required")
	}
	if l.BirthDate.IsZero() {
		return NewValidationError("birth date is required")
	}
	if l.StartDate.IsZero() {
		return NewValidationError("start date is required")
	}
	return nil
}

// ApplyUpdate changes the fields that are set and stamps UpdatedAt.
func (l *Learner) ApplyUpdate(name *string, birthDate, startDate *time.Time, now time.Time) {
	if name != nil {
		l.Name = strings.TrimSpace(*name)
	}
	if birthDate != nil {
		l.BirthDate = *birthDate
	}
	if startDate != nil {
		l.StartDate = *startDate
	}
	l.UpdatedAt = now
}

// TaskStatus is the progress state of a checklist task.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// TrainingPhase groups checklist tasks for one learner.
type TrainingPhase struct {
	ID          string
	LearnerID   string
	Title       string
	Description string
	OrderIndex  int
	Tasks       []*TrainingTask
}

// CompletedCount returns how many tasks of the phase are completed.
func (p *TrainingPhase) CompletedCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Status == TaskCompleted {
			n++
		}
	}
	return n
}

// TrainingTask is one skill on the checklist together with its progress.
type TrainingTask struct {
	ID            string
	PhaseID       string
	Title         string
	Description   string
	TeachingNotes string
	OrderIndex    int
	Status        TaskStatus
	Notes         string
	Feedback      string
	CompletedAt   *time.Time
	UpdatedAt     time.Time
}

// ApplyProgress sets status, notes and feedback. The completion time is stamped
// when the task becomes completed and cleared for any other status.
func (t *TrainingTask) ApplyProgress(status TaskStatus, notes, feedback string, now time.Time) {
	t.Status = status
	t.Notes = notes
	t.Feedback = feedback
	t.UpdatedAt = now
	if status == TaskCompleted {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// PhaseTemplate is the checklist every new learner starts with.
type PhaseTemplate struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Tasks       []TaskTemplate `yaml:"tasks"`
}

// TaskTemplate is one task inside a PhaseTemplate.
type TaskTemplate struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// BackfillReport summarises a teaching-notes backfill run.
type BackfillReport struct {
	Updated int
	Skipped int
	Total   int
}
