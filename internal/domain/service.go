package domain

import "context"

// CatalogRepository is the read side of the assessment definition store, plus the
// inserts used by seeding.
type CatalogRepository interface {
	// ListItems returns the items of kind, restricted to groupKey when it is not empty.
	ListItems(ctx context.Context, kind AssessmentKind, groupKey string) ([]AssessmentItem, error)

	// GetItemsByIDs returns the items of kind among ids. Unknown ids are simply absent.
	GetItemsByIDs(ctx context.Context, kind AssessmentKind, ids []string) ([]AssessmentItem, error)

	// ListGroups returns the topics or categories of kind with item counts.
	ListGroups(ctx context.Context, kind AssessmentKind) ([]ItemGroup, error)

	// GroupExists reports whether groupKey names a group of kind.
	GroupExists(ctx context.Context, kind AssessmentKind, groupKey string) (bool, error)

	// CountItems returns how many items of kind exist.
	CountItems(ctx context.Context, kind AssessmentKind) (int, error)

	SaveGroup(ctx context.Context, group *ItemGroup) error
	SaveItem(ctx context.Context, item *AssessmentItem) error
}

// AttemptRepository persists scored attempts. Attempts are create-only.
type AttemptRepository interface {
	// SaveAttempt writes one new attempt with its responses and breakdown.
	SaveAttempt(ctx context.Context, attempt *Attempt) error

	// GetAttempt returns nil, nil when the attempt does not exist.
	GetAttempt(ctx context.Context, id string) (*Attempt, error)

	// ListAttempts returns a learner's attempts of kind, newest first. An empty kind lists all kinds.
	ListAttempts(ctx context.Context, learnerID string, kind AssessmentKind) ([]*Attempt, error)
}

// LearnerRepository persists learners.
type LearnerRepository interface {
	CreateLearner(ctx context.Context, learner *Learner) error

	// GetLearner returns nil, nil when the learner does not exist.
	GetLearner(ctx context.Context, id string) (*Learner, error)

	ListLearners(ctx context.Context) ([]*Learner, error)

	// UpdateLearner writes name and dates. It returns false when the learner does not exist.
	UpdateLearner(ctx context.Context, learner *Learner) (bool, error)

	// DeleteLearner removes a learner with their checklist, attempts and driving logs.
	// It returns false when the learner does not exist.
	DeleteLearner(ctx context.Context, id string) (bool, error)
}

// DrivingLogRepository persists supervised practice sessions.
type DrivingLogRepository interface {
	CreateLog(ctx context.Context, log *DrivingLog) error

	// GetLog returns nil, nil when the log does not exist.
	GetLog(ctx context.Context, id string) (*DrivingLog, error)

	// ListLogs returns logs newest first, restricted to learnerID when it is not empty.
	ListLogs(ctx context.Context, learnerID string) ([]*DrivingLog, error)

	// UpdateLog returns false when the log does not exist.
	UpdateLog(ctx context.Context, log *DrivingLog) (bool, error)

	// DeleteLog returns false when the log does not exist.
	DeleteLog(ctx context.Context, id string) (bool, error)
}

// TrainingRepository persists the skill checklist.
type TrainingRepository interface {
	SavePhase(ctx context.Context, phase *TrainingPhase) error
	ListPhases(ctx context.Context, learnerID string) ([]*TrainingPhase, error)

	// GetTask returns nil, nil when the task does not exist.
	GetTask(ctx context.Context, id string) (*TrainingTask, error)
	UpdateTaskProgress(ctx context.Context, task *TrainingTask) error
	ListAllTasks(ctx context.Context) ([]*TrainingTask, error)
	SetTeachingNotes(ctx context.Context, taskID, notes string) error
}

// TransactionManager runs fn inside one database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
