package models

import (
	"database/sql"
	"time"
)

// ItemGroup maps the item_groups table.
type ItemGroup struct {
	Kind        string         `db:"kind"`
	GroupKey    string         `db:"group_key"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	OrderIndex  int            `db:"order_index"`
	// Aggregates filled by ListGroups.
	ItemCount int `db:"item_count"`
	MaxPoints int `db:"max_points"`
}

// AssessmentItem maps the assessment_items table joined with its group name.
type AssessmentItem struct {
	ID         string         `db:"id"`
	Kind       string         `db:"kind"`
	GroupKey   string         `db:"group_key"`
	GroupName  sql.NullString `db:"group_name"`
	Prompt     string         `db:"prompt"`
	Detail     sql.NullString `db:"detail"`
	Choices    StringSlice    `db:"choices"`
	CorrectKey sql.NullString `db:"correct_key"`
	MaxPoints  int            `db:"max_points"`
	OrderIndex int            `db:"order_index"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Attempt maps the attempts table.
type Attempt struct {
	ID                   string         `db:"id"`
	LearnerID            string         `db:"learner_id"`
	LearnerName          sql.NullString `db:"learner_name"`
	Kind                 string         `db:"kind"`
	Mode                 sql.NullString `db:"attempt_mode"`
	Score                int            `db:"score"`
	Total                int            `db:"total"`
	Percentage           int            `db:"percentage"`
	Passed               int            `db:"passed"`
	AutomaticFail        int            `db:"automatic_fail"`
	AutomaticFailReasons StringSlice    `db:"automatic_fail_reasons"`
	TimeTakenSeconds     int            `db:"time_taken_seconds"`
	EvaluatorName        sql.NullString `db:"evaluator_name"`
	Notes                sql.NullString `db:"notes"`
	CreatedAt            time.Time      `db:"created_at"`
}

// AttemptResponse maps the attempt_responses table.
type AttemptResponse struct {
	ID             string         `db:"id"`
	AttemptID      string         `db:"attempt_id"`
	Seq            int            `db:"seq"`
	ItemID         string         `db:"item_id"`
	GroupKey       string         `db:"group_key"`
	GroupName      sql.NullString `db:"group_name"`
	Selected       sql.NullString `db:"selected"`
	SelectedItemID sql.NullString `db:"selected_item_id"`
	Correct        int            `db:"correct"`
	PointsDeducted int            `db:"points_deducted"`
	Earned         int            `db:"earned"`
	Possible       int            `db:"possible"`
	Note           sql.NullString `db:"note"`
	ElapsedSeconds int            `db:"elapsed_seconds"`
}

// AttemptGroupScore maps the attempt_group_scores table.
type AttemptGroupScore struct {
	AttemptID  string         `db:"attempt_id"`
	Seq        int            `db:"seq"`
	GroupKey   string         `db:"group_key"`
	GroupName  sql.NullString `db:"group_name"`
	Earned     int            `db:"earned"`
	Possible   int            `db:"possible"`
	Percentage int            `db:"percentage"`
}
