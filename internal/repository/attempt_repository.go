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

const attemptColumns = `a.id, a.learner_id, l.name AS learner_name, a.kind, a.attempt_mode, a.score, a.total,
		a.percentage, a.passed, a.automatic_fail, a.automatic_fail_reasons, a.time_taken_seconds,
		a.evaluator_name, a.notes, a.created_at`

// AttemptDatabaseAdapter implements domain.AttemptRepository using sqlx.
// Attempts are insert-only; nothing here updates or deletes them.
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

func fromDomainAttempt(a *domain.Attempt) *models.Attempt {
	reasons := models.StringSlice(a.AutomaticFailReasons)
	if reasons == nil {
		reasons = models.StringSlice{}
	}
	return &models.Attempt{
		ID:                   a.ID,
		LearnerID:            a.LearnerID,
		Kind:                 string(a.Result.Kind),
		Mode:                 util.StringToNullString(a.Mode),
		Score:                a.Result.Score,
		Total:                a.Result.Total,
		Percentage:           a.Result.Percentage,
		Passed:               boolToInt(a.Result.Passed),
		AutomaticFail:        boolToInt(a.Result.AutomaticFail),
		AutomaticFailReasons: reasons,
		TimeTakenSeconds:     a.TimeTakenSeconds,
		EvaluatorName:        util.StringToNullString(a.EvaluatorName),
		Notes:                util.StringToNullString(a.Notes),
		CreatedAt:            a.CreatedAt,
	}
}

func toDomainAttempt(m *models.Attempt) *domain.Attempt {
	var reasons []string
	if len(m.AutomaticFailReasons) > 0 {
		reasons = m.AutomaticFailReasons
	}
	return &domain.Attempt{
		ID:                   m.ID,
		LearnerID:            m.LearnerID,
		LearnerName:          m.LearnerName.String,
		Mode:                 m.Mode.String,
		TimeTakenSeconds:     m.TimeTakenSeconds,
		EvaluatorName:        m.EvaluatorName.String,
		Notes:                m.Notes.String,
		AutomaticFailReasons: reasons,
		CreatedAt:            m.CreatedAt,
		Result: domain.AttemptResult{
			Kind:          domain.AssessmentKind(m.Kind),
			Score:         m.Score,
			Total:         m.Total,
			Percentage:    m.Percentage,
			Passed:        m.Passed != 0,
			AutomaticFail: m.AutomaticFail != 0,
		},
	}
}

func fromDomainOutcome(attemptID string, seq int, o domain.ItemOutcome) *models.AttemptResponse {
	return &models.AttemptResponse{
		ID:             util.NewULID(),
		AttemptID:      attemptID,
		Seq:            seq,
		ItemID:         o.ItemID,
		GroupKey:       o.GroupKey,
		GroupName:      util.StringToNullString(o.GroupName),
		Selected:       util.StringPtrToNullString(o.Selected),
		SelectedItemID: util.StringToNullString(o.SelectedItemID),
		Correct:        boolToInt(o.Correct),
		PointsDeducted: o.PointsDeducted,
		Earned:         o.Earned,
		Possible:       o.Possible,
		Note:           util.StringToNullString(o.Note),
		ElapsedSeconds: o.ElapsedSeconds,
	}
}

func toDomainOutcome(m *models.AttemptResponse) domain.ItemOutcome {
	return domain.ItemOutcome{
		ItemID:         m.ItemID,
		GroupKey:       m.GroupKey,
		GroupName:      m.GroupName.String,
		Selected:       util.NullStringToPtr(m.Selected),
		SelectedItemID: m.SelectedItemID.String,
		Correct:        m.Correct != 0,
		PointsDeducted: m.PointsDeducted,
		Earned:         m.Earned,
		Possible:       m.Possible,
		Note:           m.Note.String,
		ElapsedSeconds: m.ElapsedSeconds,
	}
}

func toDomainGroupScore(m *models.AttemptGroupScore) domain.GroupBreakdown {
	return domain.GroupBreakdown{
		GroupKey:   m.GroupKey,
		GroupName:  m.GroupName.String,
		Earned:     m.Earned,
		Possible:   m.Possible,
		Percentage: m.Percentage,
	}
}

// SaveAttempt implements domain.AttemptRepository. The attempt row, its responses
// and its breakdown are written in one transaction or not at all.
func (r *AttemptDatabaseAdapter) SaveAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot save nil attempt")
	}
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	m := fromDomainAttempt(attempt)

	return withTx(ctx, r.db, func(ctx context.Context, exec DBTX) error {
		insertAttempt := `INSERT INTO attempts (
			id, learner_id, kind, attempt_mode, score, total, percentage, passed, automatic_fail,
			automatic_fail_reasons, time_taken_seconds, evaluator_name, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := exec.ExecContext(ctx, exec.Rebind(insertAttempt),
			m.ID, m.LearnerID, m.Kind, m.Mode, m.Score, m.Total, m.Percentage, m.Passed, m.AutomaticFail,
			m.AutomaticFailReasons, m.TimeTakenSeconds, m.EvaluatorName, m.Notes, m.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert attempt: %w", err)
		}

		insertResponse := `INSERT INTO attempt_responses (
			id, attempt_id, seq, item_id, group_key, group_name, selected, selected_item_id,
			correct, points_deducted, earned, possible, note, elapsed_seconds
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, outcome := range attempt.Result.Outcomes {
			resp := fromDomainOutcome(m.ID, i, outcome)
			if _, err := exec.ExecContext(ctx, exec.Rebind(insertResponse),
				resp.ID, resp.AttemptID, resp.Seq, resp.ItemID, resp.GroupKey, resp.GroupName, resp.Selected,
				resp.SelectedItemID, resp.Correct, resp.PointsDeducted, resp.Earned, resp.Possible, resp.Note,
				resp.ElapsedSeconds,
			); err != nil {
				return fmt.Errorf("failed to insert response for item %s: %w", outcome.ItemID, err)
			}
		}

		insertGroup := `INSERT INTO attempt_group_scores (
			attempt_id, seq, group_key, group_name, earned, possible, percentage
		) VALUES (?, ?, ?, ?, ?, ?, ?)`
		for i, g := range attempt.Result.Breakdown {
			if _, err := exec.ExecContext(ctx, exec.Rebind(insertGroup),
				m.ID, i, g.GroupKey, util.StringToNullString(g.GroupName), g.Earned, g.Possible, g.Percentage,
			); err != nil {
				return fmt.Errorf("failed to insert breakdown for group %s: %w", g.GroupKey, err)
			}
		}
		return nil
	})
}

// GetAttempt implements domain.AttemptRepository
func (r *AttemptDatabaseAdapter) GetAttempt(ctx context.Context, id string) (*domain.Attempt, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Attempt
	query := `SELECT ` + attemptColumns + ` FROM attempts a JOIN learners l ON l.id = a.learner_id WHERE a.id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt %s: %w", id, err)
	}
	attempt := toDomainAttempt(&row)

	var responses []models.AttemptResponse
	responsesQuery := `SELECT id, attempt_id, seq, item_id, group_key, group_name, selected, selected_item_id,
		correct, points_deducted, earned, possible, note, elapsed_seconds
	FROM attempt_responses WHERE attempt_id = ? ORDER BY seq`
	if err := exec.SelectContext(ctx, &responses, exec.Rebind(responsesQuery), id); err != nil {
		return nil, fmt.Errorf("failed to get responses of attempt %s: %w", id, err)
	}
	attempt.Result.Outcomes = make([]domain.ItemOutcome, 0, len(responses))
	for i := range responses {
		attempt.Result.Outcomes = append(attempt.Result.Outcomes, toDomainOutcome(&responses[i]))
	}

	breakdowns, err := r.loadBreakdowns(ctx, exec, []string{id})
	if err != nil {
		return nil, err
	}
	attempt.Result.Breakdown = breakdowns[id]
	return attempt, nil
}

// ListAttempts implements domain.AttemptRepository. Outcomes are not loaded; the
// breakdown is.
func (r *AttemptDatabaseAdapter) ListAttempts(ctx context.Context, learnerID string, kind domain.AssessmentKind) ([]*domain.Attempt, error) {
	exec := GetExecutor(ctx, r.db)

	query := `SELECT ` + attemptColumns + ` FROM attempts a JOIN learners l ON l.id = a.learner_id WHERE a.learner_id = ?`
	args := []interface{}{learnerID}
	if kind != "" {
		query += ` AND a.kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`

	var rows []models.Attempt
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list attempts of learner %s: %w", learnerID, err)
	}

	attempts := make([]*domain.Attempt, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
		ids = append(ids, rows[i].ID)
	}
	if len(ids) == 0 {
		return attempts, nil
	}

	breakdowns, err := r.loadBreakdowns(ctx, exec, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range attempts {
		a.Result.Breakdown = breakdowns[a.ID]
	}
	return attempts, nil
}

func (r *AttemptDatabaseAdapter) loadBreakdowns(ctx context.Context, exec DBTX, attemptIDs []string) (map[string][]domain.GroupBreakdown, error) {
	query := `SELECT attempt_id, seq, group_key, group_name, earned, possible, percentage
	FROM attempt_group_scores WHERE attempt_id IN (?) ORDER BY attempt_id, seq`
	rows, err := selectIn[models.AttemptGroupScore](ctx, exec, query, attemptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt breakdowns: %w", err)
	}

	out := make(map[string][]domain.GroupBreakdown, len(attemptIDs))
	for i := range rows {
		out[rows[i].AttemptID] = append(out[rows[i].AttemptID], toDomainGroupScore(&rows[i]))
	}
	return out, nil
}
