package domain

import "time"

// AssessmentKind identifies which of the three scored assessments an item or attempt belongs to.
type AssessmentKind string

const (
	KindQuiz        AssessmentKind = "quiz"
	KindRoadSign    AssessmentKind = "road_sign"
	KindDrivingTest AssessmentKind = "driving_test"
)

// Valid reports whether k is one of the known kinds.
func (k AssessmentKind) Valid() bool {
	switch k {
	case KindQuiz, KindRoadSign, KindDrivingTest:
		return true
	}
	return false
}

// AssessmentItem is a single scorable unit: a quiz question, a road sign or a
// driving-test criterion. Items are created by seeding and never change afterwards.
type AssessmentItem struct {
	ID         string
	Kind       AssessmentKind
	GroupKey   string // topic (quiz) or category id
	GroupName  string
	Text       string   // question, sign name or criterion name
	Detail     string   // explanation, sign meaning or evaluation guide
	Choices    []string // quiz options, labelled A, B, C, D in order
	CorrectKey string   // quiz only
	MaxPoints  int      // driving-test only; quiz and road-sign items are worth one point
	OrderIndex int
	CreatedAt  time.Time
}

// PointValue returns the points an item is worth.
func (i *AssessmentItem) PointValue() int {
	if i.Kind == KindDrivingTest {
		return i.MaxPoints
	}
	return 1
}

// Validate validates the item
func (i *AssessmentItem) Validate() error {
	if i.ID == "" {
		return NewValidationError("item id is required")
	}
	if !i.Kind.Valid() {
		return NewValidationError("unknown assessment kind: " + string(i.Kind))
	}
	if i.GroupKey == "" {
		return NewValidationError("group key is required")
	}
	switch i.Kind {
	case KindQuiz:
		if len(i.Choices) < 2 {
			return NewValidationError("quiz items need at least two choices")
		}
		idx, ok := LetterIndex(i.CorrectKey)
		if !ok || idx >= len(i.Choices) {
			return NewValidationError("quiz correct key must name one of the choices")
		}
	case KindDrivingTest:
		if i.MaxPoints <= 0 {
			return NewValidationError("driving-test criteria need positive max points")
		}
	}
	return nil
}

// ItemGroup is a topic or category items are filtered and broken down by.
type ItemGroup struct {
	Key         string
	Kind        AssessmentKind
	Name        string
	Description string
	OrderIndex  int
	ItemCount   int
	MaxPoints   int
}

// AnswerOption is one labelled multiple-choice option of a presented road-sign question.
type AnswerOption struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
	ItemID string `json:"item_id"`
}

// PresentedQuestion is a selected item as shown to the learner for one attempt.
type PresentedQuestion struct {
	Item          AssessmentItem `json:"item"`
	Options       []AnswerOption `json:"options,omitempty"`
	CorrectLetter string         `json:"correct_letter,omitempty"`
}

// ResolveLetter returns the id of the item behind the option labelled letter.
func (q *PresentedQuestion) ResolveLetter(letter string) (string, bool) {
	for _, opt := range q.Options {
		if opt.Letter == letter {
			return opt.ItemID, true
		}
	}
	return "", false
}

// Response is one submitted answer.
type Response struct {
	ItemID string
	// Selected is the chosen letter; nil means unanswered or timed out.
	Selected *string
	// SelectedItemID is the item behind the selected road-sign option, resolved server-side.
	SelectedItemID string
	PointsDeducted int
	Note           string
	ElapsedSeconds int
}

// Submission is everything the scoring engine needs from the learner or evaluator.
type Submission struct {
	Responses     []Response
	AutomaticFail bool
}

// ItemOutcome is the scored form of one response.
type ItemOutcome struct {
	ItemID         string
	GroupKey       string
	GroupName      string
	Selected       *string
	SelectedItemID string
	Correct        bool
	PointsDeducted int
	Earned         int
	Possible       int
	Note           string
	ElapsedSeconds int
}

// GroupBreakdown sums outcomes for one topic or category.
type GroupBreakdown struct {
	GroupKey   string
	GroupName  string
	Earned     int
	Possible   int
	Percentage int
}

// AttemptResult is the immutable output of the scoring engine.
type AttemptResult struct {
	Kind          AssessmentKind
	Score         int
	Total         int
	Percentage    int
	Passed        bool
	AutomaticFail bool
	Outcomes      []ItemOutcome
	Breakdown     []GroupBreakdown
}

// Attempt is a persisted, scored submission.
type Attempt struct {
	ID                   string
	LearnerID            string
	LearnerName          string
	Mode                 string
	TimeTakenSeconds     int
	EvaluatorName        string
	Notes                string
	AutomaticFailReasons []string
	Result               AttemptResult
	CreatedAt            time.Time
}

// LetterFor returns the option letter for a zero-based position (0 -> "A").
func LetterFor(index int) string {
	return string(rune('A' + index))
}

// LetterIndex parses an option letter back into its zero-based position.
func LetterIndex(letter string) (int, bool) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return 0, false
	}
	return int(letter[0] - 'A'), true
}
