package dto

import "time"

// GroupResponse is a quiz topic, road-sign category or rubric category
// @Description Item group with its size
type GroupResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int    `json:"item_count"`
	MaxPoints   int    `json:"max_points,omitempty"`
}

// GroupListResponse wraps a list of groups
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ChoiceResponse is one lettered answer option
type ChoiceResponse struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuizQuestionResponse is a quiz question without its answer key
// @Description Presented quiz question
type QuizQuestionResponse struct {
	ID        string           `json:"id"`
	Topic     string           `json:"topic"`
	TopicName string           `json:"topic_name"`
	Question  string           `json:"question"`
	Choices   []ChoiceResponse `json:"choices"`
}

// QuizQuestionsResponse is the result of starting a quiz
type QuizQuestionsResponse struct {
	Topic     string                 `json:"topic,omitempty"`
	Count     int                    `json:"count"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// QuizAnswerRequest is one answered quiz question. A null selection is unanswered.
type QuizAnswerRequest struct {
	ItemID   string  `json:"item_id"`
	Selected *string `json:"selected"`
}

// SubmitQuizRequest represents a completed quiz
// @Description Request body for scoring a quiz
type SubmitQuizRequest struct {
	LearnerID        string              `json:"learner_id"`
	Mode             string              `json:"mode"`
	TimeTakenSeconds int                 `json:"time_taken_seconds"`
	Responses        []QuizAnswerRequest `json:"responses"`
}

// RoadSignQuestionResponse is a presented sign. The correct letter stays on the server.
type RoadSignQuestionResponse struct {
	ItemID       string           `json:"item_id"`
	SignName     string           `json:"sign_name"`
	Category     string           `json:"category"`
	CategoryName string           `json:"category_name"`
	Options      []ChoiceResponse `json:"options"`
}

// RoadSignTestResponse is a started road-sign test
// @Description Presented road-sign test
type RoadSignTestResponse struct {
	TestID             string                     `json:"test_id"`
	Mode               string                     `json:"mode"`
	Category           string                     `json:"category,omitempty"`
	SecondsPerQuestion int                        `json:"seconds_per_question,omitempty"`
	ExpiresAt          time.Time                  `json:"expires_at"`
	Questions          []RoadSignQuestionResponse `json:"questions"`
}

// RoadSignAnswerRequest is one answered sign. A null selection is unanswered or timed out.
type RoadSignAnswerRequest struct {
	ItemID         string  `json:"item_id"`
	Selected       *string `json:"selected"`
	ElapsedSeconds int     `json:"elapsed_seconds"`
}

// SubmitRoadSignTestRequest represents a completed road-sign test
// @Description Request body for scoring a road-sign test
type SubmitRoadSignTestRequest struct {
	TestID           string                  `json:"test_id"`
	LearnerID        string                  `json:"learner_id"`
	TimeTakenSeconds int                     `json:"time_taken_seconds"`
	Responses        []RoadSignAnswerRequest `json:"responses"`
}

type CriterionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Guide     string `json:"guide"`
	MaxPoints int    `json:"max_points"`
}

type RubricCategoryResponse struct {
	Key         string              `json:"key"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	MaxPoints   int                 `json:"max_points"`
	Criteria    []CriterionResponse `json:"criteria"`
}

// RubricResponse is the driving-test evaluation sheet
// @Description Driving-test rubric
type RubricResponse struct {
	MaxScore                int                      `json:"max_score"`
	PassScore               int                      `json:"pass_score"`
	Categories              []RubricCategoryResponse `json:"categories"`
	AutomaticFailConditions []string                 `json:"automatic_fail_conditions"`
}

// CriterionEvaluationRequest is the evaluator's deduction for one criterion
type CriterionEvaluationRequest struct {
	CriterionID    string `json:"criterion_id"`
	PointsDeducted int    `json:"points_deducted"`
	Note           string `json:"note,omitempty"`
}

// SubmitDrivingTestRequest represents a completed behind-the-wheel evaluation
// @Description Request body for scoring a driving test
type SubmitDrivingTestRequest struct {
	LearnerID            string                       `json:"learner_id"`
	EvaluatorName        string                       `json:"evaluator_name"`
	Notes                string                       `json:"notes,omitempty"`
	TimeTakenSeconds     int                          `json:"time_taken_seconds"`
	AutomaticFail        bool                         `json:"automatic_fail"`
	AutomaticFailReasons []string                     `json:"automatic_fail_reasons,omitempty"`
	Evaluations          []CriterionEvaluationRequest `json:"evaluations"`
}

// GroupScoreResponse is one row of an attempt's breakdown
type GroupScoreResponse struct {
	GroupKey   string `json:"group_key"`
	GroupName  string `json:"group_name"`
	Earned     int    `json:"earned"`
	Possible   int    `json:"possible"`
	Percentage int    `json:"percentage"`
}

// ResponseDetail is one scored response. Prompt and answer fields are filled
// when the item is still in the catalog.
type ResponseDetail struct {
	ItemID         string  `json:"item_id"`
	GroupKey       string  `json:"group_key"`
	Prompt         string  `json:"prompt,omitempty"`
	Selected       *string `json:"selected"`
	Correct        bool    `json:"correct"`
	CorrectAnswer  string  `json:"correct_answer,omitempty"`
	Explanation    string  `json:"explanation,omitempty"`
	PointsDeducted int     `json:"points_deducted,omitempty"`
	Earned         int     `json:"earned"`
	Possible       int     `json:"possible"`
	Note           string  `json:"note,omitempty"`
	ElapsedSeconds int     `json:"elapsed_seconds,omitempty"`
}

// AttemptResponse is a scored, stored attempt
// @Description Attempt result
type AttemptResponse struct {
	ID                   string               `json:"id"`
	LearnerID            string               `json:"learner_id"`
	LearnerName          string               `json:"learner_name,omitempty"`
	Kind                 string               `json:"kind"`
	Mode                 string               `json:"mode,omitempty"`
	Score                int                  `json:"score"`
	Total                int                  `json:"total"`
	Percentage           int                  `json:"percentage"`
	Passed               bool                 `json:"passed"`
	AutomaticFail        bool                 `json:"automatic_fail"`
	AutomaticFailReasons []string             `json:"automatic_fail_reasons,omitempty"`
	TimeTakenSeconds     int                  `json:"time_taken_seconds"`
	EvaluatorName        string               `json:"evaluator_name,omitempty"`
	Notes                string               `json:"notes,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	Breakdown            []GroupScoreResponse `json:"breakdown"`
	Responses            []ResponseDetail     `json:"responses,omitempty"`
}

// AttemptListResponse lists a learner's attempts, newest first
type AttemptListResponse struct {
	LearnerID string            `json:"learner_id"`
	Kind      string            `json:"kind,omitempty"`
	Attempts  []AttemptResponse `json:"attempts"`
}

// CatalogStatusResponse reports how many items each assessment kind has
type CatalogStatusResponse struct {
	Counts map[string]int `json:"counts"`
	Ready  bool           `json:"ready"`
}
