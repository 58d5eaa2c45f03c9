package validation

import (
	"regexp"
	"strings"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"

	"github.com/oklog/ulid/v2"
)

const (
	maxNameLength    = 100
	maxTextLength    = 2000
	maxBulkTasks     = 200
	maxSubmissionLen = 200
)

var groupKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,49}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks that a path or body id is present and is a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateGroupKey validates an optional topic or category filter.
func (v *Validator) ValidateGroupKey(field, key string) domain.ValidationErrors {
	if key == "" || groupKeyPattern.MatchString(key) {
		return nil
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError(field, key)}
}

// ValidateMode accepts an empty mode or one of allowed.
func (v *Validator) ValidateMode(mode string, allowed ...string) domain.ValidationErrors {
	if mode == "" {
		return nil
	}
	for _, a := range allowed {
		if mode == a {
			return nil
		}
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError("mode", mode)}
}

// ValidateKind accepts an empty kind or a known assessment kind.
func (v *Validator) ValidateKind(kind string) domain.ValidationErrors {
	if kind == "" || domain.AssessmentKind(kind).Valid() {
		return nil
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError("kind", kind)}
}

// ValidateSubmitQuizRequest validates a quiz submission
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	errors := v.ValidateID("learner_id", req.LearnerID)
	errors = append(errors, v.ValidateMode(req.Mode, domain.QuizModePractice, domain.QuizModeTest)...)
	errors = append(errors, validateTimeTaken(req.TimeTakenSeconds)...)

	if len(req.Responses) == 0 {
		errors = append(errors, domain.NewMissingFieldError("responses"))
	} else if len(req.Responses) > maxSubmissionLen {
		errors = append(errors, domain.NewOutOfRangeError("responses", len(req.Responses), 1, maxSubmissionLen))
	}
	for _, r := range req.Responses {
		errors = append(errors, v.ValidateID("item_id", r.ItemID)...)
		errors = append(errors, validateLetter(r.Selected)...)
	}
	return errors
}

// ValidateSubmitRoadSignTestRequest validates a road-sign submission. An empty
// response list is allowed: every presented sign then counts as unanswered.
func (v *Validator) ValidateSubmitRoadSignTestRequest(req *dto.SubmitRoadSignTestRequest) domain.ValidationErrors {
	errors := v.ValidateID("test_id", req.TestID)
	errors = append(errors, v.ValidateID("learner_id", req.LearnerID)...)
	errors = append(errors, validateTimeTaken(req.TimeTakenSeconds)...)

	if len(req.Responses) > maxSubmissionLen {
		errors = append(errors, domain.NewOutOfRangeError("responses", len(req.Responses), 0, maxSubmissionLen))
	}
	for _, r := range req.Responses {
		errors = append(errors, v.ValidateID("item_id", r.ItemID)...)
		errors = append(errors, validateLetter(r.Selected)...)
		if r.ElapsedSeconds < 0 {
			errors = append(errors, domain.NewOutOfRangeError("elapsed_seconds", r.ElapsedSeconds, 0, 86400))
		}
	}
	return errors
}

// ValidateSubmitDrivingTestRequest validates an evaluator's submission. Point
// ranges per criterion are checked by the scorer against the rubric.
func (v *Validator) ValidateSubmitDrivingTestRequest(req *dto.SubmitDrivingTestRequest) domain.ValidationErrors {
	errors := v.ValidateID("learner_id", req.LearnerID)
	errors = append(errors, validateTimeTaken(req.TimeTakenSeconds)...)

	if len(req.EvaluatorName) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("evaluator_name", len(req.EvaluatorName), 0, maxNameLength))
	}
	if len(req.Notes) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("notes", len(req.Notes), 0, maxTextLength))
	}
	if req.AutomaticFail && len(req.AutomaticFailReasons) == 0 {
		errors = append(errors, domain.NewMissingFieldError("automatic_fail_reasons"))
	}

	if len(req.Evaluations) == 0 {
		errors = append(errors, domain.NewMissingFieldError("evaluations"))
	}
	for _, e := range req.Evaluations {
		errors = append(errors, v.ValidateID("criterion_id", e.CriterionID)...)
		if e.PointsDeducted < 0 {
			errors = append(errors, domain.NewInvalidFormatError("points_deducted", e.PointsDeducted))
		}
	}
	return errors
}

// ValidateCreateLearnerRequest validates learner registration
func (v *Validator) ValidateCreateLearnerRequest(req *dto.CreateLearnerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(name), 1, maxNameLength))
	}
	errors = append(errors, validateDate("birth_date", req.BirthDate)...)
	errors = append(errors, validateDate("start_date", req.StartDate)...)
	return errors
}

// ValidateUpdateLearnerRequest validates a partial learner update
func (v *Validator) ValidateUpdateLearnerRequest(req *dto.UpdateLearnerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errors = append(errors, domain.NewMissingFieldError("name"))
		} else if len(name) > maxNameLength {
			errors = append(errors, domain.NewOutOfRangeError("name", len(name), 1, maxNameLength))
		}
	}
	if req.BirthDate != nil {
		errors = append(errors, validateDate("birth_date", *req.BirthDate)...)
	}
	if req.StartDate != nil {
		errors = append(errors, validateDate("start_date", *req.StartDate)...)
	}
	return errors
}

// ValidateCreateDrivingLogRequest validates a new driving log
func (v *Validator) ValidateCreateDrivingLogRequest(req *dto.CreateDrivingLogRequest) domain.ValidationErrors {
	errors := v.ValidateID("learner_id", req.LearnerID)
	errors = append(errors, validateDate("date", req.Date)...)
	errors = append(errors, validateDuration(req.DurationMinutes)...)
	errors = append(errors, validateLogDetails(req.Notes, req.Weather, req.RoadTypes)...)
	return errors
}

// ValidateUpdateDrivingLogRequest validates a partial driving log update
func (v *Validator) ValidateUpdateDrivingLogRequest(req *dto.UpdateDrivingLogRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Date != nil {
		errors = append(errors, validateDate("date", *req.Date)...)
	}
	if req.DurationMinutes != nil {
		errors = append(errors, validateDuration(*req.DurationMinutes)...)
	}
	var notes, weather string
	if req.Notes != nil {
		notes = *req.Notes
	}
	if req.Weather != nil {
		weather = *req.Weather
	}
	errors = append(errors, validateLogDetails(notes, weather, req.RoadTypes)...)
	return errors
}

// ValidateTaskProgressRequest validates a single task update
func (v *Validator) ValidateTaskProgressRequest(req *dto.UpdateTaskProgressRequest) domain.ValidationErrors {
	errors := validateStatus(req.Status)
	if len(req.Notes) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("notes", len(req.Notes), 0, maxTextLength))
	}
	if len(req.Feedback) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("feedback", len(req.Feedback), 0, maxTextLength))
	}
	return errors
}

// ValidateBulkTaskProgressRequest validates a bulk task update
func (v *Validator) ValidateBulkTaskProgressRequest(req *dto.BulkTaskProgressRequest) domain.ValidationErrors {
	errors := validateStatus(req.Status)
	if len(req.TaskIDs) == 0 {
		errors = append(errors, domain.NewMissingFieldError("task_ids"))
	} else if len(req.TaskIDs) > maxBulkTasks {
		errors = append(errors, domain.NewOutOfRangeError("task_ids", len(req.TaskIDs), 1, maxBulkTasks))
	}
	for _, id := range req.TaskIDs {
		errors = append(errors, v.ValidateID("task_ids", id)...)
	}
	return errors
}

// Helper functions for validation

func validateLetter(selected *string) domain.ValidationErrors {
	if selected == nil {
		return nil
	}
	if _, ok := domain.LetterIndex(*selected); !ok {
		return domain.ValidationErrors{domain.NewInvalidFormatError("selected", *selected)}
	}
	return nil
}

func validateTimeTaken(seconds int) domain.ValidationErrors {
	if seconds < 0 {
		return domain.ValidationErrors{domain.NewOutOfRangeError("time_taken_seconds", seconds, 0, 86400)}
	}
	return nil
}

func validateStatus(status string) domain.ValidationErrors {
	if status == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("status")}
	}
	if !domain.TaskStatus(status).Valid() {
		return domain.ValidationErrors{domain.NewInvalidFormatError("status", status)}
	}
	return nil
}

func validateDate(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if _, err := time.Parse(dto.DateLayout, value); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value)}
	}
	return nil
}

func validateDuration(minutes int) domain.ValidationErrors {
	if minutes < 1 || minutes > domain.MaxDrivingLogMinutes {
		return domain.ValidationErrors{domain.NewOutOfRangeError("duration_minutes", minutes, 1, domain.MaxDrivingLogMinutes)}
	}
	return nil
}

func validateLogDetails(notes, weather string, roads []string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(notes) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("notes", len(notes), 0, maxTextLength))
	}
	if !domain.ValidWeather(weather) {
		errors = append(errors, domain.NewInvalidFormatError("weather", weather))
	}
	for _, r := range roads {
		if !domain.ValidRoadType(strings.TrimSpace(r)) {
			errors = append(errors, domain.NewInvalidFormatError("road_types", r))
		}
	}
	return errors
}

// isValidULID checks if the string is a valid ULID
func isValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
