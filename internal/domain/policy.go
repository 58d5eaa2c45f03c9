package domain

// ScoringPolicy carries the verdict rule for one assessment kind.
type ScoringPolicy struct {
	Kind AssessmentKind
	// PassPercent applies to quiz and road-sign: passed when score/total >= PassPercent/100.
	PassPercent int
	// PassScore applies to the driving test: passed when the earned points reach it.
	PassScore int
}

// AssessmentConfig holds every tunable threshold and size the selector and scorer use.
// It is passed in explicitly; nothing reads it from package state.
type AssessmentConfig struct {
	QuizPassPercent            int
	RoadSignPassPercent        int
	DrivingTestPassScore       int
	DrivingTestMaxScore        int
	DistractorCount            int
	DefaultQuizCount           int
	StandardRoadSignCount      int
	PracticeRoadSignCount      int
	MaxQuestionCount           int
	RoadSignSecondsPerQuestion int
}

// DefaultAssessmentConfig returns the standard regime: 80% to pass written tests,
// 120 of 150 points to pass the driving test, four-option road-sign questions.
func DefaultAssessmentConfig() AssessmentConfig {
	return AssessmentConfig{
		QuizPassPercent:            80,
		RoadSignPassPercent:        80,
		DrivingTestPassScore:       120,
		DrivingTestMaxScore:        150,
		DistractorCount:            3,
		DefaultQuizCount:           10,
		StandardRoadSignCount:      20,
		PracticeRoadSignCount:      10,
		MaxQuestionCount:           50,
		RoadSignSecondsPerQuestion: 15,
	}
}

// Policy returns the scoring policy for kind.
func (c AssessmentConfig) Policy(kind AssessmentKind) ScoringPolicy {
	switch kind {
	case KindQuiz:
		return ScoringPolicy{Kind: kind, PassPercent: c.QuizPassPercent}
	case KindRoadSign:
		return ScoringPolicy{Kind: kind, PassPercent: c.RoadSignPassPercent}
	default:
		return ScoringPolicy{Kind: kind, PassScore: c.DrivingTestPassScore}
	}
}

// RoadSignCount picks the default number of road-sign questions for a test mode.
func (c AssessmentConfig) RoadSignCount(mode string) int {
	if mode == RoadSignModePractice {
		return c.PracticeRoadSignCount
	}
	return c.StandardRoadSignCount
}

// Road-sign test modes. Timed mode turns expired questions into unanswered responses.
const (
	RoadSignModeAll      = "all"
	RoadSignModeTimed    = "timed"
	RoadSignModePractice = "practice"
)

// Quiz modes.
const (
	QuizModePractice = "practice"
	QuizModeTest     = "test"
)
