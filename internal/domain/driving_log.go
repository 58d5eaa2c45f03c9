package domain

import (
	"strings"
	"time"
)

// MaxDrivingLogMinutes caps a single logged session at one day.
const MaxDrivingLogMinutes = 24 * 60

// Weather conditions a session can be logged under.
const (
	WeatherClear  = "clear"
	WeatherCloudy = "cloudy"
	WeatherRain   = "rain"
	WeatherSnow   = "snow"
	WeatherFog    = "fog"
	WeatherNight  = "night"
)

// Road types a session can cover.
const (
	RoadResidential = "residential"
	RoadCity        = "city"
	RoadHighway     = "highway"
	RoadParking     = "parking"
	RoadRural       = "rural"
)

var (
	weatherConditions = map[string]bool{
		WeatherClear: true, WeatherCloudy: true, WeatherRain: true,
		WeatherSnow: true, WeatherFog: true, WeatherNight: true,
	}
	roadTypes = map[string]bool{
		RoadResidential: true, RoadCity: true, RoadHighway: true, RoadParking: true, RoadRural: true,
	}
)

// ValidWeather reports whether w is empty or a known condition.
func ValidWeather(w string) bool {
	return w == "" || weatherConditions[w]
}

// ValidRoadType reports whether r is a known road type.
func ValidRoadType(r string) bool {
	return roadTypes[r]
}

// DrivingLog is one supervised practice session.
type DrivingLog struct {
	ID              string
	LearnerID       string
	LearnerName     string
	Date            time.Time
	DurationMinutes int
	Notes           string
	Weather         string
	RoadTypes       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDrivingLog creates a new DrivingLog instance
func NewDrivingLog(learnerID string, date time.Time, minutes int) *DrivingLog {
	now := time.Now()
	return &DrivingLog{
		LearnerID:       learnerID,
		Date:            date,
		DurationMinutes: minutes,
		RoadTypes:       []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SetRoadTypes stores types trimmed, in first-seen order, without duplicates.
func (l *DrivingLog) SetRoadTypes(types []string) {
	seen := make(map[string]bool, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	l.RoadTypes = out
}

// Validate validates the driving log
func (l *DrivingLog) Validate() error {
	if l.LearnerID == "" {
		return NewValidationError("learner is required")
	}
	if l.Date.IsZero() {
		return NewValidationError("date is required")
	}
	if l.DurationMinutes <= 0 || l.DurationMinutes > MaxDrivingLogMinutes {
		return NewValidationError("duration must be between 1 and 1440 minutes")
	}
	if !ValidWeather(l.Weather) {
		return NewValidationError("unknown weather condition: " + l.Weather)
	}
	for _, r := range l.RoadTypes {
		if !ValidRoadType(r) {
			return NewValidationError("unknown road type: " + r)
		}
	}
	return nil
}

// TotalMinutes sums the duration of logs.
func TotalMinutes(logs []*DrivingLog) int {
	total := 0
	for _, l := range logs {
		total += l.DurationMinutes
	}
	return total
}
