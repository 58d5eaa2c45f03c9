package dto

import "time"

// CreateDrivingLogRequest records one practice session
// @Description Request body for logging a supervised drive
type CreateDrivingLogRequest struct {
	LearnerID       string   `json:"learner_id"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Notes           string   `json:"notes"`
	Weather         string   `json:"weather"`
	RoadTypes       []string `json:"road_types"`
}

// UpdateDrivingLogRequest changes a log. Omitted fields keep their value.
type UpdateDrivingLogRequest struct {
	Date            *string  `json:"date"`
	DurationMinutes *int     `json:"duration_minutes"`
	Notes           *string  `json:"notes"`
	Weather         *string  `json:"weather"`
	RoadTypes       []string `json:"road_types"`
}

// DrivingLogResponse is one logged session
// @Description Driving log entry
type DrivingLogResponse struct {
	ID              string    `json:"id"`
	LearnerID       string    `json:"learner_id"`
	LearnerName     string    `json:"learner_name,omitempty"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	Weather         string    `json:"weather,omitempty"`
	RoadTypes       []string  `json:"road_types"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DrivingLogListResponse struct {
	Logs         []DrivingLogResponse `json:"logs"`
	TotalMinutes int                  `json:"total_minutes"`
}
