package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrivingLog_Validate(t *testing.T) {
	day := time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(l *DrivingLog)
		wantErr bool
	}{
		{name: "valid", mutate: func(l *DrivingLog) {}},
		{name: "weather and roads", mutate: func(l *DrivingLog) {
			l.Weather = WeatherRain
			l.SetRoadTypes([]string{RoadHighway, RoadCity})
		}},
		{name: "missing learner", mutate: func(l *DrivingLog) { l.LearnerID = "" }, wantErr: true},
		{name: "missing date", mutate: func(l *DrivingLog) { l.Date = time.Time{} }, wantErr: true},
		{name: "zero duration", mutate: func(l *DrivingLog) { l.DurationMinutes = 0 }, wantErr: true},
		{name: "longer than a day", mutate: func(l *DrivingLog) { l.DurationMinutes = MaxDrivingLogMinutes + 1 }, wantErr: true},
		{name: "unknown weather", mutate: func(l *DrivingLog) { l.Weather = "hail" }, wantErr: true},
		{name: "unknown road type", mutate: func(l *DrivingLog) { l.SetRoadTypes([]string{"dirt"}) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewDrivingLog("learner-1", day, 45)
			tt.mutate(l)
			err := l.Validate()
			if tt.wantErr {
				assert.True(t, HasCode(err, CodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDrivingLog_SetRoadTypesDeduplicates(t *testing.T) {
	l := NewDrivingLog("learner-1", time.Now(), 30)
	l.SetRoadTypes([]string{" city", "highway", "city", ""})
	assert.Equal(t, []string{"city", "highway"}, l.RoadTypes)

	l.SetRoadTypes(nil)
	assert.NotNil(t, l.RoadTypes)
	assert.Empty(t, l.RoadTypes)
}

func TestTotalMinutes(t *testing.T) {
	assert.Zero(t, TotalMinutes(nil))
	assert.Equal(t, 135, TotalMinutes([]*DrivingLog{{DurationMinutes: 45}, {DurationMinutes: 90}}))
}
