package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDrivingLog() *domain.DrivingLog {
	return &domain.DrivingLog{
		ID:              "log-1",
		LearnerID:       "learner-1",
		LearnerName:     "Sam Lee",
		Date:            time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Weather:         domain.WeatherClear,
		RoadTypes:       []string{domain.RoadCity},
	}
}

func TestCreateDrivingLog(t *testing.T) {
	logs := new(MockDrivingLogRepository)
	learners := new(MockLearnerRepository)
	svc := NewDrivingLogService(logs, learners)

	learners.On("GetLearner", mock.Anything, "learner-1").Return(&domain.Learner{ID: "learner-1", Name: "Sam Lee"}, nil)
	logs.On("CreateLog", mock.Anything, mock.AnythingOfType("*domain.DrivingLog")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.DrivingLog).ID = "log-1"
		}).Return(nil)

	resp, err := svc.CreateLog(context.Background(), &dto.CreateDrivingLogRequest{
		LearnerID:       "learner-1",
		Date:            "2024-07-06",
		DurationMinutes: 50,
		Weather:         "rain",
		RoadTypes:       []string{"highway", "city", "highway"},
	})
	require.NoError(t, err)
	assert.Equal(t, "log-1", resp.ID)
	assert.Equal(t, "Sam Lee", resp.LearnerName)
	assert.Equal(t, "2024-07-06", resp.Date)
	assert.Equal(t, []string{"highway", "city"}, resp.RoadTypes)
	logs.AssertExpectations(t)
}

func TestCreateDrivingLog_Rejections(t *testing.T) {
	t.Run("unknown learner", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		learners := new(MockLearnerRepository)
		svc := NewDrivingLogService(logs, learners)
		learners.On("GetLearner", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.CreateLog(context.Background(), &dto.CreateDrivingLogRequest{LearnerID: "ghost", Date: "2024-07-06", DurationMinutes: 30})
		assert.True(t, domain.HasCode(err, domain.CodeLearnerNotFound))
		logs.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := NewDrivingLogService(new(MockDrivingLogRepository), new(MockLearnerRepository))

		_, err := svc.CreateLog(context.Background(), &dto.CreateDrivingLogRequest{LearnerID: "learner-1", Date: "06/07/2024", DurationMinutes: 30})
		var fieldErrs domain.ValidationErrors
		assert.True(t, errors.As(err, &fieldErrs))
	})

	t.Run("store failure", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		learners := new(MockLearnerRepository)
		svc := NewDrivingLogService(logs, learners)
		learners.On("GetLearner", mock.Anything, "learner-1").Return(&domain.Learner{ID: "learner-1"}, nil)
		logs.On("CreateLog", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.CreateLog(context.Background(), &dto.CreateDrivingLogRequest{LearnerID: "learner-1", Date: "2024-07-06", DurationMinutes: 30})
		assert.True(t, domain.HasCode(err, domain.CodePersistenceFailure))
	})
}

func TestGetDrivingLog(t *testing.T) {
	logs := new(MockDrivingLogRepository)
	svc := NewDrivingLogService(logs, new(MockLearnerRepository))
	logs.On("GetLog", mock.Anything, "log-1").Return(sampleDrivingLog(), nil)
	logs.On("GetLog", mock.Anything, "ghost").Return(nil, nil)

	resp, err := svc.GetLog(context.Background(), "log-1")
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)

	_, err = svc.GetLog(context.Background(), "ghost")
	assert.True(t, domain.HasCode(err, domain.CodeDrivingLogNotFound))
}

func TestListDrivingLogs(t *testing.T) {
	logs := new(MockDrivingLogRepository)
	svc := NewDrivingLogService(logs, new(MockLearnerRepository))

	second := sampleDrivingLog()
	second.ID = "log-2"
	second.DurationMinutes = 90
	logs.On("ListLogs", mock.Anything, "learner-1").Return([]*domain.DrivingLog{second, sampleDrivingLog()}, nil)
	logs.On("ListLogs", mock.Anything, "").Return(nil, errors.New("timeout"))

	resp, err := svc.ListLogs(context.Background(), "learner-1")
	require.NoError(t, err)
	require.Len(t, resp.Logs, 2)
	assert.Equal(t, "log-2", resp.Logs[0].ID)
	assert.Equal(t, 135, resp.TotalMinutes)

	_, err = svc.ListLogs(context.Background(), "")
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestUpdateDrivingLog(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		svc := NewDrivingLogService(logs, new(MockLearnerRepository))
		logs.On("GetLog", mock.Anything, "log-1").Return(sampleDrivingLog(), nil)
		logs.On("UpdateLog", mock.Anything, mock.AnythingOfType("*domain.DrivingLog")).Return(true, nil)

		minutes := 75
		cleared := ""
		resp, err := svc.UpdateLog(context.Background(), "log-1", &dto.UpdateDrivingLogRequest{
			DurationMinutes: &minutes,
			Weather:         &cleared,
			RoadTypes:       []string{"rural"},
		})
		require.NoError(t, err)
		assert.Equal(t, 75, resp.DurationMinutes)
		assert.Empty(t, resp.Weather)
		assert.Equal(t, []string{"rural"}, resp.RoadTypes)
		assert.Equal(t, "2024-07-06", resp.Date)
	})

	t.Run("omitted road types are kept", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		svc := NewDrivingLogService(logs, new(MockLearnerRepository))
		logs.On("GetLog", mock.Anything, "log-1").Return(sampleDrivingLog(), nil)
		logs.On("UpdateLog", mock.Anything, mock.Anything).Return(true, nil)

		resp, err := svc.UpdateLog(context.Background(), "log-1", &dto.UpdateDrivingLogRequest{Notes: strPtr("roundabouts")})
		require.NoError(t, err)
		assert.Equal(t, "roundabouts", resp.Notes)
		assert.Equal(t, []string{"city"}, resp.RoadTypes)
	})

	t.Run("invalid result is not stored", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		svc := NewDrivingLogService(logs, new(MockLearnerRepository))
		logs.On("GetLog", mock.Anything, "log-1").Return(sampleDrivingLog(), nil)

		_, err := svc.UpdateLog(context.Background(), "log-1", &dto.UpdateDrivingLogRequest{Weather: strPtr("hail")})
		assert.True(t, domain.HasCode(err, domain.CodeValidation))
		logs.AssertNotCalled(t, "UpdateLog", mock.Anything, mock.Anything)
	})

	t.Run("unknown log", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		svc := NewDrivingLogService(logs, new(MockLearnerRepository))
		logs.On("GetLog", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.UpdateLog(context.Background(), "ghost", &dto.UpdateDrivingLogRequest{})
		assert.True(t, domain.HasCode(err, domain.CodeDrivingLogNotFound))
	})

	t.Run("removed while updating", func(t *testing.T) {
		logs := new(MockDrivingLogRepository)
		svc := NewDrivingLogService(logs, new(MockLearnerRepository))
		logs.On("GetLog", mock.Anything, "log-1").Return(sampleDrivingLog(), nil)
		logs.On("UpdateLog", mock.Anything, mock.Anything).Return(false, nil)

		_, err := svc.UpdateLog(context.Background(), "log-1", &dto.UpdateDrivingLogRequest{})
		assert.True(t, domain.HasCode(err, domain.CodeDrivingLogNotFound))
	})
}

func TestDeleteDrivingLog(t *testing.T) {
	logs := new(MockDrivingLogRepository)
	svc := NewDrivingLogService(logs, new(MockLearnerRepository))
	logs.On("DeleteLog", mock.Anything, "log-1").Return(true, nil)
	logs.On("DeleteLog", mock.Anything, "ghost").Return(false, nil)
	logs.On("DeleteLog", mock.Anything, "broken").Return(false, errors.New("locked"))

	assert.NoError(t, svc.DeleteLog(context.Background(), "log-1"))
	assert.True(t, domain.HasCode(svc.DeleteLog(context.Background(), "ghost"), domain.CodeDrivingLogNotFound))
	assert.True(t, domain.HasCode(svc.DeleteLog(context.Background(), "broken"), domain.CodePersistenceFailure))
}
