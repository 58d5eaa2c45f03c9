package service

import (
	"context"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
)

// DrivingLogService records supervised practice sessions.
type DrivingLogService interface {
	CreateLog(ctx context.Context, req *dto.CreateDrivingLogRequest) (*dto.DrivingLogResponse, error)
	GetLog(ctx context.Context, id string) (*dto.DrivingLogResponse, error)
	ListLogs(ctx context.Context, learnerID string) (*dto.DrivingLogListResponse, error)
	UpdateLog(ctx context.Context, id string, req *dto.UpdateDrivingLogRequest) (*dto.DrivingLogResponse, error)
	DeleteLog(ctx context.Context, id string) error
}

type drivingLogService struct {
	logs     domain.DrivingLogRepository
	learners domain.LearnerRepository
}

func NewDrivingLogService(logs domain.DrivingLogRepository, learners domain.LearnerRepository) DrivingLogService {
	return &drivingLogService{logs: logs, learners: learners}
}

// CreateLog implements DrivingLogService. The learner must exist.
func (s *drivingLogService) CreateLog(ctx context.Context, req *dto.CreateDrivingLogRequest) (*dto.DrivingLogResponse, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("date", req.Date)}
	}

	learner, err := s.learners.GetLearner(ctx, req.LearnerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load learner", err)
	}
	if learner == nil {
		return nil, domain.NewLearnerNotFoundError(req.LearnerID)
	}

	log := domain.NewDrivingLog(learner.ID, date, req.DurationMinutes)
	log.LearnerName = learner.Name
	log.Notes = req.Notes
	log.Weather = req.Weather
	log.SetRoadTypes(req.RoadTypes)
	if err := log.Validate(); err != nil {
		return nil, err
	}

	if err := s.logs.CreateLog(ctx, log); err != nil {
		logger.Get().Error("Failed to create driving log", zap.String("learner_id", learner.ID), zap.Error(err))
		return nil, domain.NewPersistenceError("failed to create driving log", err)
	}

	logger.Get().Info("Driving log created",
		zap.String("log_id", log.ID),
		zap.String("learner_id", learner.ID),
		zap.Int("minutes", log.DurationMinutes))
	return toDrivingLogResponse(log), nil
}

// GetLog implements DrivingLogService
func (s *drivingLogService) GetLog(ctx context.Context, id string) (*dto.DrivingLogResponse, error) {
	log, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDrivingLogResponse(log), nil
}

// ListLogs implements DrivingLogService. Logs come newest first; an empty
// learnerID lists every learner's.
func (s *drivingLogService) ListLogs(ctx context.Context, learnerID string) (*dto.DrivingLogListResponse, error) {
	logs, err := s.logs.ListLogs(ctx, learnerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list driving logs", err)
	}
	resp := &dto.DrivingLogListResponse{
		Logs:         make([]dto.DrivingLogResponse, 0, len(logs)),
		TotalMinutes: domain.TotalMinutes(logs),
	}
	for _, l := range logs {
		resp.Logs = append(resp.Logs, *toDrivingLogResponse(l))
	}
	return resp, nil
}

// UpdateLog implements DrivingLogService. Only the fields present in req change;
// a non-nil RoadTypes replaces the stored list.
func (s *drivingLogService) UpdateLog(ctx context.Context, id string, req *dto.UpdateDrivingLogRequest) (*dto.DrivingLogResponse, error) {
	date, fieldErrs := parseOptionalDate("date", req.Date)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	log, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if date != nil {
		log.Date = *date
	}
	if req.DurationMinutes != nil {
		log.DurationMinutes = *req.DurationMinutes
	}
	if req.Notes != nil {
		log.Notes = *req.Notes
	}
	if req.Weather != nil {
		log.Weather = *req.Weather
	}
	if req.RoadTypes != nil {
		log.SetRoadTypes(req.RoadTypes)
	}
	log.UpdatedAt = time.Now()
	if err := log.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.logs.UpdateLog(ctx, log)
	if err != nil {
		logger.Get().Error("Failed to update driving log", zap.String("log_id", id), zap.Error(err))
		return nil, domain.NewPersistenceError("failed to update driving log", err)
	}
	if !ok {
		return nil, domain.NewDrivingLogNotFoundError(id)
	}
	return toDrivingLogResponse(log), nil
}

// DeleteLog implements DrivingLogService
func (s *drivingLogService) DeleteLog(ctx context.Context, id string) error {
	ok, err := s.logs.DeleteLog(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to delete driving log", zap.String("log_id", id), zap.Error(err))
		return domain.NewPersistenceError("failed to delete driving log", err)
	}
	if !ok {
		return domain.NewDrivingLogNotFoundError(id)
	}
	logger.Get().Info("Driving log deleted", zap.String("log_id", id))
	return nil
}

func (s *drivingLogService) load(ctx context.Context, id string) (*domain.DrivingLog, error) {
	log, err := s.logs.GetLog(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load driving log", err)
	}
	if log == nil {
		return nil, domain.NewDrivingLogNotFoundError(id)
	}
	return log, nil
}
