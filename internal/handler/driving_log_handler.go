package handler

import (
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"
	"learn2drive/internal/middleware"
	"learn2drive/internal/service"
	"learn2drive/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DrivingLogHandler struct {
	service   service.DrivingLogService
	validator *validation.Validator
}

func NewDrivingLogHandler(service service.DrivingLogService) *DrivingLogHandler {
	return &DrivingLogHandler{service: service, validator: validation.NewValidator()}
}

// CreateLog records a supervised practice session.
// @Summary Create driving log
// @Tags driving-logs
// @Accept json
// @Produce json
// @Param request body dto.CreateDrivingLogRequest true "Session details"
// @Success 201 {object} dto.DrivingLogResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /driving-logs [post]
func (h *DrivingLogHandler) CreateLog(c *fiber.Ctx) error {
	var req dto.CreateDrivingLogRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCreateDrivingLogRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateLog(c.Context(), &req)
	if err != nil {
		return err
	}
	logger.Get().Debug("Driving log stored", zap.String("log_id", resp.ID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListLogs returns logs newest first with their total duration.
// @Summary List driving logs
// @Tags driving-logs
// @Produce json
// @Param learner_id query string false "Only this learner's logs"
// @Success 200 {object} dto.DrivingLogListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /driving-logs [get]
func (h *DrivingLogHandler) ListLogs(c *fiber.Ctx) error {
	learnerID, _ := c.Locals(middleware.LocalLearner).(string)
	resp, err := h.service.ListLogs(c.Context(), learnerID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetLog returns one driving log.
// @Summary Get driving log
// @Tags driving-logs
// @Produce json
// @Param id path string true "Log ID"
// @Success 200 {object} dto.DrivingLogResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /driving-logs/{id} [get]
func (h *DrivingLogHandler) GetLog(c *fiber.Ctx) error {
	resp, err := h.service.GetLog(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateLog changes a driving log.
// @Summary Update driving log
// @Description Fields left out of the body keep their value; road_types replaces the list when present
// @Tags driving-logs
// @Accept json
// @Produce json
// @Param id path string true "Log ID"
// @Param request body dto.UpdateDrivingLogRequest true "Changed fields"
// @Success 200 {object} dto.DrivingLogResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /driving-logs/{id} [put]
func (h *DrivingLogHandler) UpdateLog(c *fiber.Ctx) error {
	var req dto.UpdateDrivingLogRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateUpdateDrivingLogRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateLog(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteLog removes a driving log.
// @Summary Delete driving log
// @Tags driving-logs
// @Param id path string true "Log ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /driving-logs/{id} [delete]
func (h *DrivingLogHandler) DeleteLog(c *fiber.Ctx) error {
	if err := h.service.DeleteLog(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
