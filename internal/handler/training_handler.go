package handler

import (
	"learn2drive/internal/dto"
	"learn2drive/internal/service"
	"learn2drive/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TrainingHandler struct {
	service   service.TrainingService
	validator *validation.Validator
}

func NewTrainingHandler(service service.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service, validator: validation.NewValidator()}
}

// UpdateTaskProgress sets status, notes and feedback of one checklist task.
// @Summary Update task progress
// @Tags training
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskProgressRequest true "Progress"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/{id}/progress [put]
func (h *TrainingHandler) UpdateTaskProgress(c *fiber.Ctx) error {
	var req dto.UpdateTaskProgressRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateTaskProgressRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateTaskProgress(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BulkUpdateProgress sets one status on several tasks at once.
// @Summary Bulk update task progress
// @Tags training
// @Accept json
// @Produce json
// @Param request body dto.BulkTaskProgressRequest true "Tasks and status"
// @Success 200 {object} dto.BulkTaskProgressResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/progress [put]
func (h *TrainingHandler) BulkUpdateProgress(c *fiber.Ctx) error {
	var req dto.BulkTaskProgressRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateBulkTaskProgressRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.BulkUpdateProgress(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BackfillTeachingNotes fills missing teaching notes from the notes catalog.
// @Summary Backfill teaching notes
// @Tags training
// @Produce json
// @Success 200 {object} dto.BackfillResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /tasks/teaching-notes/backfill [post]
func (h *TrainingHandler) BackfillTeachingNotes(c *fiber.Ctx) error {
	resp, err := h.service.BackfillTeachingNotes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
