package handler

import (
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"
	"learn2drive/internal/service"
	"learn2drive/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LearnerHandler struct {
	service   service.LearnerService
	validator *validation.Validator
}

func NewLearnerHandler(service service.LearnerService) *LearnerHandler {
	return &LearnerHandler{service: service, validator: validation.NewValidator()}
}

// CreateLearner registers a learner and creates their training checklist.
// @Summary Create learner
// @Description Registers a learner; the skill checklist is created from the phase template
// @Tags learners
// @Accept json
// @Produce json
// @Param request body dto.CreateLearnerRequest true "Learner details"
// @Success 201 {object} dto.LearnerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /learners [post]
func (h *LearnerHandler) CreateLearner(c *fiber.Ctx) error {
	var req dto.CreateLearnerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCreateLearnerRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateLearner(c.Context(), &req)
	if err != nil {
		return err
	}
	logger.Get().Info("Learner registered", zap.String("learner_id", resp.ID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetLearner returns one learner with checklist progress.
// @Summary Get learner
// @Tags learners
// @Produce json
// @Param id path string true "Learner ID"
// @Success 200 {object} dto.LearnerResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /learners/{id} [get]
func (h *LearnerHandler) GetLearner(c *fiber.Ctx) error {
	resp, err := h.service.GetLearner(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListLearners returns every learner without checklists.
// @Summary List learners
// @Tags learners
// @Produce json
// @Success 200 {object} dto.LearnerListResponse
// @Router /learners [get]
func (h *LearnerHandler) ListLearners(c *fiber.Ctx) error {
	resp, err := h.service.ListLearners(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateLearner changes a learner's name or dates.
// @Summary Update learner
// @Description Fields left out of the body keep their value
// @Tags learners
// @Accept json
// @Produce json
// @Param id path string true "Learner ID"
// @Param request body dto.UpdateLearnerRequest true "Changed fields"
// @Success 200 {object} dto.LearnerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /learners/{id} [put]
func (h *LearnerHandler) UpdateLearner(c *fiber.Ctx) error {
	var req dto.UpdateLearnerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateUpdateLearnerRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateLearner(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteLearner removes a learner together with their checklist, attempts and driving logs.
// @Summary Delete learner
// @Tags learners
// @Param id path string true "Learner ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /learners/{id} [delete]
func (h *LearnerHandler) DeleteLearner(c *fiber.Ctx) error {
	if err := h.service.DeleteLearner(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
