package handler

import (
	"learn2drive/internal/domain"
	"learn2drive/internal/dto"
	"learn2drive/internal/logger"
	"learn2drive/internal/middleware"
	"learn2drive/internal/service"
	"learn2drive/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssessmentHandler handles quiz, road-sign and driving-test HTTP requests
type AssessmentHandler struct {
	service   service.AssessmentService
	validator *validation.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// selectionParams reads the values stored by ValidationMiddleware.ValidateSelectionParams.
func selectionParams(c *fiber.Ctx) (groupKey string, count *int, mode string) {
	groupKey, _ = c.Locals(middleware.LocalGroupKey).(string)
	count, _ = c.Locals(middleware.LocalCount).(*int)
	mode, _ = c.Locals(middleware.LocalMode).(string)
	return groupKey, count, mode
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Warn("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	return nil
}

// ListQuizTopics godoc
// @Summary List quiz topics
// @Description Returns every quiz topic with its question count
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.GroupListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/topics [get]
func (h *AssessmentHandler) ListQuizTopics(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizTopics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuizQuestions godoc
// @Summary Start a quiz
// @Description Returns shuffled quiz questions without their answer keys
// @Tags quiz
// @Produce json
// @Param topic query string false "Topic key"
// @Param count query int false "Number of questions"
// @Success 200 {object} dto.QuizQuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/questions [get]
func (h *AssessmentHandler) GetQuizQuestions(c *fiber.Ctx) error {
	topic, count, _ := selectionParams(c)
	resp, err := h.service.StartQuiz(c.Context(), topic, count)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitQuiz godoc
// @Summary Submit a quiz
// @Description Scores the answers and stores the attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Quiz answers"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Learner not found"
// @Failure 422 {object} middleware.ErrorResponse "Unknown question"
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/attempts [post]
func (h *AssessmentHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListRoadSignCategories godoc
// @Summary List road-sign categories
// @Description Returns every road-sign category with its sign count
// @Tags road-signs
// @Produce json
// @Success 200 {object} dto.GroupListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /road-signs/categories [get]
func (h *AssessmentHandler) ListRoadSignCategories(c *fiber.Ctx) error {
	resp, err := h.service.ListRoadSignCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StartRoadSignTest godoc
// @Summary Start a road-sign test
// @Description Presents signs with lettered meanings. The answer mapping stays on the server under test_id.
// @Tags road-signs
// @Produce json
// @Param category query string false "Category key"
// @Param count query int false "Number of signs"
// @Param mode query string false "all, timed or practice"
// @Success 200 {object} dto.RoadSignTestResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /road-signs/test [get]
func (h *AssessmentHandler) StartRoadSignTest(c *fiber.Ctx) error {
	category, count, mode := selectionParams(c)
	resp, err := h.service.StartRoadSignTest(c.Context(), category, count, mode)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitRoadSignTest godoc
// @Summary Submit a road-sign test
// @Description Resolves the chosen letters against the presented test, scores and stores the attempt
// @Tags road-signs
// @Accept json
// @Produce json
// @Param request body dto.SubmitRoadSignTestRequest true "Road-sign answers"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Test session or learner not found"
// @Failure 422 {object} middleware.ErrorResponse "Sign was not part of the test"
// @Failure 503 {object} middleware.ErrorResponse
// @Router /road-signs/attempts [post]
func (h *AssessmentHandler) SubmitRoadSignTest(c *fiber.Ctx) error {
	var req dto.SubmitRoadSignTestRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitRoadSignTestRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitRoadSignTest(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetDrivingTestRubric godoc
// @Summary Get the driving-test rubric
// @Description Returns categories, criteria with max points, pass score and automatic-fail conditions
// @Tags driving-test
// @Produce json
// @Success 200 {object} dto.RubricResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /driving-test/rubric [get]
func (h *AssessmentHandler) GetDrivingTestRubric(c *fiber.Ctx) error {
	resp, err := h.service.GetDrivingTestRubric(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitDrivingTest godoc
// @Summary Submit a driving-test evaluation
// @Description Scores one deduction per criterion; an automatic fail forces a failed verdict
// @Tags driving-test
// @Accept json
// @Produce json
// @Param request body dto.SubmitDrivingTestRequest true "Evaluation"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Learner not found"
// @Failure 422 {object} middleware.ErrorResponse "Unknown criterion"
// @Failure 503 {object} middleware.ErrorResponse
// @Router /driving-test/attempts [post]
func (h *AssessmentHandler) SubmitDrivingTest(c *fiber.Ctx) error {
	var req dto.SubmitDrivingTestRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitDrivingTestRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitDrivingTest(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetAttempt godoc
// @Summary Get an attempt
// @Description Returns a stored attempt with per-item results
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /attempts/{id} [get]
func (h *AssessmentHandler) GetAttempt(c *fiber.Ctx) error {
	resp, err := h.service.GetAttempt(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListLearnerAttempts godoc
// @Summary List a learner's attempts
// @Description Returns the learner's attempts newest first, optionally for one assessment kind
// @Tags attempts
// @Produce json
// @Param id path string true "Learner ID"
// @Param kind query string false "quiz, road_sign or driving_test"
// @Success 200 {object} dto.AttemptListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /learners/{id}/attempts [get]
func (h *AssessmentHandler) ListLearnerAttempts(c *fiber.Ctx) error {
	kind, _ := c.Locals(middleware.LocalKind).(string)
	resp, err := h.service.ListAttempts(c.Context(), c.Params("id"), kind)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CatalogStatus godoc
// @Summary Catalog status
// @Description Reports how many items of each assessment kind are loaded
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogStatusResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /catalog/status [get]
func (h *AssessmentHandler) CatalogStatus(c *fiber.Ctx) error {
	resp, err := h.service.CatalogStatus(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
