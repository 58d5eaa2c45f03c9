package middleware

import (
	"strconv"

	"learn2drive/internal/domain"
	"learn2drive/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Keys under which validated request values are stored in fiber locals.
const (
	LocalGroupKey = "validated_group_key"
	LocalCount    = "validated_count"
	LocalMode     = "validated_mode"
	LocalKind     = "validated_kind"
	LocalLearner  = "validated_learner_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSelectionParams validates the group filter named groupParam, the
// optional count and, when modes are given, the mode query parameter.
// The count is stored as *int; nil means the caller omitted it.
func (vm *ValidationMiddleware) ValidateSelectionParams(groupParam string, modes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupKey := c.Query(groupParam)
		errs := vm.validator.ValidateGroupKey(groupParam, groupKey)

		var count *int
		if countStr := c.Query("count"); countStr != "" {
			parsed, err := strconv.Atoi(countStr)
			if err != nil {
				errs = append(errs, domain.NewInvalidFormatError("count", countStr))
			}
			count = &parsed
		}

		mode := c.Query("mode")
		if len(modes) > 0 {
			errs = append(errs, vm.validator.ValidateMode(mode, modes...)...)
		}

		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalGroupKey, groupKey)
		c.Locals(LocalCount, count)
		c.Locals(LocalMode, mode)
		return c.Next()
	}
}

// ValidateIDParam rejects a path parameter that is not a ULID.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateID(param, c.Params(param)); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidateKindQuery validates the optional assessment kind filter.
func (vm *ValidationMiddleware) ValidateKindQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := c.Query("kind")
		if errs := vm.validator.ValidateKind(kind); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalKind, kind)
		return c.Next()
	}
}

// ValidateLearnerQuery validates the optional learner_id filter.
func (vm *ValidationMiddleware) ValidateLearnerQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		learnerID := c.Query("learner_id")
		if learnerID != "" {
			if errs := vm.validator.ValidateID("learner_id", learnerID); len(errs) > 0 {
				return errs
			}
		}
		c.Locals(LocalLearner, learnerID)
		return c.Next()
	}
}
