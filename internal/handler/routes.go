package handler

import (
	"learn2drive/internal/domain"
	"learn2drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under api, which is normally the /api group.
func RegisterRoutes(api fiber.Router, assessment *AssessmentHandler, learners *LearnerHandler, training *TrainingHandler, logs *DrivingLogHandler) {
	vm := middleware.NewValidationMiddleware()

	quiz := api.Group("/quiz")
	quiz.Get("/topics", assessment.ListQuizTopics)
	quiz.Get("/questions", vm.ValidateSelectionParams("topic"), assessment.GetQuizQuestions)
	quiz.Post("/attempts", assessment.SubmitQuiz)

	signs := api.Group("/road-signs")
	signs.Get("/categories", assessment.ListRoadSignCategories)
	signs.Get("/test", vm.ValidateSelectionParams("category",
		domain.RoadSignModeAll, domain.RoadSignModeTimed, domain.RoadSignModePractice), assessment.StartRoadSignTest)
	signs.Post("/attempts", assessment.SubmitRoadSignTest)

	driving := api.Group("/driving-test")
	driving.Get("/rubric", assessment.GetDrivingTestRubric)
	driving.Post("/attempts", assessment.SubmitDrivingTest)

	api.Get("/attempts/:id", vm.ValidateIDParam("id"), assessment.GetAttempt)
	api.Get("/catalog/status", assessment.CatalogStatus)

	api.Post("/learners", learners.CreateLearner)
	api.Get("/learners", learners.ListLearners)
	api.Get("/learners/:id", vm.ValidateIDParam("id"), learners.GetLearner)
	api.Put("/learners/:id", vm.ValidateIDParam("id"), learners.UpdateLearner)
	api.Delete("/learners/:id", vm.ValidateIDParam("id"), learners.DeleteLearner)
	api.Get("/learners/:id/attempts", vm.ValidateIDParam("id"), vm.ValidateKindQuery(), assessment.ListLearnerAttempts)

	api.Get("/driving-logs", vm.ValidateLearnerQuery(), logs.ListLogs)
	api.Post("/driving-logs", logs.CreateLog)
	api.Get("/driving-logs/:id", vm.ValidateIDParam("id"), logs.GetLog)
	api.Put("/driving-logs/:id", vm.ValidateIDParam("id"), logs.UpdateLog)
	api.Delete("/driving-logs/:id", vm.ValidateIDParam("id"), logs.DeleteLog)

	api.Put("/tasks/progress", training.BulkUpdateProgress)
	api.Put("/tasks/:id/progress", vm.ValidateIDParam("id"), training.UpdateTaskProgress)
	api.Post("/tasks/teaching-notes/backfill", training.BackfillTeachingNotes)
}
