package routes

import (
	"github.com/gofiber/fiber/v2"

	predictionController "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/controller"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/service"
	recordsService "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/service"
)

func PredictionRoutes(router fiber.Router, engine *service.Engine, store recordsService.RecordStore) {
	controller := predictionController.NewPredictionController(engine, store)

	router.Get("/model", controller.GetModelInfo)
	router.Get("/students", controller.GetStudents)
	router.Get("/students/:id/assessment", controller.GetAssessment)
	router.Post("/predict", controller.Predict)
	router.Post("/simulate", controller.Simulate)
}
