package routes

import (
	"github.com/gofiber/fiber/v2"

	predictionService "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/service"
	reportController "github.com/kulsum-786/student-disengagement-prediction/internals/features/report/controller"
)

func ReportRoutes(router fiber.Router, engine *predictionService.Engine) {
	controller := reportController.NewReportController(engine)

	router.Get("/students/:id/report", controller.Download)
}
