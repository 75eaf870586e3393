package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	chatRoutes "github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/route"
	predictionRoutes "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/route"
	predictionService "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/service"
	recordRoutes "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/route"
	recordsService "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/service"
	reportRoutes "github.com/kulsum-786/student-disengagement-prediction/internals/features/report/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, engine *predictionService.Engine, store recordsService.RecordStore) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	log.Println("[INFO] Setting up PredictionRoutes...")
	predictionRoutes.PredictionRoutes(api, engine, store)

	log.Println("[INFO] Setting up RecordRoutes...")
	recordRoutes.RecordRoutes(api, store)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoutes.ReportRoutes(api, engine)

	log.Println("[INFO] Setting up ChatRoutes...")
	chatRoutes.ChatRoutes(api)
}
