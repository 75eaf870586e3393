package routes

import (
	"github.com/gofiber/fiber/v2"

	recordsController "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/controller"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/records/service"
)

func RecordRoutes(router fiber.Router, store service.RecordStore) {
	controller := recordsController.NewRecordsController(store)

	router.Get("/records", controller.GetRecords)
	router.Get("/records/:id", controller.GetRecord)
}
