package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kulsum-786/student-disengagement-prediction/internals/databases"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Student disengagement prediction API is running 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulated panic error!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		storeStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		// The model is in memory, so the server stays up even when the
		// record store is down; health reports the degraded state.
		if err := databases.Ping(c.UserContext()); err != nil {
			storeStatus = "Record store connection error"
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"record_store":   storeStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
		})
	})
}
