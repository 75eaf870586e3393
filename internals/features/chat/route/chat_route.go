package routes

import (
	"github.com/gofiber/fiber/v2"

	chatController "github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/controller"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/service"
)

func ChatRoutes(router fiber.Router) {
	controller := chatController.NewChatController(service.NewResponder(nil), service.NewSessions())

	router.Post("/chat", controller.Chat)
	router.Get("/chat/:session_id", controller.GetTranscript)
	router.Delete("/chat/:session_id", controller.EndSession)
}
