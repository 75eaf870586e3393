package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/dto"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/model"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/service"
	helper "github.com/kulsum-786/student-disengagement-prediction/internals/helpers"
)

type ChatController struct {
	Responder *service.Responder
	Sessions  *service.Sessions
}

func NewChatController(responder *service.Responder, sessions *service.Sessions) *ChatController {
	return &ChatController{Responder: responder, Sessions: sessions}
}

// POST /api/chat
func (cc *ChatController) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, ok := cc.Responder.Respond(req.Message)
	if !ok {
		// Blank input is a no-op, never an error: no turns are appended.
		return helper.Success(c, "Empty message ignored", fiber.Map{
			"session_id": sessionID,
			"reply":      nil,
			"turns":      cc.Sessions.Len(sessionID),
		})
	}

	cc.Sessions.Append(sessionID,
		model.Turn{Sender: model.SenderUser, Text: req.Message},
		model.Turn{Sender: model.SenderBot, Text: reply},
	)

	return helper.Success(c, "Reply generated successfully", fiber.Map{
		"session_id": sessionID,
		"reply":      reply,
		"turns":      cc.Sessions.Len(sessionID),
	})
}

// GET /api/chat/:session_id
func (cc *ChatController) GetTranscript(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	transcript := cc.Sessions.Transcript(sessionID)
	return helper.Success(c, "Transcript fetched successfully", fiber.Map{
		"session_id": sessionID,
		"turns":      len(transcript),
		"transcript": transcript,
	})
}

// DELETE /api/chat/:session_id
func (cc *ChatController) EndSession(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	cc.Sessions.End(sessionID)
	return helper.Success(c, "Session ended", fiber.Map{"session_id": sessionID})
}
