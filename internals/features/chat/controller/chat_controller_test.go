package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/service"
)

func newTestApp() (*fiber.App, *service.Sessions) {
	app := fiber.New()
	sessions := service.NewSessions()
	cc := NewChatController(service.NewResponder(rand.New(rand.NewSource(1))), sessions)

	app.Post("/api/chat", cc.Chat)
	app.Get("/api/chat/:session_id", cc.GetTranscript)
	app.Delete("/api/chat/:session_id", cc.EndSession)
	return app, sessions
}

func postChat(t *testing.T, app *fiber.App, body string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestChatAppendsTwoTurns(t *testing.T) {
	app, sessions := newTestApp()

	data := postChat(t, app, `{"message":"please motivate me"}`)

	reply, ok := data["reply"].(string)
	require.True(t, ok)
	assert.Contains(t, service.MotivationalQuotes, reply)

	sessionID := data["session_id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, 2, sessions.Len(sessionID))
	assert.Equal(t, float64(2), data["turns"])
}

func TestChatBlankMessageLeavesTranscriptUnchanged(t *testing.T) {
	app, sessions := newTestApp()

	data := postChat(t, app, `{"session_id":"s1","message":"attendance tips?"}`)
	require.Equal(t, float64(2), data["turns"])

	data = postChat(t, app, `{"session_id":"s1","message":"   "}`)
	assert.Nil(t, data["reply"])
	assert.Equal(t, float64(2), data["turns"])
	assert.Equal(t, 2, sessions.Len("s1"))
}

func TestChatSessionContinuity(t *testing.T) {
	app, _ := newTestApp()

	data := postChat(t, app, `{"message":"how does this work"}`)
	sessionID := data["session_id"].(string)

	data = postChat(t, app, `{"session_id":"`+sessionID+`","message":"my grades"}`)
	assert.Equal(t, sessionID, data["session_id"])
	assert.Equal(t, float64(4), data["turns"])
}

func TestGetTranscript(t *testing.T) {
	app, _ := newTestApp()

	postChat(t, app, `{"session_id":"s9","message":"I was absent"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/s9", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))

	data := envelope["data"].(map[string]interface{})
	transcript := data["transcript"].([]interface{})
	require.Len(t, transcript, 2)

	first := transcript[0].(map[string]interface{})
	assert.Equal(t, "User", first["sender"])
	assert.Equal(t, "I was absent", first["text"])
}

func TestEndSession(t *testing.T) {
	app, sessions := newTestApp()

	postChat(t, app, `{"session_id":"s2","message":"study tips"}`)
	require.Equal(t, 2, sessions.Len("s2"))

	req := httptest.NewRequest(http.MethodDelete, "/api/chat/s2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, sessions.Len("s2"))
}
