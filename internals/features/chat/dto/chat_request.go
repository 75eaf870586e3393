package dto

// ChatRequest is one chat box submission. SessionID is optional; a new
// session is opened when it is empty.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
