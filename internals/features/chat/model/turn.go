package model

const (
	SenderUser = "User"
	SenderBot  = "Bot"
)

// Turn is one line of a chat transcript. Transcripts live in memory per
// session and are never persisted.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
