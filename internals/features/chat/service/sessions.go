package service

import (
	"sync"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/model"
)

// Sessions holds the per-session chat transcripts. Transcripts are ordered,
// in-memory only, and dropped when the session ends. The registry is shared
// across request handlers, hence the lock.
type Sessions struct {
	mu          sync.RWMutex
	transcripts map[string][]model.Turn
}

func NewSessions() *Sessions {
	return &Sessions{transcripts: make(map[string][]model.Turn)}
}

// Append adds turns to a session's transcript, creating it on first use.
func (s *Sessions) Append(sessionID string, turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[sessionID] = append(s.transcripts[sessionID], turns...)
}

// Transcript returns a copy of the session's transcript in order.
func (s *Sessions) Transcript(sessionID string) []model.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.transcripts[sessionID]
	out := make([]model.Turn, len(src))
	copy(out, src)
	return out
}

// Len reports the number of turns in a session.
func (s *Sessions) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcripts[sessionID])
}

// End clears a session's transcript.
func (s *Sessions) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, sessionID)
}
