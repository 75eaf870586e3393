package service

import (
	"math/rand"
	"strings"
	"time"
)

// MotivationalQuotes and AcademicTips are the fixed pools the responder
// picks from for motivation and study questions.
var MotivationalQuotes = []string{
	"Every expert was once a beginner. Keep going!",
	"Consistency beats intensity — study a little every day.",
	"Your effort today is your success tomorrow.",
	"Believe you can, and you're halfway there.",
}

var AcademicTips = []string{
	"Try scheduling short, focused study sessions (Pomodoro method).",
	"Join a peer study group or discussion circle.",
	"Focus on weak areas first — use your risk report to guide priorities.",
	"Ask your mentor for weekly progress feedback.",
}

const (
	attendanceReply = "Maintaining attendance above 75% reduces dropout risk. Plan your schedule effectively."
	gradeReply      = "Improving CGPA requires consistent review and practice. Seek mentor guidance."
	helpReply       = "I can help you interpret your results or suggest improvement strategies."
	fallbackReply   = "Try being specific — ask about attendance, grades, or improvement strategies."
)

// Responder answers free-text questions by keyword lookup. The random
// source is injected so tests can pin the quote and tip picks.
type Responder struct {
	rng *rand.Rand
}

func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Respond returns the bot reply for the given input. Keyword branches are
// checked in fixed priority order; the first match wins. Blank or
// whitespace-only input yields ok=false and must not be echoed into the
// transcript.
func (r *Responder) Respond(input string) (reply string, ok bool) {
	msg := strings.ToLower(strings.TrimSpace(input))
	if msg == "" {
		return "", false
	}

	switch {
	case strings.Contains(msg, "attendance"), strings.Contains(msg, "absent"):
		return attendanceReply, true
	case strings.Contains(msg, "cgpa"), strings.Contains(msg, "grade"):
		return gradeReply, true
	case strings.Contains(msg, "motivate"), strings.Contains(msg, "motivation"):
		return MotivationalQuotes[r.rng.Intn(len(MotivationalQuotes))], true
	case strings.Contains(msg, "study"):
		return AcademicTips[r.rng.Intn(len(AcademicTips))], true
	case strings.Contains(msg, "help"), strings.Contains(msg, "how"):
		return helpReply, true
	default:
		return fallbackReply, true
	}
}
