package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/chat/model"
)

func TestRespondAttendanceBranch(t *testing.T) {
	r := NewResponder(nil)

	for _, input := range []string{"my attendance is bad", "I was absent last week", "ATTENDANCE??"} {
		reply, ok := r.Respond(input)
		require.True(t, ok)
		assert.Equal(t, attendanceReply, reply, "input %q", input)
	}
}

func TestRespondGradeBranch(t *testing.T) {
	r := NewResponder(nil)

	reply, ok := r.Respond("how do I improve my CGPA")
	require.True(t, ok)
	assert.Equal(t, gradeReply, reply)

	reply, ok = r.Respond("my grades are slipping")
	require.True(t, ok)
	assert.Equal(t, gradeReply, reply)
}

func TestRespondPriorityOrderFirstMatchWins(t *testing.T) {
	r := NewResponder(nil)

	// Contains both attendance and cgpa keywords: the attendance branch
	// is checked first and must win.
	reply, ok := r.Respond("my cgpa dropped after low attendance")
	require.True(t, ok)
	assert.Equal(t, attendanceReply, reply)

	// grade outranks motivate, motivate outranks study.
	reply, _ = r.Respond("motivate me to fix my grades")
	assert.Equal(t, gradeReply, reply)

	reply, _ = r.Respond("motivate me to study")
	assert.Contains(t, MotivationalQuotes, reply)
}

func TestRespondMotivationFromPool(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))

	reply, ok := r.Respond("please motivate me")
	require.True(t, ok)
	assert.Contains(t, MotivationalQuotes, reply)
}

func TestRespondMotivationDeterministicWithSeed(t *testing.T) {
	a := NewResponder(rand.New(rand.NewSource(42)))
	b := NewResponder(rand.New(rand.NewSource(42)))

	replyA, _ := a.Respond("motivation please")
	replyB, _ := b.Respond("motivation please")
	assert.Equal(t, replyA, replyB)
}

func TestRespondStudyTipsFromPool(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(7)))

	reply, ok := r.Respond("any study advice?")
	require.True(t, ok)
	assert.Contains(t, AcademicTips, reply)
}

func TestRespondHelpBranch(t *testing.T) {
	r := NewResponder(nil)

	reply, ok := r.Respond("can you help me")
	require.True(t, ok)
	assert.Equal(t, helpReply, reply)

	reply, _ = r.Respond("how does this work")
	assert.Equal(t, helpReply, reply)
}

func TestRespondFallback(t *testing.T) {
	r := NewResponder(nil)

	reply, ok := r.Respond("tell me about the weather")
	require.True(t, ok)
	assert.Equal(t, fallbackReply, reply)
}

func TestRespondBlankInputIsNoOp(t *testing.T) {
	r := NewResponder(nil)

	for _, input := range []string{"", "   ", "\n\t"} {
		reply, ok := r.Respond(input)
		assert.False(t, ok, "input %q", input)
		assert.Empty(t, reply)
	}
}

func TestSessionsAppendAndTranscript(t *testing.T) {
	s := NewSessions()

	s.Append("s1",
		model.Turn{Sender: model.SenderUser, Text: "please motivate me"},
		model.Turn{Sender: model.SenderBot, Text: MotivationalQuotes[0]},
	)

	assert.Equal(t, 2, s.Len("s1"))
	assert.Equal(t, 0, s.Len("s2"))

	transcript := s.Transcript("s1")
	require.Len(t, transcript, 2)
	assert.Equal(t, model.SenderUser, transcript[0].Sender)
	assert.Equal(t, model.SenderBot, transcript[1].Sender)

	// The returned transcript is a copy.
	transcript[0].Text = "mutated"
	assert.Equal(t, "please motivate me", s.Transcript("s1")[0].Text)
}

func TestSessionsEndClearsTranscript(t *testing.T) {
	s := NewSessions()
	s.Append("s1", model.Turn{Sender: model.SenderUser, Text: "hi"})

	s.End("s1")
	assert.Equal(t, 0, s.Len("s1"))
	assert.Empty(t, s.Transcript("s1"))
}
