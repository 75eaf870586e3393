package service

import (
	"fmt"
	"time"

	randomforest "github.com/malaschitz/randomForest"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
)

// Engine bundles the trained forest, the encoder tables and the student
// roster. It is built once at startup and shared read-only by all handlers,
// so no locking is needed after construction.
type Engine struct {
	forest   *randomforest.Forest
	encoders Encoders
	roster   []model.StudentRecord
	info     ModelInfo
}

// Score encodes a record and returns the dropout probability as a percent.
// Numeric fields are passed through as-is: out-of-range values are scored,
// not rejected. Range enforcement belongs to the form layer.
func (e *Engine) Score(rec model.StudentRecord) float64 {
	votes := e.forest.Vote(e.encoders.Features(rec))
	if len(votes) < 2 {
		// Single-class training data; the positive class never occurs.
		return 0
	}
	return votes[1] * 100
}

// Assess scores a record and attaches the band narrative.
func (e *Engine) Assess(rec model.StudentRecord) model.RiskAssessment {
	p := e.Score(rec)
	band, causes, recs := Classify(p)
	return model.RiskAssessment{
		StudentID:       rec.StudentID,
		Probability:     p,
		Band:            band,
		Causes:          causes,
		Recommendations: recs,
		Timestamp:       time.Now(),
	}
}

// Simulate re-scores a copy of the baseline with attendance and CGPA
// overridden. The baseline itself is never touched, so repeated what-if
// calls stay independent.
func (e *Engine) Simulate(baseline model.StudentRecord, attendance, cgpa float64) float64 {
	sim := baseline
	sim.AttendanceRate = attendance
	sim.CGPA = cgpa
	return e.Score(sim)
}

// Student looks a roster row up by id.
func (e *Engine) Student(id int) (model.StudentRecord, error) {
	for _, rec := range e.roster {
		if rec.StudentID == id {
			return rec, nil
		}
	}
	return model.StudentRecord{}, fmt.Errorf("student %d not found", id)
}

// Students returns the roster. Callers must not modify the returned slice.
func (e *Engine) Students() []model.StudentRecord {
	return e.roster
}

func (e *Engine) Info() ModelInfo {
	return e.info
}
