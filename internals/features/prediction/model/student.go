package model

import "time"

// StudentRecord is one row of the student dataset. Categorical fields hold the
// raw string values; encoding to model input happens in the service layer.
type StudentRecord struct {
	StudentID            int     `json:"student_id"`
	Gender               string  `json:"gender"`
	Department           string  `json:"department"`
	Scholarship          string  `json:"scholarship"`
	ParentalEducation    string  `json:"parental_education"`
	ExtraCurricular      string  `json:"extra_curricular"`
	SportsParticipation  string  `json:"sports_participation"`
	Age                  int     `json:"age"`
	CGPA                 float64 `json:"cgpa"`
	AttendanceRate       float64 `json:"attendance_rate"`
	FamilyIncome         float64 `json:"family_income"`
	PastFailures         int     `json:"past_failures"`
	StudyHoursPerWeek    float64 `json:"study_hours_per_week"`
	AssignmentsSubmitted int     `json:"assignments_submitted"`
	ProjectsCompleted    int     `json:"projects_completed"`
	TotalActivities      int     `json:"total_activities"`

	// Dropout is the training label (0/1). It is only meaningful for rows
	// read from the training dataset.
	Dropout int `json:"dropout,omitempty"`
}

type RiskBand string

const (
	BandLow      RiskBand = "Low"
	BandModerate RiskBand = "Moderate"
	BandHigh     RiskBand = "High"
)

// Label is the display form used on the dashboard and in reports.
func (b RiskBand) Label() string {
	return string(b) + " Risk"
}

// RiskAssessment is derived fresh on every view; it is never stored as-is.
// The persisted snapshot in the record store is the only durable form.
type RiskAssessment struct {
	StudentID       int       `json:"student_id"`
	Probability     float64   `json:"probability"`
	Band            RiskBand  `json:"risk_level"`
	Causes          []string  `json:"causes"`
	Recommendations []string  `json:"recommendations"`
	Timestamp       time.Time `json:"timestamp"`
}
