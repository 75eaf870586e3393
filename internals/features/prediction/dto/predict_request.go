package dto

import "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"

// PredictRequest is the ad-hoc prediction form. The validate tags mirror the
// dashboard form bounds; the scorer itself never range-checks, so these tags
// are the only gate between the client and the model.
type PredictRequest struct {
	StudentID            int     `json:"student_id"`
	Gender               string  `json:"gender" validate:"required"`
	Department           string  `json:"department" validate:"required"`
	Scholarship          string  `json:"scholarship" validate:"required"`
	ParentalEducation    string  `json:"parental_education" validate:"required"`
	ExtraCurricular      string  `json:"extra_curricular" validate:"required"`
	SportsParticipation  string  `json:"sports_participation" validate:"required"`
	Age                  int     `json:"age" validate:"gte=0"`
	CGPA                 float64 `json:"cgpa" validate:"gte=0,lte=10"`
	AttendanceRate       float64 `json:"attendance_rate" validate:"gte=0,lte=100"`
	FamilyIncome         float64 `json:"family_income" validate:"gte=0"`
	PastFailures         int     `json:"past_failures" validate:"gte=0"`
	StudyHoursPerWeek    float64 `json:"study_hours_per_week" validate:"gte=0"`
	AssignmentsSubmitted int     `json:"assignments_submitted" validate:"gte=0"`
	ProjectsCompleted    int     `json:"projects_completed" validate:"gte=0"`
	TotalActivities      int     `json:"total_activities" validate:"gte=0"`
}

func (r PredictRequest) ToRecord() model.StudentRecord {
	return model.StudentRecord{
		StudentID:            r.StudentID,
		Gender:               r.Gender,
		Department:           r.Department,
		Scholarship:          r.Scholarship,
		ParentalEducation:    r.ParentalEducation,
		ExtraCurricular:      r.ExtraCurricular,
		SportsParticipation:  r.SportsParticipation,
		Age:                  r.Age,
		CGPA:                 r.CGPA,
		AttendanceRate:       r.AttendanceRate,
		FamilyIncome:         r.FamilyIncome,
		PastFailures:         r.PastFailures,
		StudyHoursPerWeek:    r.StudyHoursPerWeek,
		AssignmentsSubmitted: r.AssignmentsSubmitted,
		ProjectsCompleted:    r.ProjectsCompleted,
		TotalActivities:      r.TotalActivities,
	}
}

// SimulateRequest drives the what-if panel: two slider values applied on top
// of a student's recorded baseline.
type SimulateRequest struct {
	StudentID      int     `json:"student_id" validate:"required"`
	AttendanceRate float64 `json:"attendance_rate" validate:"gte=0,lte=100"`
	CGPA           float64 `json:"cgpa" validate:"gte=0,lte=10"`
}
