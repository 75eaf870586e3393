package model

// RiskRecord is the persisted risk snapshot, one document per student.
// Each recomputation overwrites the previous snapshot (last-write-wins,
// no history). Timestamp is RFC 3339.
type RiskRecord struct {
	StudentID       int     `bson:"student_id" json:"student_id"`
	RiskProbability float64 `bson:"risk_probability" json:"risk_probability"`
	CGPA            float64 `bson:"cgpa" json:"cgpa"`
	AttendanceRate  float64 `bson:"attendance_rate" json:"attendance_rate"`
	Department      string  `bson:"department" json:"department"`
	Gender          string  `bson:"gender" json:"gender"`
	FamilyIncome    float64 `bson:"family_income" json:"family_income"`
	Timestamp       string  `bson:"timestamp" json:"timestamp"`
}
