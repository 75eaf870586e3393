package dto

import "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"

// Gauge describes the risk meter: current value, bar color and the fixed
// band steps, matching the dashboard's indicator widget.
type Gauge struct {
	Value    float64     `json:"value"`
	BarColor string      `json:"bar_color"`
	Steps    []GaugeStep `json:"steps"`
}

type GaugeStep struct {
	Range [2]float64 `json:"range"`
	Color string     `json:"color"`
}

var gaugeSteps = []GaugeStep{
	{Range: [2]float64{0, 30}, Color: "lightgreen"},
	{Range: [2]float64{30, 60}, Color: "yellow"},
	{Range: [2]float64{60, 100}, Color: "salmon"},
}

// GaugeFor builds the meter payload for a probability.
func GaugeFor(probability float64) Gauge {
	color := "green"
	switch {
	case probability > 60:
		color = "red"
	case probability > 30:
		color = "orange"
	}
	steps := make([]GaugeStep, len(gaugeSteps))
	copy(steps, gaugeSteps)
	return Gauge{Value: probability, BarColor: color, Steps: steps}
}

// PieDatum is one slice of the performance overview chart.
type PieDatum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PerformancePie builds the academic/activity overview chart values.
func PerformancePie(rec model.StudentRecord) []PieDatum {
	return []PieDatum{
		{Label: "CGPA", Value: rec.CGPA},
		{Label: "Attendance", Value: rec.AttendanceRate},
		{Label: "Assignments", Value: float64(rec.AssignmentsSubmitted)},
		{Label: "Projects", Value: float64(rec.ProjectsCompleted)},
		{Label: "Activities", Value: float64(rec.TotalActivities)},
	}
}

// AssessmentResponse is the full dashboard payload for one student view.
type AssessmentResponse struct {
	Student    model.StudentRecord  `json:"student"`
	Assessment model.RiskAssessment `json:"assessment"`
	Gauge      Gauge                `json:"gauge"`
	Pie        []PieDatum           `json:"performance"`
	// Warning is set when the snapshot could not be persisted; the
	// assessment itself is still valid.
	Warning string `json:"warning,omitempty"`
}
