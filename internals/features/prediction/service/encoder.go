package service

import (
	"sort"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
)

// UnseenCode is returned for any categorical value outside the trained
// vocabulary. It is distinct from every learned code (codes are 0-based),
// so the classifier can tell "unknown" apart from the first class.
const UnseenCode = -1

// CategoricalColumns lists the columns that go through label encoding,
// in dataset order.
var CategoricalColumns = []string{
	"gender",
	"department",
	"scholarship",
	"parental_education",
	"extra_curricular",
	"sports_participation",
}

// EncoderTable maps one column's raw values to stable integer codes.
// Built once at training time, immutable afterwards.
type EncoderTable map[string]int

// FitTable assigns 0-based codes over the sorted distinct vocabulary.
// Sorting keeps the mapping reproducible for the same training data.
func FitTable(values []string) EncoderTable {
	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)

	table := make(EncoderTable, len(distinct))
	for i, v := range distinct {
		table[v] = i
	}
	return table
}

// Transform returns the learned code, or UnseenCode for values outside the
// trained vocabulary. Unseen values are not an error.
func (t EncoderTable) Transform(value string) int {
	if code, ok := t[value]; ok {
		return code
	}
	return UnseenCode
}

// Encoders holds one table per categorical column.
type Encoders map[string]EncoderTable

// FitEncoders learns the per-column vocabularies from the training rows.
func FitEncoders(records []model.StudentRecord) Encoders {
	columns := make(map[string][]string, len(CategoricalColumns))
	for _, rec := range records {
		columns["gender"] = append(columns["gender"], rec.Gender)
		columns["department"] = append(columns["department"], rec.Department)
		columns["scholarship"] = append(columns["scholarship"], rec.Scholarship)
		columns["parental_education"] = append(columns["parental_education"], rec.ParentalEducation)
		columns["extra_curricular"] = append(columns["extra_curricular"], rec.ExtraCurricular)
		columns["sports_participation"] = append(columns["sports_participation"], rec.SportsParticipation)
	}

	enc := make(Encoders, len(CategoricalColumns))
	for _, col := range CategoricalColumns {
		enc[col] = FitTable(columns[col])
	}
	return enc
}

// Features encodes a student record into the fixed model input order.
// The order must match training exactly; student_id is not a feature.
func (e Encoders) Features(rec model.StudentRecord) []float64 {
	return []float64{
		float64(e["gender"].Transform(rec.Gender)),
		float64(e["department"].Transform(rec.Department)),
		float64(e["scholarship"].Transform(rec.Scholarship)),
		float64(e["parental_education"].Transform(rec.ParentalEducation)),
		float64(e["extra_curricular"].Transform(rec.ExtraCurricular)),
		float64(rec.Age),
		rec.CGPA,
		rec.AttendanceRate,
		rec.FamilyIncome,
		float64(rec.PastFailures),
		rec.StudyHoursPerWeek,
		float64(rec.AssignmentsSubmitted),
		float64(rec.ProjectsCompleted),
		float64(rec.TotalActivities),
		float64(e["sports_participation"].Transform(rec.SportsParticipation)),
	}
}
