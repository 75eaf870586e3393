package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
)

// ReadDataset loads the training data from a .csv or .xlsx file. The first
// row must be a header naming the StudentRecord columns plus "dropout".
func ReadDataset(path string) ([]model.StudentRecord, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s: no data rows", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	required := []string{
		"student_id", "gender", "department", "scholarship", "parental_education",
		"extra_curricular", "sports_participation", "age", "cgpa", "attendance_rate",
		"family_income", "past_failures", "study_hours_per_week",
		"assignments_submitted", "projects_completed", "total_activities", "dropout",
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("dataset %s: missing column %q", path, col)
		}
	}

	records := make([]model.StudentRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := parseRow(row, header)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: row %d: %w", path, n+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx %s: no sheets", path)
	}
	return f.GetRows(sheets[0])
}

func parseRow(row []string, header map[string]int) (model.StudentRecord, error) {
	cell := func(col string) string {
		i := header[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var parseErr error
	num := func(col string) float64 {
		v, err := strconv.ParseFloat(cell(col), 64)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("column %q: %w", col, err)
		}
		return v
	}

	rec := model.StudentRecord{
		StudentID:            int(num("student_id")),
		Gender:               cell("gender"),
		Department:           cell("department"),
		Scholarship:          cell("scholarship"),
		ParentalEducation:    cell("parental_education"),
		ExtraCurricular:      cell("extra_curricular"),
		SportsParticipation:  cell("sports_participation"),
		Age:                  int(num("age")),
		CGPA:                 num("cgpa"),
		AttendanceRate:       num("attendance_rate"),
		FamilyIncome:         num("family_income"),
		PastFailures:         int(num("past_failures")),
		StudyHoursPerWeek:    num("study_hours_per_week"),
		AssignmentsSubmitted: int(num("assignments_submitted")),
		ProjectsCompleted:    int(num("projects_completed")),
		TotalActivities:      int(num("total_activities")),
		Dropout:              int(num("dropout")),
	}
	return rec, parseErr
}
