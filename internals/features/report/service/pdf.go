package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
)

// Build renders the student engagement report as a PDF byte stream:
// title, profile overview, risk summary, causes, recommendations, footer.
func Build(student model.StudentRecord, assessment model.RiskAssessment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "STUDENT ENGAGEMENT REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(format string, args ...interface{}) {
		pdf.CellFormat(0, 6, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
	}

	heading("Student Profile Overview")
	line("Student Id: %d", student.StudentID)
	line("Gender: %s", student.Gender)
	line("Department: %s", student.Department)
	line("Cgpa: %.2f", student.CGPA)
	line("Attendance Rate: %.1f", student.AttendanceRate)
	line("Family Income: %.0f", student.FamilyIncome)
	line("Age: %d", student.Age)
	line("Scholarship: %s", student.Scholarship)
	line("Sports Participation: %s", student.SportsParticipation)
	line("Extra Curricular: %s", student.ExtraCurricular)
	line("Parental Education: %s", student.ParentalEducation)
	pdf.Ln(4)

	heading("Risk Assessment Summary")
	line("Dropout Probability: %.2f%%", assessment.Probability)
	line("Risk Level: %s", assessment.Band.Label())
	pdf.Ln(4)

	heading("Identified Causes of Risk")
	for _, c := range assessment.Causes {
		line("- %s", c)
	}
	pdf.Ln(4)

	heading("Recommendations and Improvement Plan")
	for _, r := range assessment.Recommendations {
		line("- %s", r)
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Generated by AI-Powered Student Engagement System", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
