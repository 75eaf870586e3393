package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/dto"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/service"
	recordsModel "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/model"
	recordsService "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/service"
	helper "github.com/kulsum-786/student-disengagement-prediction/internals/helpers"
)

var validate = validator.New()

type PredictionController struct {
	Engine *service.Engine
	Store  recordsService.RecordStore
}

func NewPredictionController(engine *service.Engine, store recordsService.RecordStore) *PredictionController {
	return &PredictionController{Engine: engine, Store: store}
}

// sanitize hides the training label before a record leaves the API.
func sanitize(rec *model.StudentRecord) {
	rec.Dropout = 0
}

// GET /api/model
func (pc *PredictionController) GetModelInfo(c *fiber.Ctx) error {
	return helper.Success(c, "Model info fetched successfully", pc.Engine.Info())
}

// GET /api/students
func (pc *PredictionController) GetStudents(c *fiber.Ctx) error {
	roster := pc.Engine.Students()
	students := make([]model.StudentRecord, len(roster))
	copy(students, roster)
	for i := range students {
		sanitize(&students[i])
	}
	return helper.Success(c, "Students fetched successfully", fiber.Map{
		"total":    len(students),
		"students": students,
	})
}

// GET /api/students/:id/assessment
func (pc *PredictionController) GetAssessment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := pc.Engine.Student(id)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	assessment := pc.Engine.Assess(student)
	resp := dto.AssessmentResponse{
		Student:    student,
		Assessment: assessment,
		Gauge:      dto.GaugeFor(assessment.Probability),
		Pie:        dto.PerformancePie(student),
	}
	sanitize(&resp.Student)

	// Persistence failure must not block the risk display.
	if err := pc.Store.Upsert(c.UserContext(), snapshot(student, assessment)); err != nil {
		log.Println("[WARN] failed to persist risk snapshot:", err)
		resp.Warning = "Risk snapshot could not be saved"
	}

	return helper.Success(c, "Assessment computed successfully", resp)
}

// POST /api/predict
func (pc *PredictionController) Predict(c *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := req.ToRecord()
	assessment := pc.Engine.Assess(student)
	log.Printf("[INFO] ad-hoc prediction: probability=%.2f%% band=%s", assessment.Probability, assessment.Band)

	return helper.Success(c, "Prediction computed successfully", dto.AssessmentResponse{
		Student:    student,
		Assessment: assessment,
		Gauge:      dto.GaugeFor(assessment.Probability),
		Pie:        dto.PerformancePie(student),
	})
}

// POST /api/simulate
func (pc *PredictionController) Simulate(c *fiber.Ctx) error {
	var req dto.SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	baseline, err := pc.Engine.Student(req.StudentID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	probability := pc.Engine.Simulate(baseline, req.AttendanceRate, req.CGPA)
	band, _, _ := service.Classify(probability)

	return helper.Success(c, "Simulation computed successfully", fiber.Map{
		"student_id":      req.StudentID,
		"attendance_rate": req.AttendanceRate,
		"cgpa":            req.CGPA,
		"probability":     probability,
		"risk_level":      band,
		"gauge":           dto.GaugeFor(probability),
	})
}

func snapshot(student model.StudentRecord, a model.RiskAssessment) recordsModel.RiskRecord {
	return recordsModel.RiskRecord{
		StudentID:       student.StudentID,
		RiskProbability: a.Probability,
		CGPA:            student.CGPA,
		AttendanceRate:  student.AttendanceRate,
		Department:      student.Department,
		Gender:          student.Gender,
		FamilyIncome:    student.FamilyIncome,
		Timestamp:       a.Timestamp.Format(time.RFC3339),
	}
}
