package controller

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	predictionService "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/service"
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/report/service"
	helper "github.com/kulsum-786/student-disengagement-prediction/internals/helpers"
)

type ReportController struct {
	Engine *predictionService.Engine
}

func NewReportController(engine *predictionService.Engine) *ReportController {
	return &ReportController{Engine: engine}
}

// GET /api/students/:id/report
func (rc *ReportController) Download(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := rc.Engine.Student(id)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	assessment := rc.Engine.Assess(student)
	pdf, err := service.Build(student, assessment)
	if err != nil {
		log.Println("[ERROR] failed to build report:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate report")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Student_%d_Report.pdf"`, id))
	return c.Send(pdf)
}
