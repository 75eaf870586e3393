package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/records/service"
	helper "github.com/kulsum-786/student-disengagement-prediction/internals/helpers"
)

type RecordsController struct {
	Store service.RecordStore
}

func NewRecordsController(store service.RecordStore) *RecordsController {
	return &RecordsController{Store: store}
}

// GET /api/records
func (rc *RecordsController) GetRecords(c *fiber.Ctx) error {
	recs, err := rc.Store.List(c.UserContext())
	if err != nil {
		log.Println("[ERROR] failed to list risk records:", err)
		return helper.Error(c, fiber.StatusServiceUnavailable, "Record store unavailable")
	}
	return helper.Success(c, "Risk records fetched successfully", fiber.Map{
		"total":   len(recs),
		"records": recs,
	})
}

// GET /api/records/:id
func (rc *RecordsController) GetRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	rec, err := rc.Store.Get(c.UserContext(), id)
	if errors.Is(err, service.ErrNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "No risk record for this student")
	}
	if err != nil {
		log.Println("[ERROR] failed to fetch risk record:", err)
		return helper.Error(c, fiber.StatusServiceUnavailable, "Record store unavailable")
	}
	return helper.Success(c, "Risk record fetched successfully", rec)
}
