package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
)

// AttendanceHandler exposes /admin/attendances.
type AttendanceHandler struct {
	attendance AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

func attendanceInput(req dto.AttendanceRequest) (service.AttendanceInput, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return service.AttendanceInput{}, err
	}
	in, err := parseTimeOfDay("in_time", req.InTime)
	if err != nil {
		return service.AttendanceInput{}, err
	}
	out, err := parseTimeOfDay("out_time", req.OutTime)
	if err != nil {
		return service.AttendanceInput{}, err
	}
	return service.AttendanceInput{
		UserID:    req.UserID,
		Date:      date,
		InTime:    in,
		OutTime:   out,
		IsPresent: req.IsPresent,
		IsAbsent:  req.IsAbsent,
		OnLeave:   req.OnLeave,
	}, nil
}

// List handles GET /admin/attendances.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.AttendanceListFilters{Page: page}
	if filters.UserID, err = queryUUID(c, "user_id"); err != nil {
		return err
	}
	if filters.DateFrom, err = queryDate(c, "date_from"); err != nil {
		return err
	}
	if filters.DateTo, err = queryDate(c, "date_to"); err != nil {
		return err
	}
	records, err := h.attendance.ListAttendance(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(records, attendanceResponse), meta)
}

// Create handles POST /admin/attendances.
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req dto.AttendanceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input, err := attendanceInput(req)
	if err != nil {
		return err
	}
	record, err := h.attendance.RecordAttendance(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attendanceResponse(*record)})
}

// Get handles GET /admin/attendances/:id.
func (h *AttendanceHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.attendance.GetAttendance(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponse(*record)})
}

// Update handles PUT /admin/attendances/:id.
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.AttendanceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input, err := attendanceInput(req)
	if err != nil {
		return err
	}
	record, err := h.attendance.UpdateAttendance(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponse(*record)})
}

// Delete handles DELETE /admin/attendances/:id.
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.attendance.DeleteAttendance(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
