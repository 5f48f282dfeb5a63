package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
)

// HolidaysHandler exposes /admin/holidays.
type HolidaysHandler struct {
	org OrgService
}

// NewHolidaysHandler constructs handler.
func NewHolidaysHandler(org OrgService) *HolidaysHandler {
	return &HolidaysHandler{org: org}
}

func holidayInput(req dto.HolidayRequest) (service.HolidayInput, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return service.HolidayInput{}, err
	}
	return service.HolidayInput{Date: date, Occasion: req.Occasion}, nil
}

// List handles GET /admin/holidays.
func (h *HolidaysHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.HolidayListFilters{Page: page}
	if filters.DateFrom, err = queryDate(c, "date_from"); err != nil {
		return err
	}
	if filters.DateTo, err = queryDate(c, "date_to"); err != nil {
		return err
	}
	holidays, err := h.org.ListHolidays(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(holidays, holidayResponse), meta)
}

// Create handles POST /admin/holidays.
func (h *HolidaysHandler) Create(c *fiber.Ctx) error {
	var req dto.HolidayRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input, err := holidayInput(req)
	if err != nil {
		return err
	}
	holiday, err := h.org.CreateHoliday(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": holidayResponse(*holiday)})
}

// Get handles GET /admin/holidays/:id.
func (h *HolidaysHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	holiday, err := h.org.GetHoliday(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": holidayResponse(*holiday)})
}

// Update handles PUT /admin/holidays/:id.
func (h *HolidaysHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.HolidayRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input, err := holidayInput(req)
	if err != nil {
		return err
	}
	holiday, err := h.org.UpdateHoliday(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": holidayResponse(*holiday)})
}

// Delete handles DELETE /admin/holidays/:id.
func (h *HolidaysHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.org.DeleteHoliday(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
