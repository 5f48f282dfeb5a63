package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
)

// PayrollsHandler exposes /admin/payrolls.
type PayrollsHandler struct {
	payrolls PayrollService
}

// NewPayrollsHandler constructs handler.
func NewPayrollsHandler(payrolls PayrollService) *PayrollsHandler {
	return &PayrollsHandler{payrolls: payrolls}
}

func payrollInput(req dto.PayrollRequest) (service.PayrollInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return service.PayrollInput{}, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return service.PayrollInput{}, err
	}
	return service.PayrollInput{
		UserID:    req.UserID,
		Year:      req.Year,
		Month:     req.Month,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// List handles GET /admin/payrolls.
func (h *PayrollsHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.PayrollListFilters{Page: page}
	if filters.UserID, err = queryUUID(c, "user_id"); err != nil {
		return err
	}
	if filters.Year, err = queryInt(c, "year"); err != nil {
		return err
	}
	if filters.Month, err = queryInt(c, "month"); err != nil {
		return err
	}
	payrolls, err := h.payrolls.ListPayrolls(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(payrolls, payrollResponse), meta)
}

// Create handles POST /admin/payrolls. The salary is computed from attendance.
func (h *PayrollsHandler) Create(c *fiber.Ctx) error {
	var req dto.PayrollRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input, err := payrollInput(req)
	if err != nil {
		return err
	}
	payroll, err := h.payrolls.CreatePayroll(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payrollResponse(*payroll)})
}

// Get handles GET /admin/payrolls/:id.
func (h *PayrollsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payroll, err := h.payrolls.GetPayroll(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollResponse(*payroll)})
}

// Update handles PUT /admin/payrolls/:id.
func (h *PayrollsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.PayrollRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input, err := payrollInput(req)
	if err != nil {
		return err
	}
	payroll, err := h.payrolls.UpdatePayroll(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollResponse(*payroll)})
}

// Recalculate handles POST /admin/payrolls/:id/recalculate.
func (h *PayrollsHandler) Recalculate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payroll, err := h.payrolls.RecalculatePayroll(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollResponse(*payroll)})
}

// Delete handles DELETE /admin/payrolls/:id.
func (h *PayrollsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.payrolls.DeletePayroll(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
