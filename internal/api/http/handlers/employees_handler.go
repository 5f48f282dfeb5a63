package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
)

// EmployeesHandler exposes /admin/employees.
type EmployeesHandler struct {
	people PeopleService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(people PeopleService) *EmployeesHandler {
	return &EmployeesHandler{people: people}
}

func employeeInput(req dto.EmployeeRequest) service.EmployeeInput {
	return service.EmployeeInput{
		UserID:            req.UserID,
		Address:           req.Address,
		Contact:           req.Contact,
		DepartmentID:      req.DepartmentID,
		Position:          req.Position,
		YearsOfExperience: req.YearsOfExperience,
		IsFresher:         req.IsFresher,
		Skills:            req.Skills,
		MonthlySalary:     req.MonthlySalary,
		PaymentDetails:    req.PaymentDetails,
		LeaveBalance:      req.LeaveBalance,
	}
}

// List handles GET /admin/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.EmployeeListFilters{Position: c.Query("position"), Page: page}
	if filters.DepartmentID, err = queryUUID(c, "department_id"); err != nil {
		return err
	}
	if filters.IsFresher, err = queryBool(c, "is_fresher"); err != nil {
		return err
	}

	employees, err := h.people.ListEmployees(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(employees, employeeResponse), meta)
}

// Create handles POST /admin/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	emp, err := h.people.CreateEmployee(c.UserContext(), employeeInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(*emp)})
}

// Get handles GET /admin/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	emp, err := h.people.GetEmployee(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(*emp)})
}

// Update handles PUT /admin/employees/:id. The employment date is kept.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	emp, err := h.people.UpdateEmployee(c.UserContext(), id, employeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(*emp)})
}

// Delete handles DELETE /admin/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.people.DeleteEmployee(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
