package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
)

// DepartmentsHandler exposes /admin/departments.
type DepartmentsHandler struct {
	org OrgService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(org OrgService) *DepartmentsHandler {
	return &DepartmentsHandler{org: org}
}

// List handles GET /admin/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.DepartmentListFilters{Search: c.Query("search"), Page: page}
	if filters.HeadID, err = queryUUID(c, "department_head_id"); err != nil {
		return err
	}
	departments, err := h.org.ListDepartments(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(departments, departmentResponse), meta)
}

// Create handles POST /admin/departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.org.CreateDepartment(c.UserContext(), service.DepartmentInput{
		Name:             req.Name,
		Description:      req.Description,
		DepartmentHeadID: req.DepartmentHeadID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": departmentResponse(*dept)})
}

// Get handles GET /admin/departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	dept, err := h.org.GetDepartment(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponse(*dept)})
}

// Update handles PUT /admin/departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.org.UpdateDepartment(c.UserContext(), id, service.DepartmentInput{
		Name:             req.Name,
		Description:      req.Description,
		DepartmentHeadID: req.DepartmentHeadID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponse(*dept)})
}

// Delete handles DELETE /admin/departments/:id. Members keep their profile with no department.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.org.DeleteDepartment(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
