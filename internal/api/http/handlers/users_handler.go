package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// UsersHandler exposes /admin/users.
type UsersHandler struct {
	people PeopleService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(people PeopleService) *UsersHandler {
	return &UsersHandler{people: people}
}

// List handles GET /admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.UserListFilters{Search: c.Query("search"), Page: page}
	if role := c.Query("role"); role != "" {
		r := domain.UserRole(role)
		if !r.Valid() {
			return apperrors.NewValidationError("invalid filter", map[string]any{"role": role})
		}
		filters.Role = &r
	}
	if filters.IsActive, err = queryBool(c, "is_active"); err != nil {
		return err
	}

	users, err := h.people.ListUsers(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(users, userResponse), meta)
}

// Create handles POST /admin/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	input := service.UserInput{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        domain.UserRole(req.Role),
		IsActive:    active,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	}

	user, err := h.people.CreateUser(c.UserContext(), input, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(*user)})
}

// Get handles GET /admin/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.people.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(*user)})
}

// Update handles PUT /admin/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UserUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	input := service.UserInput{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        domain.UserRole(req.Role),
		IsActive:    *req.IsActive,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	}

	user, err := h.people.UpdateUser(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(*user)})
}

// SetPassword handles POST /admin/users/:id/password.
func (h *UsersHandler) SetPassword(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.PasswordSetRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.people.SetUserPassword(c.UserContext(), id, req.Password); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /admin/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.people.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
