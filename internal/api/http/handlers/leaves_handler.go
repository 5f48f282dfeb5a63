package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// LeavesHandler exposes /admin/leaves.
type LeavesHandler struct {
	attendance AttendanceService
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(attendance AttendanceService) *LeavesHandler {
	return &LeavesHandler{attendance: attendance}
}

func leaveInput(req dto.LeaveRequest) service.LeaveInput {
	return service.LeaveInput{
		UserID:             req.UserID,
		LeaveType:          req.LeaveType,
		Reason:             req.Reason,
		IsAccepted:         req.IsAccepted,
		IsRejected:         req.IsRejected,
		ReasonForRejecting: req.ReasonForRejecting,
	}
}

// List handles GET /admin/leaves.
func (h *LeavesHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.LeaveListFilters{Page: page}
	if filters.UserID, err = queryUUID(c, "user_id"); err != nil {
		return err
	}
	if filters.IsAccepted, err = queryBool(c, "is_accepted"); err != nil {
		return err
	}
	if filters.IsRejected, err = queryBool(c, "is_rejected"); err != nil {
		return err
	}
	leaves, err := h.attendance.ListLeaves(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(leaves, leaveResponse), meta)
}

// Create handles POST /admin/leaves.
func (h *LeavesHandler) Create(c *fiber.Ctx) error {
	var req dto.LeaveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	leave, err := h.attendance.RequestLeave(c.UserContext(), leaveInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leaveResponse(*leave)})
}

// Get handles GET /admin/leaves/:id.
func (h *LeavesHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	leave, err := h.attendance.GetLeave(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(*leave)})
}

// Update handles PUT /admin/leaves/:id.
func (h *LeavesHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.LeaveRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	leave, err := h.attendance.UpdateLeave(c.UserContext(), id, leaveInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(*leave)})
}

// Approve handles POST /admin/leaves/:id/approve.
func (h *LeavesHandler) Approve(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	leave, err := h.attendance.ApproveLeave(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(*leave)})
}

// Reject handles POST /admin/leaves/:id/reject. An empty body rejects without a reason.
func (h *LeavesHandler) Reject(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.LeaveRejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", map[string]any{"body": err.Error()})
		}
	}
	leave, err := h.attendance.RejectLeave(c.UserContext(), id, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(*leave)})
}

// Delete handles DELETE /admin/leaves/:id.
func (h *LeavesHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.attendance.DeleteLeave(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
