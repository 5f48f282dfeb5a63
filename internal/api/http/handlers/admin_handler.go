package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// AdminHandler serves the registry index and the admin action log.
type AdminHandler struct {
	log AdminLogService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(log AdminLogService) *AdminHandler {
	return &AdminHandler{log: log}
}

// Index handles GET /admin.
func (h *AdminHandler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": domain.AdminRegistry})
}

// Log handles GET /admin/log.
func (h *AdminHandler) Log(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.AdminLogFilters{
		Resource: c.Query("resource"),
		ObjectID: c.Query("object_id"),
		Page:     page,
	}
	entries, err := h.log.ListEntries(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(entries, adminLogResponse), meta)
}
