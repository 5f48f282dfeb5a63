package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// ReportsHandler exposes the attendance, leave and payroll report resources.
type ReportsHandler struct {
	reports ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

func reportPeriod(req dto.ReportPeriodRequest) domain.ReportPeriod {
	return domain.ReportPeriod{UserID: req.UserID, Month: req.Month, Year: req.Year}
}

func reportFilters(c *fiber.Ctx) (service.ReportListFilters, dto.ListMeta, error) {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return service.ReportListFilters{}, meta, err
	}
	filters := service.ReportListFilters{Page: page}
	if filters.UserID, err = queryUUID(c, "user_id"); err != nil {
		return filters, meta, err
	}
	if filters.Year, err = queryInt(c, "year"); err != nil {
		return filters, meta, err
	}
	if filters.Month, err = queryInt(c, "month"); err != nil {
		return filters, meta, err
	}
	return filters, meta, nil
}

func attendanceReport(req dto.AttendanceReportRequest) domain.AttendanceReport {
	return domain.AttendanceReport{
		ReportPeriod: reportPeriod(req.ReportPeriodRequest),
		TotalPresent: req.TotalPresent,
		TotalAbsent:  req.TotalAbsent,
		TotalLeave:   req.TotalLeave,
	}
}

// ListAttendance handles GET /admin/attendance-reports.
func (h *ReportsHandler) ListAttendance(c *fiber.Ctx) error {
	filters, meta, err := reportFilters(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.ListAttendanceReports(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(reports, attendanceReportResponse), meta)
}

// CreateAttendance handles POST /admin/attendance-reports.
func (h *ReportsHandler) CreateAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.CreateAttendanceReport(c.UserContext(), attendanceReport(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attendanceReportResponse(*report)})
}

// GenerateAttendance handles POST /admin/attendance-reports/generate.
func (h *ReportsHandler) GenerateAttendance(c *fiber.Ctx) error {
	var req dto.ReportPeriodRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.GenerateAttendanceReport(c.UserContext(), reportPeriod(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attendanceReportResponse(*report)})
}

// GetAttendance handles GET /admin/attendance-reports/:id.
func (h *ReportsHandler) GetAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	report, err := h.reports.GetAttendanceReport(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceReportResponse(*report)})
}

// UpdateAttendance handles PUT /admin/attendance-reports/:id.
func (h *ReportsHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.AttendanceReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.UpdateAttendanceReport(c.UserContext(), id, attendanceReport(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceReportResponse(*report)})
}

// DeleteAttendance handles DELETE /admin/attendance-reports/:id.
func (h *ReportsHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.reports.DeleteAttendanceReport(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func leaveReport(req dto.LeaveReportRequest) domain.LeaveReport {
	return domain.LeaveReport{
		ReportPeriod: reportPeriod(req.ReportPeriodRequest),
		TotalLeaves:  req.TotalLeaves,
	}
}

// ListLeave handles GET /admin/leave-reports.
func (h *ReportsHandler) ListLeave(c *fiber.Ctx) error {
	filters, meta, err := reportFilters(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.ListLeaveReports(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(reports, leaveReportResponse), meta)
}

// CreateLeave handles POST /admin/leave-reports.
func (h *ReportsHandler) CreateLeave(c *fiber.Ctx) error {
	var req dto.LeaveReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.CreateLeaveReport(c.UserContext(), leaveReport(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leaveReportResponse(*report)})
}

// GenerateLeave handles POST /admin/leave-reports/generate.
func (h *ReportsHandler) GenerateLeave(c *fiber.Ctx) error {
	var req dto.ReportPeriodRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.GenerateLeaveReport(c.UserContext(), reportPeriod(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leaveReportResponse(*report)})
}

// GetLeave handles GET /admin/leave-reports/:id.
func (h *ReportsHandler) GetLeave(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	report, err := h.reports.GetLeaveReport(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveReportResponse(*report)})
}

// UpdateLeave handles PUT /admin/leave-reports/:id.
func (h *ReportsHandler) UpdateLeave(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.LeaveReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.UpdateLeaveReport(c.UserContext(), id, leaveReport(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveReportResponse(*report)})
}

// DeleteLeave handles DELETE /admin/leave-reports/:id.
func (h *ReportsHandler) DeleteLeave(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.reports.DeleteLeaveReport(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func payrollReport(req dto.PayrollReportRequest) domain.PayrollReport {
	return domain.PayrollReport{
		ReportPeriod: reportPeriod(req.ReportPeriodRequest),
		TotalSalary:  req.TotalSalary,
	}
}

// ListPayroll handles GET /admin/payroll-reports.
func (h *ReportsHandler) ListPayroll(c *fiber.Ctx) error {
	filters, meta, err := reportFilters(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.ListPayrollReports(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(reports, payrollReportResponse), meta)
}

// CreatePayroll handles POST /admin/payroll-reports.
func (h *ReportsHandler) CreatePayroll(c *fiber.Ctx) error {
	var req dto.PayrollReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.CreatePayrollReport(c.UserContext(), payrollReport(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payrollReportResponse(*report)})
}

// GeneratePayroll handles POST /admin/payroll-reports/generate.
func (h *ReportsHandler) GeneratePayroll(c *fiber.Ctx) error {
	var req dto.ReportPeriodRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.GeneratePayrollReport(c.UserContext(), reportPeriod(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payrollReportResponse(*report)})
}

// GetPayroll handles GET /admin/payroll-reports/:id.
func (h *ReportsHandler) GetPayroll(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	report, err := h.reports.GetPayrollReport(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollReportResponse(*report)})
}

// UpdatePayroll handles PUT /admin/payroll-reports/:id.
func (h *ReportsHandler) UpdatePayroll(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.PayrollReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.UpdatePayrollReport(c.UserContext(), id, payrollReport(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payrollReportResponse(*report)})
}

// DeletePayroll handles DELETE /admin/payroll-reports/:id.
func (h *ReportsHandler) DeletePayroll(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.reports.DeletePayrollReport(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
