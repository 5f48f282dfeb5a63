package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Admin       *handlers.AdminHandler
	Users       *handlers.UsersHandler
	Employees   *handlers.EmployeesHandler
	Departments *handlers.DepartmentsHandler
	Holidays    *handlers.HolidaysHandler
	Attendance  *handlers.AttendanceHandler
	Leaves      *handlers.LeavesHandler
	Payrolls    *handlers.PayrollsHandler
	Documents   *handlers.DocumentsHandler
	Reports     *handlers.ReportsHandler
	// Gatherer backs /metrics when set.
	Gatherer prometheus.Gatherer
}

// crud is the handler set every registered admin model exposes.
type crud struct {
	list, create, get, update, remove fiber.Handler
}

func registerCRUD(group fiber.Router, h crud) {
	group.Get("/", h.list)
	group.Post("/", h.create)
	group.Get("/:id", h.get)
	group.Put("/:id", h.update)
	group.Delete("/:id", h.remove)
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	admin := app.Group("/admin")
	admin.Get("/", cfg.Admin.Index)
	admin.Get("/log", cfg.Admin.Log)

	users := admin.Group("/" + domain.ResourceUsers)
	users.Post("/:id/password", cfg.Users.SetPassword)
	registerCRUD(users, crud{cfg.Users.List, cfg.Users.Create, cfg.Users.Get, cfg.Users.Update, cfg.Users.Delete})

	registerCRUD(admin.Group("/"+domain.ResourceEmployees), crud{
		cfg.Employees.List, cfg.Employees.Create, cfg.Employees.Get, cfg.Employees.Update, cfg.Employees.Delete,
	})
	registerCRUD(admin.Group("/"+domain.ResourceDepartments), crud{
		cfg.Departments.List, cfg.Departments.Create, cfg.Departments.Get, cfg.Departments.Update, cfg.Departments.Delete,
	})
	registerCRUD(admin.Group("/"+domain.ResourceHolidays), crud{
		cfg.Holidays.List, cfg.Holidays.Create, cfg.Holidays.Get, cfg.Holidays.Update, cfg.Holidays.Delete,
	})
	registerCRUD(admin.Group("/"+domain.ResourceAttendances), crud{
		cfg.Attendance.List, cfg.Attendance.Create, cfg.Attendance.Get, cfg.Attendance.Update, cfg.Attendance.Delete,
	})

	leaves := admin.Group("/" + domain.ResourceLeaves)
	leaves.Post("/:id/approve", cfg.Leaves.Approve)
	leaves.Post("/:id/reject", cfg.Leaves.Reject)
	registerCRUD(leaves, crud{cfg.Leaves.List, cfg.Leaves.Create, cfg.Leaves.Get, cfg.Leaves.Update, cfg.Leaves.Delete})

	payrolls := admin.Group("/" + domain.ResourcePayrolls)
	payrolls.Post("/:id/recalculate", cfg.Payrolls.Recalculate)
	registerCRUD(payrolls, crud{cfg.Payrolls.List, cfg.Payrolls.Create, cfg.Payrolls.Get, cfg.Payrolls.Update, cfg.Payrolls.Delete})

	documents := admin.Group("/" + domain.ResourceDocuments)
	documents.Get("/:id/download", cfg.Documents.Download)
	registerCRUD(documents, crud{cfg.Documents.List, cfg.Documents.Create, cfg.Documents.Get, cfg.Documents.Update, cfg.Documents.Delete})

	attendanceReports := admin.Group("/" + domain.ResourceAttendanceReports)
	attendanceReports.Post("/generate", cfg.Reports.GenerateAttendance)
	registerCRUD(attendanceReports, crud{
		cfg.Reports.ListAttendance, cfg.Reports.CreateAttendance, cfg.Reports.GetAttendance,
		cfg.Reports.UpdateAttendance, cfg.Reports.DeleteAttendance,
	})

	leaveReports := admin.Group("/" + domain.ResourceLeaveReports)
	leaveReports.Post("/generate", cfg.Reports.GenerateLeave)
	registerCRUD(leaveReports, crud{
		cfg.Reports.ListLeave, cfg.Reports.CreateLeave, cfg.Reports.GetLeave,
		cfg.Reports.UpdateLeave, cfg.Reports.DeleteLeave,
	})

	payrollReports := admin.Group("/" + domain.ResourcePayrollReports)
	payrollReports.Post("/generate", cfg.Reports.GeneratePayroll)
	registerCRUD(payrollReports, crud{
		cfg.Reports.ListPayroll, cfg.Reports.CreatePayroll, cfg.Reports.GetPayroll,
		cfg.Reports.UpdatePayroll, cfg.Reports.DeletePayroll,
	})
}
