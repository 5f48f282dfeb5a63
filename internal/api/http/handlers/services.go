package handlers

import (
	"context"
	"io"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// PeopleService is the user and employee surface the handlers rely on.
type PeopleService interface {
	CreateUser(ctx context.Context, input service.UserInput, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, filters service.UserListFilters) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, input service.UserInput) (*domain.User, error)
	SetUserPassword(ctx context.Context, id, password string) error
	DeleteUser(ctx context.Context, id string) error

	CreateEmployee(ctx context.Context, input service.EmployeeInput) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, filters service.EmployeeListFilters) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, input service.EmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// OrgService covers departments and the holiday calendar.
type OrgService interface {
	CreateDepartment(ctx context.Context, input service.DepartmentInput) (*domain.Department, error)
	GetDepartment(ctx context.Context, id string) (*domain.Department, error)
	ListDepartments(ctx context.Context, filters service.DepartmentListFilters) ([]domain.Department, error)
	UpdateDepartment(ctx context.Context, id string, input service.DepartmentInput) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, input service.HolidayInput) (*domain.HolidayCalendar, error)
	GetHoliday(ctx context.Context, id string) (*domain.HolidayCalendar, error)
	ListHolidays(ctx context.Context, filters service.HolidayListFilters) ([]domain.HolidayCalendar, error)
	UpdateHoliday(ctx context.Context, id string, input service.HolidayInput) (*domain.HolidayCalendar, error)
	DeleteHoliday(ctx context.Context, id string) error
}

// AttendanceService covers attendance entries and leave requests.
type AttendanceService interface {
	RecordAttendance(ctx context.Context, input service.AttendanceInput) (*domain.Attendance, error)
	GetAttendance(ctx context.Context, id string) (*domain.Attendance, error)
	ListAttendance(ctx context.Context, filters service.AttendanceListFilters) ([]domain.Attendance, error)
	UpdateAttendance(ctx context.Context, id string, input service.AttendanceInput) (*domain.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error

	RequestLeave(ctx context.Context, input service.LeaveInput) (*domain.Leave, error)
	GetLeave(ctx context.Context, id string) (*domain.Leave, error)
	ListLeaves(ctx context.Context, filters service.LeaveListFilters) ([]domain.Leave, error)
	UpdateLeave(ctx context.Context, id string, input service.LeaveInput) (*domain.Leave, error)
	ApproveLeave(ctx context.Context, id string) (*domain.Leave, error)
	RejectLeave(ctx context.Context, id, reason string) (*domain.Leave, error)
	DeleteLeave(ctx context.Context, id string) error
}

// PayrollService manages payroll slips.
type PayrollService interface {
	CreatePayroll(ctx context.Context, input service.PayrollInput) (*domain.Payroll, error)
	GetPayroll(ctx context.Context, id string) (*domain.Payroll, error)
	ListPayrolls(ctx context.Context, filters service.PayrollListFilters) ([]domain.Payroll, error)
	UpdatePayroll(ctx context.Context, id string, input service.PayrollInput) (*domain.Payroll, error)
	RecalculatePayroll(ctx context.Context, id string) (*domain.Payroll, error)
	DeletePayroll(ctx context.Context, id string) error
}

// DocumentService manages uploaded documents.
type DocumentService interface {
	UploadDocument(ctx context.Context, userID, documentType string, upload service.DocumentUpload) (*domain.Document, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	ListDocuments(ctx context.Context, filters service.DocumentListFilters) ([]domain.Document, error)
	UpdateDocument(ctx context.Context, id, userID, documentType string, upload *service.DocumentUpload) (*domain.Document, error)
	OpenDocument(ctx context.Context, id string) (*domain.Document, io.ReadCloser, error)
	DeleteDocument(ctx context.Context, id string) error
}

// ReportService manages the three monthly report snapshots.
type ReportService interface {
	CreateAttendanceReport(ctx context.Context, report domain.AttendanceReport) (*domain.AttendanceReport, error)
	GenerateAttendanceReport(ctx context.Context, period domain.ReportPeriod) (*domain.AttendanceReport, error)
	GetAttendanceReport(ctx context.Context, id string) (*domain.AttendanceReport, error)
	ListAttendanceReports(ctx context.Context, filters service.ReportListFilters) ([]domain.AttendanceReport, error)
	UpdateAttendanceReport(ctx context.Context, id string, input domain.AttendanceReport) (*domain.AttendanceReport, error)
	DeleteAttendanceReport(ctx context.Context, id string) error

	CreateLeaveReport(ctx context.Context, report domain.LeaveReport) (*domain.LeaveReport, error)
	GenerateLeaveReport(ctx context.Context, period domain.ReportPeriod) (*domain.LeaveReport, error)
	GetLeaveReport(ctx context.Context, id string) (*domain.LeaveReport, error)
	ListLeaveReports(ctx context.Context, filters service.ReportListFilters) ([]domain.LeaveReport, error)
	UpdateLeaveReport(ctx context.Context, id string, input domain.LeaveReport) (*domain.LeaveReport, error)
	DeleteLeaveReport(ctx context.Context, id string) error

	CreatePayrollReport(ctx context.Context, report domain.PayrollReport) (*domain.PayrollReport, error)
	GeneratePayrollReport(ctx context.Context, period domain.ReportPeriod) (*domain.PayrollReport, error)
	GetPayrollReport(ctx context.Context, id string) (*domain.PayrollReport, error)
	ListPayrollReports(ctx context.Context, filters service.ReportListFilters) ([]domain.PayrollReport, error)
	UpdatePayrollReport(ctx context.Context, id string, input domain.PayrollReport) (*domain.PayrollReport, error)
	DeletePayrollReport(ctx context.Context, id string) error
}

// AdminLogService reads the admin action log.
type AdminLogService interface {
	ListEntries(ctx context.Context, filters service.AdminLogFilters) ([]domain.AdminLogEntry, error)
}

var (
	_ PeopleService     = (*service.PeopleService)(nil)
	_ OrgService        = (*service.OrgService)(nil)
	_ AttendanceService = (*service.AttendanceService)(nil)
	_ PayrollService    = (*service.PayrollService)(nil)
	_ DocumentService   = (*service.DocumentService)(nil)
	_ ReportService     = (*service.ReportService)(nil)
	_ AdminLogService   = (*service.AuditService)(nil)
)
