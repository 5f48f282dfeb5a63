package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// ReportService stores monthly report snapshots and builds them from live data.
type ReportService struct {
	attendanceReports repository.AttendanceReportRepository
	leaveReports      repository.LeaveReportRepository
	payrollReports    repository.PayrollReportRepository
	attendance        repository.AttendanceRepository
	leaves            repository.LeaveRepository
	payrolls          repository.PayrollRepository
	users             repository.UserRepository
	recorder          recorder
}

// ReportDependencies bundles repositories for the report service.
type ReportDependencies struct {
	AttendanceReportRepo repository.AttendanceReportRepository
	LeaveReportRepo      repository.LeaveReportRepository
	PayrollReportRepo    repository.PayrollReportRepository
	AttendanceRepo       repository.AttendanceRepository
	LeaveRepo            repository.LeaveRepository
	PayrollRepo          repository.PayrollRepository
	UserRepo             repository.UserRepository
	Dispatcher           events.Dispatcher
	Logger               *zap.Logger
}

// NewReportService constructs the service.
func NewReportService(deps ReportDependencies) *ReportService {
	return &ReportService{
		attendanceReports: deps.AttendanceReportRepo,
		leaveReports:      deps.LeaveReportRepo,
		payrollReports:    deps.PayrollReportRepo,
		attendance:        deps.AttendanceRepo,
		leaves:            deps.LeaveRepo,
		payrolls:          deps.PayrollRepo,
		users:             deps.UserRepo,
		recorder:          newRecorder(deps.Dispatcher, deps.Logger),
	}
}

// ReportListFilters define listing parameters.
type ReportListFilters = repository.ReportFilter

func (s *ReportService) checkPeriod(ctx context.Context, period domain.ReportPeriod) error {
	if period.Month < 1 || period.Month > 12 {
		return apperrors.NewValidationError("invalid report period", map[string]any{"month": "must be between 1 and 12"})
	}
	if period.Year < 1 {
		return apperrors.NewValidationError("invalid report period", map[string]any{"year": "must be positive"})
	}
	_, err := lookupUser(ctx, s.users, period.UserID)
	return err
}

func checkTotals(totals map[string]int) error {
	details := map[string]any{}
	for field, value := range totals {
		if value < 0 {
			details[field] = "cannot be negative"
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid report totals", details)
	}
	return nil
}

func periodDiff(diff *fieldDiff, before, after domain.ReportPeriod) {
	diff.check("user", before.UserID != after.UserID)
	diff.check("month", before.Month != after.Month)
	diff.check("year", before.Year != after.Year)
}

// CreateAttendanceReport stores an attendance snapshot as given.
func (s *ReportService) CreateAttendanceReport(ctx context.Context, report domain.AttendanceReport) (*domain.AttendanceReport, error) {
	if err := s.checkPeriod(ctx, report.ReportPeriod); err != nil {
		return nil, err
	}
	if err := checkTotals(map[string]int{
		"total_present": report.TotalPresent,
		"total_absent":  report.TotalAbsent,
		"total_leave":   report.TotalLeave,
	}); err != nil {
		return nil, err
	}
	if err := s.attendanceReports.Create(ctx, &report); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceAttendanceReports, report.ID, report.String())
	return &report, nil
}

// GenerateAttendanceReport counts the user's attendance flags within the month.
func (s *ReportService) GenerateAttendanceReport(ctx context.Context, period domain.ReportPeriod) (*domain.AttendanceReport, error) {
	if err := s.checkPeriod(ctx, period); err != nil {
		return nil, err
	}
	from, to := period.Bounds()
	counts, err := s.attendance.CountByUser(ctx, period.UserID, &from, &to)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.CreateAttendanceReport(ctx, domain.AttendanceReport{
		ReportPeriod: period,
		TotalPresent: counts.Present,
		TotalAbsent:  counts.Absent,
		TotalLeave:   counts.Leave,
	})
}

// GetAttendanceReport fetches an attendance snapshot.
func (s *ReportService) GetAttendanceReport(ctx context.Context, id string) (*domain.AttendanceReport, error) {
	report, err := s.attendanceReports.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "attendance report", id)
	}
	return report, nil
}

// ListAttendanceReports lists attendance snapshots.
func (s *ReportService) ListAttendanceReports(ctx context.Context, filters ReportListFilters) ([]domain.AttendanceReport, error) {
	reports, err := s.attendanceReports.List(ctx, filters)
	return reports, apperrors.MapError(err)
}

// UpdateAttendanceReport replaces an attendance snapshot.
func (s *ReportService) UpdateAttendanceReport(ctx context.Context, id string, input domain.AttendanceReport) (*domain.AttendanceReport, error) {
	report, err := s.GetAttendanceReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPeriod(ctx, input.ReportPeriod); err != nil {
		return nil, err
	}
	if err := checkTotals(map[string]int{
		"total_present": input.TotalPresent,
		"total_absent":  input.TotalAbsent,
		"total_leave":   input.TotalLeave,
	}); err != nil {
		return nil, err
	}

	var diff fieldDiff
	periodDiff(&diff, report.ReportPeriod, input.ReportPeriod)
	diff.check("total_present", report.TotalPresent != input.TotalPresent)
	diff.check("total_absent", report.TotalAbsent != input.TotalAbsent)
	diff.check("total_leave", report.TotalLeave != input.TotalLeave)

	report.ReportPeriod = input.ReportPeriod
	report.TotalPresent = input.TotalPresent
	report.TotalAbsent = input.TotalAbsent
	report.TotalLeave = input.TotalLeave
	if err := s.attendanceReports.Update(ctx, report); err != nil {
		return nil, apperrors.MapNotFound(err, "attendance report", id)
	}
	s.recorder.updated(ctx, domain.ResourceAttendanceReports, report.ID, report.String(), diff)
	return report, nil
}

// DeleteAttendanceReport removes an attendance snapshot.
func (s *ReportService) DeleteAttendanceReport(ctx context.Context, id string) error {
	report, err := s.GetAttendanceReport(ctx, id)
	if err != nil {
		return err
	}
	if err := s.attendanceReports.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "attendance report", id)
	}
	s.recorder.deleted(ctx, domain.ResourceAttendanceReports, report.ID, report.String())
	return nil
}

// CreateLeaveReport stores a leave snapshot as given.
func (s *ReportService) CreateLeaveReport(ctx context.Context, report domain.LeaveReport) (*domain.LeaveReport, error) {
	if err := s.checkPeriod(ctx, report.ReportPeriod); err != nil {
		return nil, err
	}
	if err := checkTotals(map[string]int{"total_leaves": report.TotalLeaves}); err != nil {
		return nil, err
	}
	if err := s.leaveReports.Create(ctx, &report); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceLeaveReports, report.ID, report.String())
	return &report, nil
}

// GenerateLeaveReport counts accepted leave requests raised within the month.
func (s *ReportService) GenerateLeaveReport(ctx context.Context, period domain.ReportPeriod) (*domain.LeaveReport, error) {
	if err := s.checkPeriod(ctx, period); err != nil {
		return nil, err
	}
	from, to := period.Bounds()
	total, err := s.leaves.CountAccepted(ctx, period.UserID, from, to)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.CreateLeaveReport(ctx, domain.LeaveReport{ReportPeriod: period, TotalLeaves: total})
}

// GetLeaveReport fetches a leave snapshot.
func (s *ReportService) GetLeaveReport(ctx context.Context, id string) (*domain.LeaveReport, error) {
	report, err := s.leaveReports.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "leave report", id)
	}
	return report, nil
}

// ListLeaveReports lists leave snapshots.
func (s *ReportService) ListLeaveReports(ctx context.Context, filters ReportListFilters) ([]domain.LeaveReport, error) {
	reports, err := s.leaveReports.List(ctx, filters)
	return reports, apperrors.MapError(err)
}

// UpdateLeaveReport replaces a leave snapshot.
func (s *ReportService) UpdateLeaveReport(ctx context.Context, id string, input domain.LeaveReport) (*domain.LeaveReport, error) {
	report, err := s.GetLeaveReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPeriod(ctx, input.ReportPeriod); err != nil {
		return nil, err
	}
	if err := checkTotals(map[string]int{"total_leaves": input.TotalLeaves}); err != nil {
		return nil, err
	}

	var diff fieldDiff
	periodDiff(&diff, report.ReportPeriod, input.ReportPeriod)
	diff.check("total_leaves", report.TotalLeaves != input.TotalLeaves)

	report.ReportPeriod = input.ReportPeriod
	report.TotalLeaves = input.TotalLeaves
	if err := s.leaveReports.Update(ctx, report); err != nil {
		return nil, apperrors.MapNotFound(err, "leave report", id)
	}
	s.recorder.updated(ctx, domain.ResourceLeaveReports, report.ID, report.String(), diff)
	return report, nil
}

// DeleteLeaveReport removes a leave snapshot.
func (s *ReportService) DeleteLeaveReport(ctx context.Context, id string) error {
	report, err := s.GetLeaveReport(ctx, id)
	if err != nil {
		return err
	}
	if err := s.leaveReports.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "leave report", id)
	}
	s.recorder.deleted(ctx, domain.ResourceLeaveReports, report.ID, report.String())
	return nil
}

// CreatePayrollReport stores a payroll snapshot as given.
func (s *ReportService) CreatePayrollReport(ctx context.Context, report domain.PayrollReport) (*domain.PayrollReport, error) {
	if err := s.checkPeriod(ctx, report.ReportPeriod); err != nil {
		return nil, err
	}
	if err := checkTotalSalary(report.TotalSalary); err != nil {
		return nil, err
	}
	report.TotalSalary = report.TotalSalary.Round(2)
	if err := s.payrollReports.Create(ctx, &report); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourcePayrollReports, report.ID, report.String())
	return &report, nil
}

func checkTotalSalary(total decimal.Decimal) error {
	if total.IsNegative() {
		return apperrors.NewValidationError("invalid report totals", map[string]any{"total_salary": "cannot be negative"})
	}
	if !domain.AmountFits(total) {
		return apperrors.NewValidationError("invalid report totals", map[string]any{"total_salary": "out of range"})
	}
	return nil
}

// GeneratePayrollReport sums the user's payroll salaries for the year and month.
func (s *ReportService) GeneratePayrollReport(ctx context.Context, period domain.ReportPeriod) (*domain.PayrollReport, error) {
	if err := s.checkPeriod(ctx, period); err != nil {
		return nil, err
	}
	total, err := s.payrolls.SumSalary(ctx, period.UserID, period.Year, period.Month)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.CreatePayrollReport(ctx, domain.PayrollReport{ReportPeriod: period, TotalSalary: total})
}

// GetPayrollReport fetches a payroll snapshot.
func (s *ReportService) GetPayrollReport(ctx context.Context, id string) (*domain.PayrollReport, error) {
	report, err := s.payrollReports.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "payroll report", id)
	}
	return report, nil
}

// ListPayrollReports lists payroll snapshots.
func (s *ReportService) ListPayrollReports(ctx context.Context, filters ReportListFilters) ([]domain.PayrollReport, error) {
	reports, err := s.payrollReports.List(ctx, filters)
	return reports, apperrors.MapError(err)
}

// UpdatePayrollReport replaces a payroll snapshot.
func (s *ReportService) UpdatePayrollReport(ctx context.Context, id string, input domain.PayrollReport) (*domain.PayrollReport, error) {
	report, err := s.GetPayrollReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPeriod(ctx, input.ReportPeriod); err != nil {
		return nil, err
	}
	if err := checkTotalSalary(input.TotalSalary); err != nil {
		return nil, err
	}
	total := input.TotalSalary.Round(2)

	var diff fieldDiff
	periodDiff(&diff, report.ReportPeriod, input.ReportPeriod)
	diff.check("total_salary", !report.TotalSalary.Equal(total))

	report.ReportPeriod = input.ReportPeriod
	report.TotalSalary = total
	if err := s.payrollReports.Update(ctx, report); err != nil {
		return nil, apperrors.MapNotFound(err, "payroll report", id)
	}
	s.recorder.updated(ctx, domain.ResourcePayrollReports, report.ID, report.String(), diff)
	return report, nil
}

// DeletePayrollReport removes a payroll snapshot.
func (s *ReportService) DeletePayrollReport(ctx context.Context, id string) error {
	report, err := s.GetPayrollReport(ctx, id)
	if err != nil {
		return err
	}
	if err := s.payrollReports.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "payroll report", id)
	}
	s.recorder.deleted(ctx, domain.ResourcePayrollReports, report.ID, report.String())
	return nil
}
