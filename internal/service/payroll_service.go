package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// PayrollService stores payroll slips and recomputes their salary on every save.
type PayrollService struct {
	payrolls   repository.PayrollRepository
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	users      repository.UserRepository
	metrics    *observability.Metrics
	recorder   recorder
}

// PayrollDependencies bundles repositories for the payroll service.
type PayrollDependencies struct {
	PayrollRepo    repository.PayrollRepository
	EmployeeRepo   repository.EmployeeRepository
	AttendanceRepo repository.AttendanceRepository
	UserRepo       repository.UserRepository
	Metrics        *observability.Metrics
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewPayrollService constructs the service.
func NewPayrollService(deps PayrollDependencies) *PayrollService {
	return &PayrollService{
		payrolls:   deps.PayrollRepo,
		employees:  deps.EmployeeRepo,
		attendance: deps.AttendanceRepo,
		users:      deps.UserRepo,
		metrics:    deps.Metrics,
		recorder:   newRecorder(deps.Dispatcher, deps.Logger),
	}
}

// PayrollInput carries the editable payroll fields. The salary is always derived.
type PayrollInput struct {
	UserID    string
	Year      int
	Month     int
	StartDate time.Time
	EndDate   time.Time
}

// PayrollListFilters define listing parameters.
type PayrollListFilters = repository.PayrollFilter

func (in PayrollInput) validate() error {
	details := map[string]any{}
	if in.Month < 1 || in.Month > 12 {
		details["month"] = "must be between 1 and 12"
	}
	if in.Year < 1 {
		details["year"] = "must be positive"
	}
	if in.EndDate.Before(in.StartDate) {
		details["end_date"] = "must not be before start_date"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid payroll period", details)
	}
	return nil
}

// computeSalary sets payroll.Salary from the user's monthly salary and attendance.
// Every attendance record of the user counts, not only the payroll period.
func (s *PayrollService) computeSalary(ctx context.Context, payroll *domain.Payroll) error {
	emp, err := s.employees.GetByUserID(ctx, payroll.UserID)
	if apperrors.IsNotFound(err) {
		return apperrors.NewValidationError("user has no employee profile", map[string]any{"user_id": payroll.UserID})
	}
	if err != nil {
		return apperrors.MapError(err)
	}
	counts, err := s.attendance.CountByUser(ctx, payroll.UserID, nil, nil)
	if err != nil {
		return apperrors.MapError(err)
	}
	salary := domain.CalculateSalary(emp.MonthlySalary, counts)
	if !domain.AmountFits(salary) {
		return apperrors.NewValidationError("computed salary is out of range",
			map[string]any{"salary": salary.String(), "max": domain.MaxAmount.String()})
	}
	payroll.Salary = salary
	s.metrics.RecordPayrollSaved()
	return nil
}

// CreatePayroll stores a payroll slip with a computed salary.
func (s *PayrollService) CreatePayroll(ctx context.Context, input PayrollInput) (*domain.Payroll, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, err := lookupUser(ctx, s.users, input.UserID); err != nil {
		return nil, err
	}
	payroll := &domain.Payroll{
		UserID:    input.UserID,
		Year:      input.Year,
		Month:     input.Month,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.computeSalary(ctx, payroll); err != nil {
		return nil, err
	}
	if err := s.payrolls.Create(ctx, payroll); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourcePayrolls, payroll.ID, payroll.String())
	return payroll, nil
}

// GetPayroll fetches a payroll slip.
func (s *PayrollService) GetPayroll(ctx context.Context, id string) (*domain.Payroll, error) {
	payroll, err := s.payrolls.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "payroll", id)
	}
	return payroll, nil
}

// ListPayrolls lists payroll slips.
func (s *PayrollService) ListPayrolls(ctx context.Context, filters PayrollListFilters) ([]domain.Payroll, error) {
	payrolls, err := s.payrolls.List(ctx, filters)
	return payrolls, apperrors.MapError(err)
}

// UpdatePayroll replaces the period fields and recomputes the salary.
func (s *PayrollService) UpdatePayroll(ctx context.Context, id string, input PayrollInput) (*domain.Payroll, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	payroll, err := s.GetPayroll(ctx, id)
	if err != nil {
		return nil, err
	}
	if payroll.UserID != input.UserID {
		if _, err := lookupUser(ctx, s.users, input.UserID); err != nil {
			return nil, err
		}
	}
	before := *payroll
	payroll.UserID = input.UserID
	payroll.Year = input.Year
	payroll.Month = input.Month
	payroll.StartDate = input.StartDate
	payroll.EndDate = input.EndDate
	return s.save(ctx, &before, payroll)
}

// RecalculatePayroll re-saves a payroll slip so its salary reflects current data.
func (s *PayrollService) RecalculatePayroll(ctx context.Context, id string) (*domain.Payroll, error) {
	payroll, err := s.GetPayroll(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *payroll
	return s.save(ctx, &before, payroll)
}

func (s *PayrollService) save(ctx context.Context, before, payroll *domain.Payroll) (*domain.Payroll, error) {
	if err := s.computeSalary(ctx, payroll); err != nil {
		return nil, err
	}

	var diff fieldDiff
	diff.check("user", before.UserID != payroll.UserID)
	diff.check("year", before.Year != payroll.Year)
	diff.check("month", before.Month != payroll.Month)
	diff.check("start_date", !before.StartDate.Equal(payroll.StartDate))
	diff.check("end_date", !before.EndDate.Equal(payroll.EndDate))
	diff.check("salary", !before.Salary.Equal(payroll.Salary))

	if err := s.payrolls.Update(ctx, payroll); err != nil {
		return nil, apperrors.MapNotFound(err, "payroll", payroll.ID)
	}
	s.recorder.updated(ctx, domain.ResourcePayrolls, payroll.ID, payroll.String(), diff)
	return payroll, nil
}

// DeletePayroll removes a payroll slip.
func (s *PayrollService) DeletePayroll(ctx context.Context, id string) error {
	payroll, err := s.GetPayroll(ctx, id)
	if err != nil {
		return err
	}
	if err := s.payrolls.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "payroll", id)
	}
	s.recorder.deleted(ctx, domain.ResourcePayrolls, payroll.ID, payroll.String())
	return nil
}
