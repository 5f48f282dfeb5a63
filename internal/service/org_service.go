package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// OrgService manages departments and the holiday calendar.
type OrgService struct {
	departments repository.DepartmentRepository
	holidays    repository.HolidayRepository
	users       repository.UserRepository
	recorder    recorder
}

// OrgDependencies encapsulates repositories required for org management.
type OrgDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	HolidayRepo    repository.HolidayRepository
	UserRepo       repository.UserRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewOrgService constructs the service.
func NewOrgService(deps OrgDependencies) *OrgService {
	return &OrgService{
		departments: deps.DepartmentRepo,
		holidays:    deps.HolidayRepo,
		users:       deps.UserRepo,
		recorder:    newRecorder(deps.Dispatcher, deps.Logger),
	}
}

// DepartmentInput carries the editable department fields.
type DepartmentInput struct {
	Name             string
	Description      string
	DepartmentHeadID *string
}

// DepartmentListFilters define listing parameters.
type DepartmentListFilters = repository.DepartmentFilter

func (s *OrgService) checkHead(ctx context.Context, headID *string) error {
	if headID == nil {
		return nil
	}
	_, err := lookupUser(ctx, s.users, *headID)
	return err
}

// CreateDepartment creates a new department.
func (s *OrgService) CreateDepartment(ctx context.Context, input DepartmentInput) (*domain.Department, error) {
	if err := s.checkHead(ctx, input.DepartmentHeadID); err != nil {
		return nil, err
	}
	dept := &domain.Department{
		Name:             strings.TrimSpace(input.Name),
		Description:      input.Description,
		DepartmentHeadID: input.DepartmentHeadID,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceDepartments, dept.ID, dept.String())
	return dept, nil
}

// GetDepartment fetches a department with its employee count.
func (s *OrgService) GetDepartment(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "department", id)
	}
	return dept, nil
}

// ListDepartments lists departments.
func (s *OrgService) ListDepartments(ctx context.Context, filters DepartmentListFilters) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx, filters)
	return depts, apperrors.MapError(err)
}

// UpdateDepartment modifies department metadata.
func (s *OrgService) UpdateDepartment(ctx context.Context, id string, input DepartmentInput) (*domain.Department, error) {
	dept, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !equalStringPtr(dept.DepartmentHeadID, input.DepartmentHeadID) {
		if err := s.checkHead(ctx, input.DepartmentHeadID); err != nil {
			return nil, err
		}
	}
	name := strings.TrimSpace(input.Name)

	var diff fieldDiff
	diff.check("name", dept.Name != name)
	diff.check("description", dept.Description != input.Description)
	diff.check("department_head", !equalStringPtr(dept.DepartmentHeadID, input.DepartmentHeadID))

	dept.Name = name
	dept.Description = input.Description
	dept.DepartmentHeadID = input.DepartmentHeadID
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, apperrors.MapNotFound(err, "department", id)
	}
	s.recorder.updated(ctx, domain.ResourceDepartments, dept.ID, dept.String(), diff)
	return dept, nil
}

// DeleteDepartment removes a department; its employees keep their profile without one.
func (s *OrgService) DeleteDepartment(ctx context.Context, id string) error {
	dept, err := s.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "department", id)
	}
	s.recorder.deleted(ctx, domain.ResourceDepartments, dept.ID, dept.String())
	return nil
}

// HolidayInput carries the editable holiday fields.
type HolidayInput struct {
	Date     time.Time
	Occasion string
}

// HolidayListFilters define listing parameters.
type HolidayListFilters = repository.HolidayFilter

// CreateHoliday adds a calendar entry.
func (s *OrgService) CreateHoliday(ctx context.Context, input HolidayInput) (*domain.HolidayCalendar, error) {
	holiday := &domain.HolidayCalendar{Date: input.Date, Occasion: strings.TrimSpace(input.Occasion)}
	if err := s.holidays.Create(ctx, holiday); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceHolidays, holiday.ID, holiday.String())
	return holiday, nil
}

// GetHoliday fetches a calendar entry.
func (s *OrgService) GetHoliday(ctx context.Context, id string) (*domain.HolidayCalendar, error) {
	holiday, err := s.holidays.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "holiday", id)
	}
	return holiday, nil
}

// ListHolidays lists calendar entries.
func (s *OrgService) ListHolidays(ctx context.Context, filters HolidayListFilters) ([]domain.HolidayCalendar, error) {
	holidays, err := s.holidays.List(ctx, filters)
	return holidays, apperrors.MapError(err)
}

// UpdateHoliday modifies a calendar entry.
func (s *OrgService) UpdateHoliday(ctx context.Context, id string, input HolidayInput) (*domain.HolidayCalendar, error) {
	holiday, err := s.GetHoliday(ctx, id)
	if err != nil {
		return nil, err
	}
	occasion := strings.TrimSpace(input.Occasion)

	var diff fieldDiff
	diff.check("date", !holiday.Date.Equal(input.Date))
	diff.check("occasion", holiday.Occasion != occasion)

	holiday.Date = input.Date
	holiday.Occasion = occasion
	if err := s.holidays.Update(ctx, holiday); err != nil {
		return nil, apperrors.MapNotFound(err, "holiday", id)
	}
	s.recorder.updated(ctx, domain.ResourceHolidays, holiday.ID, holiday.String(), diff)
	return holiday, nil
}

// DeleteHoliday removes a calendar entry.
func (s *OrgService) DeleteHoliday(ctx context.Context, id string) error {
	holiday, err := s.GetHoliday(ctx, id)
	if err != nil {
		return err
	}
	if err := s.holidays.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "holiday", id)
	}
	s.recorder.deleted(ctx, domain.ResourceHolidays, holiday.ID, holiday.String())
	return nil
}
