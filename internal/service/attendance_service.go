package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AttendanceService manages daily attendance and leave requests.
type AttendanceService struct {
	attendance repository.AttendanceRepository
	leaves     repository.LeaveRepository
	users      repository.UserRepository
	recorder   recorder
}

// AttendanceDependencies bundles repositories for the attendance service.
type AttendanceDependencies struct {
	AttendanceRepo repository.AttendanceRepository
	LeaveRepo      repository.LeaveRepository
	UserRepo       repository.UserRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewAttendanceService constructs the service.
func NewAttendanceService(deps AttendanceDependencies) *AttendanceService {
	return &AttendanceService{
		attendance: deps.AttendanceRepo,
		leaves:     deps.LeaveRepo,
		users:      deps.UserRepo,
		recorder:   newRecorder(deps.Dispatcher, deps.Logger),
	}
}

// AttendanceInput carries the editable attendance fields.
type AttendanceInput struct {
	UserID    string
	Date      time.Time
	InTime    *domain.TimeOfDay
	OutTime   *domain.TimeOfDay
	IsPresent bool
	IsAbsent  bool
	OnLeave   bool
}

// AttendanceListFilters define listing parameters.
type AttendanceListFilters = repository.AttendanceFilter

func (in AttendanceInput) apply(att *domain.Attendance) {
	att.UserID = in.UserID
	att.Date = in.Date
	att.InTime = in.InTime
	att.OutTime = in.OutTime
	att.IsPresent = in.IsPresent
	att.IsAbsent = in.IsAbsent
	att.OnLeave = in.OnLeave
}

// RecordAttendance creates an attendance entry.
func (s *AttendanceService) RecordAttendance(ctx context.Context, input AttendanceInput) (*domain.Attendance, error) {
	user, err := lookupUser(ctx, s.users, input.UserID)
	if err != nil {
		return nil, err
	}
	att := &domain.Attendance{Username: user.Username}
	input.apply(att)
	if err := s.attendance.Create(ctx, att); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceAttendances, att.ID, att.String())
	return att, nil
}

// GetAttendance fetches an attendance entry.
func (s *AttendanceService) GetAttendance(ctx context.Context, id string) (*domain.Attendance, error) {
	att, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "attendance", id)
	}
	return att, nil
}

// ListAttendance lists attendance entries.
func (s *AttendanceService) ListAttendance(ctx context.Context, filters AttendanceListFilters) ([]domain.Attendance, error) {
	entries, err := s.attendance.List(ctx, filters)
	return entries, apperrors.MapError(err)
}

// UpdateAttendance replaces an attendance entry.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, id string, input AttendanceInput) (*domain.Attendance, error) {
	att, err := s.GetAttendance(ctx, id)
	if err != nil {
		return nil, err
	}
	if att.UserID != input.UserID {
		user, err := lookupUser(ctx, s.users, input.UserID)
		if err != nil {
			return nil, err
		}
		att.Username = user.Username
	}

	var diff fieldDiff
	diff.check("user", att.UserID != input.UserID)
	diff.check("date", !att.Date.Equal(input.Date))
	diff.check("in_time", !equalTimeOfDay(att.InTime, input.InTime))
	diff.check("out_time", !equalTimeOfDay(att.OutTime, input.OutTime))
	diff.check("is_present", att.IsPresent != input.IsPresent)
	diff.check("is_absent", att.IsAbsent != input.IsAbsent)
	diff.check("on_leave", att.OnLeave != input.OnLeave)

	input.apply(att)
	if err := s.attendance.Update(ctx, att); err != nil {
		return nil, apperrors.MapNotFound(err, "attendance", id)
	}
	s.recorder.updated(ctx, domain.ResourceAttendances, att.ID, att.String(), diff)
	return att, nil
}

// DeleteAttendance removes an attendance entry.
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	att, err := s.GetAttendance(ctx, id)
	if err != nil {
		return err
	}
	if err := s.attendance.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "attendance", id)
	}
	s.recorder.deleted(ctx, domain.ResourceAttendances, att.ID, att.String())
	return nil
}

// LeaveInput carries the editable leave fields.
type LeaveInput struct {
	UserID             string
	LeaveType          string
	Reason             string
	IsAccepted         bool
	IsRejected         bool
	ReasonForRejecting *string
}

// LeaveListFilters define listing parameters.
type LeaveListFilters = repository.LeaveFilter

func (in LeaveInput) apply(leave *domain.Leave) error {
	leave.UserID = in.UserID
	leave.LeaveType = strings.TrimSpace(in.LeaveType)
	leave.Reason = in.Reason
	leave.IsAccepted = in.IsAccepted
	leave.IsRejected = in.IsRejected
	leave.ReasonForRejecting = in.ReasonForRejecting
	return validateLeave(*leave)
}

func validateLeave(leave domain.Leave) error {
	if err := leave.Validate(); err != nil {
		if errors.Is(err, domain.ErrLeaveDecisionConflict) {
			return apperrors.NewValidationError(err.Error(), map[string]any{"fields": []string{"is_accepted", "is_rejected"}})
		}
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return nil
}

// RequestLeave creates a leave request.
func (s *AttendanceService) RequestLeave(ctx context.Context, input LeaveInput) (*domain.Leave, error) {
	if _, err := lookupUser(ctx, s.users, input.UserID); err != nil {
		return nil, err
	}
	leave := &domain.Leave{}
	if err := input.apply(leave); err != nil {
		return nil, err
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceLeaves, leave.ID, leave.String())
	return leave, nil
}

// GetLeave fetches a leave request.
func (s *AttendanceService) GetLeave(ctx context.Context, id string) (*domain.Leave, error) {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "leave", id)
	}
	return leave, nil
}

// ListLeaves lists leave requests.
func (s *AttendanceService) ListLeaves(ctx context.Context, filters LeaveListFilters) ([]domain.Leave, error) {
	leaves, err := s.leaves.List(ctx, filters)
	return leaves, apperrors.MapError(err)
}

// UpdateLeave replaces a leave request.
func (s *AttendanceService) UpdateLeave(ctx context.Context, id string, input LeaveInput) (*domain.Leave, error) {
	leave, err := s.GetLeave(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave.UserID != input.UserID {
		if _, err := lookupUser(ctx, s.users, input.UserID); err != nil {
			return nil, err
		}
	}
	before := *leave
	if err := input.apply(leave); err != nil {
		return nil, err
	}

	var diff fieldDiff
	diff.check("user", before.UserID != leave.UserID)
	diff.check("leave_type", before.LeaveType != leave.LeaveType)
	diff.check("reason", before.Reason != leave.Reason)
	diff.check("is_accepted", before.IsAccepted != leave.IsAccepted)
	diff.check("is_rejected", before.IsRejected != leave.IsRejected)
	diff.check("reason_for_rejecting", !equalStringPtr(before.ReasonForRejecting, leave.ReasonForRejecting))

	return s.saveLeave(ctx, leave, diff)
}

// ApproveLeave accepts a leave request and clears any rejection.
func (s *AttendanceService) ApproveLeave(ctx context.Context, id string) (*domain.Leave, error) {
	leave, err := s.GetLeave(ctx, id)
	if err != nil {
		return nil, err
	}
	leave.Accept()
	return s.saveLeave(ctx, leave, []string{"is_accepted", "is_rejected", "reason_for_rejecting"})
}

// RejectLeave rejects a leave request with an optional reason.
func (s *AttendanceService) RejectLeave(ctx context.Context, id, reason string) (*domain.Leave, error) {
	leave, err := s.GetLeave(ctx, id)
	if err != nil {
		return nil, err
	}
	leave.Reject(strings.TrimSpace(reason))
	return s.saveLeave(ctx, leave, []string{"is_accepted", "is_rejected", "reason_for_rejecting"})
}

func (s *AttendanceService) saveLeave(ctx context.Context, leave *domain.Leave, fields []string) (*domain.Leave, error) {
	if err := validateLeave(*leave); err != nil {
		return nil, err
	}
	if err := s.leaves.Update(ctx, leave); err != nil {
		return nil, apperrors.MapNotFound(err, "leave", leave.ID)
	}
	s.recorder.updated(ctx, domain.ResourceLeaves, leave.ID, leave.String(), fields)
	return leave, nil
}

// DeleteLeave removes a leave request.
func (s *AttendanceService) DeleteLeave(ctx context.Context, id string) error {
	leave, err := s.GetLeave(ctx, id)
	if err != nil {
		return err
	}
	if err := s.leaves.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "leave", id)
	}
	s.recorder.deleted(ctx, domain.ResourceLeaves, leave.ID, leave.String())
	return nil
}

func equalTimeOfDay(a, b *domain.TimeOfDay) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
