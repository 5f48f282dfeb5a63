package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// PeopleService manages user accounts and employee profiles.
type PeopleService struct {
	users      repository.UserRepository
	employees  repository.EmployeeRepository
	recorder   recorder
	bcryptCost int
}

// PeopleDependencies bundles repositories for the people service.
type PeopleDependencies struct {
	UserRepo     repository.UserRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewPeopleService constructs the service.
func NewPeopleService(cfg config.Config, deps PeopleDependencies) *PeopleService {
	return &PeopleService{
		users:      deps.UserRepo,
		employees:  deps.EmployeeRepo,
		recorder:   newRecorder(deps.Dispatcher, deps.Logger),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// UserInput carries the editable user fields.
type UserInput struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        domain.UserRole
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
}

// UserListFilters define listing parameters.
type UserListFilters = repository.UserFilter

func (in UserInput) normalize() (UserInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Role == "" {
		in.Role = domain.UserRoleEmployee
	}
	if !in.Role.Valid() {
		return in, apperrors.NewValidationError("invalid role", map[string]any{"role": in.Role})
	}
	return in, nil
}

// CreateUser stores a new user with a hashed password.
func (s *PeopleService) CreateUser(ctx context.Context, input UserInput, password string) (*domain.User, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "password"})
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		IsActive:     input.IsActive,
		IsStaff:      input.IsStaff,
		IsSuperuser:  input.IsSuperuser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceUsers, user.ID, user.String())
	return user, nil
}

// GetUser fetches a user.
func (s *PeopleService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "user", id)
	}
	return user, nil
}

// ListUsers lists users.
func (s *PeopleService) ListUsers(ctx context.Context, filters UserListFilters) ([]domain.User, error) {
	users, err := s.users.List(ctx, filters)
	return users, apperrors.MapError(err)
}

// UpdateUser replaces the editable fields of a user. The password is left untouched.
func (s *PeopleService) UpdateUser(ctx context.Context, id string, input UserInput) (*domain.User, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	var diff fieldDiff
	diff.check("username", user.Username != input.Username)
	diff.check("email", user.Email != input.Email)
	diff.check("first_name", user.FirstName != input.FirstName)
	diff.check("last_name", user.LastName != input.LastName)
	diff.check("role", user.Role != input.Role)
	diff.check("is_active", user.IsActive != input.IsActive)
	diff.check("is_staff", user.IsStaff != input.IsStaff)
	diff.check("is_superuser", user.IsSuperuser != input.IsSuperuser)

	user.Username = input.Username
	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Role = input.Role
	user.IsActive = input.IsActive
	user.IsStaff = input.IsStaff
	user.IsSuperuser = input.IsSuperuser

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapNotFound(err, "user", id)
	}
	s.recorder.updated(ctx, domain.ResourceUsers, user.ID, user.String(), diff)
	return user, nil
}

// SetUserPassword stores a new password hash.
func (s *PeopleService) SetUserPassword(ctx context.Context, id, password string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), map[string]any{"field": "password"})
	}
	if err := s.users.SetPassword(ctx, id, hash); err != nil {
		return apperrors.MapNotFound(err, "user", id)
	}
	s.recorder.updated(ctx, domain.ResourceUsers, user.ID, user.String(), []string{"password"})
	return nil
}

// DeleteUser removes a user; dependent records cascade.
func (s *PeopleService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "user", id)
	}
	s.recorder.deleted(ctx, domain.ResourceUsers, user.ID, user.String())
	return nil
}

// EmployeeInput carries the editable employee fields. MonthlySalary is required.
// A nil IsFresher or LeaveBalance selects the default on create and keeps the
// stored value on update.
type EmployeeInput struct {
	UserID            string
	Address           map[string]any
	Contact           string
	DepartmentID      *string
	Position          string
	YearsOfExperience int
	IsFresher         *bool
	Skills            []any
	MonthlySalary     *decimal.Decimal
	PaymentDetails    map[string]any
	LeaveBalance      *int
}

// EmployeeListFilters define listing parameters.
type EmployeeListFilters = repository.EmployeeFilter

func (in EmployeeInput) apply(emp *domain.Employee) error {
	if in.MonthlySalary == nil {
		return apperrors.NewValidationError("monthly salary is required", map[string]any{"field": "monthly_salary"})
	}
	if in.MonthlySalary.IsNegative() {
		return apperrors.NewValidationError("monthly salary cannot be negative", map[string]any{"field": "monthly_salary"})
	}
	if !domain.AmountFits(*in.MonthlySalary) {
		return apperrors.NewValidationError("monthly salary is out of range",
			map[string]any{"field": "monthly_salary", "max": domain.MaxAmount.String()})
	}
	if in.YearsOfExperience < 0 {
		return apperrors.NewValidationError("years of experience cannot be negative", map[string]any{"field": "years_of_experience"})
	}
	emp.UserID = in.UserID
	emp.Contact = in.Contact
	emp.DepartmentID = in.DepartmentID
	emp.Position = in.Position
	emp.YearsOfExperience = in.YearsOfExperience
	emp.MonthlySalary = in.MonthlySalary.Round(2)
	if in.IsFresher != nil {
		emp.IsFresher = *in.IsFresher
	}
	if in.LeaveBalance != nil {
		emp.LeaveBalance = *in.LeaveBalance
	}
	if err := emp.SetAddress(in.Address); err != nil {
		return apperrors.NewValidationError("address must be a JSON object", map[string]any{"field": "address"})
	}
	if err := emp.SetSkills(in.Skills); err != nil {
		return apperrors.NewValidationError("skills must be a JSON list", map[string]any{"field": "skills"})
	}
	if err := emp.SetPaymentDetails(in.PaymentDetails); err != nil {
		return apperrors.NewValidationError("payment details must be a JSON object", map[string]any{"field": "payment_details"})
	}
	return nil
}

// CreateEmployee creates the employee profile of an existing user.
func (s *PeopleService) CreateEmployee(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	user, err := s.referencedUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	emp := &domain.Employee{
		IsFresher:    true,
		LeaveBalance: domain.DefaultLeaveBalance,
	}
	if err := input.apply(emp); err != nil {
		return nil, err
	}
	emp.Username = user.Username
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceEmployees, emp.ID, emp.String())
	return emp, nil
}

// GetEmployee fetches an employee profile.
func (s *PeopleService) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "employee", id)
	}
	return emp, nil
}

// ListEmployees lists employee profiles.
func (s *PeopleService) ListEmployees(ctx context.Context, filters EmployeeListFilters) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, filters)
	return employees, apperrors.MapError(err)
}

// UpdateEmployee replaces the editable profile fields. The employment date never changes.
func (s *PeopleService) UpdateEmployee(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error) {
	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *emp
	if input.UserID != emp.UserID {
		user, err := s.referencedUser(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		emp.Username = user.Username
	}
	if err := input.apply(emp); err != nil {
		return nil, err
	}

	var diff fieldDiff
	diff.check("user", before.UserID != emp.UserID)
	diff.check("address", before.Address != emp.Address)
	diff.check("contact", before.Contact != emp.Contact)
	diff.check("department", !equalStringPtr(before.DepartmentID, emp.DepartmentID))
	diff.check("position", before.Position != emp.Position)
	diff.check("years_of_experience", before.YearsOfExperience != emp.YearsOfExperience)
	diff.check("is_fresher", before.IsFresher != emp.IsFresher)
	diff.check("skills", before.Skills != emp.Skills)
	diff.check("monthly_salary", !before.MonthlySalary.Equal(emp.MonthlySalary))
	diff.check("payment_details", before.PaymentDetails != emp.PaymentDetails)
	diff.check("leave_balance", before.LeaveBalance != emp.LeaveBalance)

	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, apperrors.MapNotFound(err, "employee", id)
	}
	s.recorder.updated(ctx, domain.ResourceEmployees, emp.ID, emp.String(), diff)
	return emp, nil
}

// DeleteEmployee removes an employee profile. The user record stays.
func (s *PeopleService) DeleteEmployee(ctx context.Context, id string) error {
	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "employee", id)
	}
	s.recorder.deleted(ctx, domain.ResourceEmployees, emp.ID, emp.String())
	return nil
}

func (s *PeopleService) referencedUser(ctx context.Context, userID string) (*domain.User, error) {
	return lookupUser(ctx, s.users, userID)
}

// lookupUser resolves a user referenced by another record.
func lookupUser(ctx context.Context, users repository.UserRepository, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user is required", map[string]any{"field": "user_id"})
	}
	user, err := users.GetByID(ctx, userID)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.NewInvalidReference("User", map[string]any{"user_id": userID})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}
