package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

func collectEvents(d events.Dispatcher) *[]events.Event {
	var got []events.Event
	collect := func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	}
	d.Subscribe(events.EventRecordCreated, collect)
	d.Subscribe(events.EventRecordUpdated, collect)
	d.Subscribe(events.EventRecordDeleted, collect)
	return &got
}

func newPeopleService(users *fakeUserRepo, employees *fakeEmployeeRepo) (*service.PeopleService, *[]events.Event) {
	dispatcher := events.NewInMemoryDispatcher()
	got := collectEvents(dispatcher)
	cfg := config.Config{Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	svc := service.NewPeopleService(cfg, service.PeopleDependencies{
		UserRepo:     users,
		EmployeeRepo: employees,
		Dispatcher:   dispatcher,
	})
	return svc, got
}

func amount(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func TestPeopleService_CreateUserHashesPassword(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc, got := newPeopleService(users, newFakeEmployeeRepo())

	user, err := svc.CreateUser(context.Background(), service.UserInput{
		Username: " asha ",
		Email:    "asha@example.com",
		IsActive: true,
	}, "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "asha", user.Username)
	assert.Equal(t, domain.UserRoleEmployee, user.Role)
	require.NoError(t, auth.ComparePassword(user.PasswordHash, "s3cret-pass"))

	require.Len(t, *got, 1)
	assert.Equal(t, events.EventRecordCreated, (*got)[0].Type)
	assert.Equal(t, "asha", (*got)[0].Repr)
}

func TestPeopleService_CreateUserRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc, _ := newPeopleService(newFakeUserRepo(), newFakeEmployeeRepo())

	_, err := svc.CreateUser(context.Background(), service.UserInput{Username: "x", Role: "MANAGER"}, "long enough")
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))

	_, err = svc.CreateUser(context.Background(), service.UserInput{Username: "x"}, "short")
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestPeopleService_UpdateUserReportsChangedFields(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha", Email: "a@example.com", Role: domain.UserRoleEmployee, IsActive: true})
	svc, got := newPeopleService(users, newFakeEmployeeRepo())

	_, err := svc.UpdateUser(context.Background(), "u-1", service.UserInput{
		Username: "asha",
		Email:    "asha@example.com",
		Role:     domain.UserRoleHR,
		IsActive: true,
	})
	require.NoError(t, err)

	require.Len(t, *got, 1)
	payload, ok := (*got)[0].Payload.(events.ChangedFieldsPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "role"}, payload.Fields)
	assert.Equal(t, domain.UserRoleHR, users.users["u-1"].Role)
}

func TestPeopleService_MissingUser(t *testing.T) {
	t.Parallel()

	svc, _ := newPeopleService(newFakeUserRepo(), newFakeEmployeeRepo())

	_, err := svc.GetUser(context.Background(), "nope")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)

	err = svc.SetUserPassword(context.Background(), "nope", "long enough")
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestPeopleService_CreateEmployeeDefaults(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha"})
	employees := newFakeEmployeeRepo()
	svc, got := newPeopleService(users, employees)

	emp, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{
		UserID:        "u-1",
		Address:       map[string]any{"city": "Pune"},
		Skills:        []any{"go"},
		Position:      "Engineer",
		MonthlySalary: amount("4500.456"),
	})
	require.NoError(t, err)

	assert.True(t, emp.IsFresher)
	assert.Equal(t, domain.DefaultLeaveBalance, emp.LeaveBalance)
	assert.JSONEq(t, `{"city":"Pune"}`, emp.Address)
	assert.JSONEq(t, `["go"]`, emp.Skills)
	assert.JSONEq(t, `{}`, emp.PaymentDetails)
	assert.True(t, decimal.RequireFromString("4500.46").Equal(emp.MonthlySalary))
	assert.True(t, decimal.RequireFromString("54005.52").Equal(emp.YearlySalary()))
	require.Len(t, *got, 1)
	assert.Equal(t, "asha", (*got)[0].Repr)
}

func TestPeopleService_CreateEmployeeUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newPeopleService(newFakeUserRepo(), newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{UserID: "ghost"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_REFERENCE", domainErr.Code)
	assert.Equal(t, "The referenced User does not exist", domainErr.Message)
}

func TestPeopleService_UpdateEmployeeKeepsEmploymentDate(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha"})
	employees := newFakeEmployeeRepo()
	svc, got := newPeopleService(users, employees)

	emp, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{UserID: "u-1", MonthlySalary: amount("1000")})
	require.NoError(t, err)
	joined := emp.EmploymentDate

	fresher := false
	updated, err := svc.UpdateEmployee(context.Background(), emp.ID, service.EmployeeInput{
		UserID:        "u-1",
		IsFresher:     &fresher,
		MonthlySalary: amount("1200"),
	})
	require.NoError(t, err)

	assert.Equal(t, joined, updated.EmploymentDate)
	assert.False(t, updated.IsFresher)
	require.Len(t, *got, 2)
	payload := (*got)[1].Payload.(events.ChangedFieldsPayload)
	assert.Equal(t, []string{"is_fresher", "monthly_salary"}, payload.Fields)
}

func TestPeopleService_NegativeSalaryRejected(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha"})
	svc, _ := newPeopleService(users, newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{UserID: "u-1", MonthlySalary: amount("-1")})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestPeopleService_MissingSalaryRejected(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha"})
	employees := newFakeEmployeeRepo()
	svc, got := newPeopleService(users, employees)

	_, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{UserID: "u-1"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, "monthly_salary", domainErr.Details["field"])
	assert.Empty(t, employees.employees)
	assert.Empty(t, *got)
}

func TestPeopleService_SalaryOutOfRangeRejected(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha"})
	employees := newFakeEmployeeRepo()
	svc, _ := newPeopleService(users, employees)

	_, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{UserID: "u-1", MonthlySalary: amount("100000000")})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
	assert.Empty(t, employees.employees)

	emp, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{UserID: "u-1", MonthlySalary: amount("99999999.99")})
	require.NoError(t, err)
	assert.True(t, domain.MaxAmount.Equal(emp.MonthlySalary))
}

func TestPeopleService_UpdateEmployeeKeepsOmittedDefaults(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo(domain.User{ID: "u-1", Username: "asha"})
	svc, _ := newPeopleService(users, newFakeEmployeeRepo())

	fresher := false
	balance := 7
	emp, err := svc.CreateEmployee(context.Background(), service.EmployeeInput{
		UserID:        "u-1",
		IsFresher:     &fresher,
		LeaveBalance:  &balance,
		MonthlySalary: amount("1000"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(context.Background(), emp.ID, service.EmployeeInput{
		UserID:        "u-1",
		MonthlySalary: amount("1000"),
	})
	require.NoError(t, err)

	assert.False(t, updated.IsFresher)
	assert.Equal(t, 7, updated.LeaveBalance)

	_, err = svc.UpdateEmployee(context.Background(), emp.ID, service.EmployeeInput{UserID: "u-1"})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}
