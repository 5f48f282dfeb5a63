package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apihttp "github.com/spec-kit/hr-service/internal/api/http"
	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

const knownID = "5b0f6f2e-7d7c-4c55-9d55-0b7f1c1b2a11"

type fakePeople struct {
	handlers.PeopleService
	createdUser     service.UserInput
	createdPassword string
	createdEmployee service.EmployeeInput
}

func (f *fakePeople) CreateUser(_ context.Context, input service.UserInput, password string) (*domain.User, error) {
	f.createdUser = input
	f.createdPassword = password
	return &domain.User{ID: knownID, Username: input.Username, Email: input.Email, Role: input.Role, IsActive: input.IsActive}, nil
}

func (f *fakePeople) GetUser(_ context.Context, id string) (*domain.User, error) {
	return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
}

func (f *fakePeople) CreateEmployee(_ context.Context, input service.EmployeeInput) (*domain.Employee, error) {
	f.createdEmployee = input
	emp := &domain.Employee{ID: knownID, UserID: input.UserID, Username: "ada", MonthlySalary: *input.MonthlySalary}
	if err := emp.SetAddress(input.Address); err != nil {
		return nil, err
	}
	if err := emp.SetSkills(input.Skills); err != nil {
		return nil, err
	}
	return emp, nil
}

type fakeOrg struct {
	handlers.OrgService
	holidayFilters service.HolidayListFilters
}

func (f *fakeOrg) ListHolidays(_ context.Context, filters service.HolidayListFilters) ([]domain.HolidayCalendar, error) {
	f.holidayFilters = filters
	return []domain.HolidayCalendar{
		{ID: knownID, Date: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), Occasion: "Christmas"},
	}, nil
}

type fakeAttendance struct {
	handlers.AttendanceService
	rejectReason string
}

func (f *fakeAttendance) RejectLeave(_ context.Context, id, reason string) (*domain.Leave, error) {
	f.rejectReason = reason
	leave := &domain.Leave{ID: id, LeaveType: "sick"}
	leave.Reject(reason)
	return leave, nil
}

type fakeDocuments struct {
	handlers.DocumentService
	uploadedName    string
	uploadedContent string
	uploadedType    string
}

func (f *fakeDocuments) UploadDocument(_ context.Context, userID, documentType string, upload service.DocumentUpload) (*domain.Document, error) {
	raw, err := io.ReadAll(upload.Content)
	if err != nil {
		return nil, err
	}
	f.uploadedName = upload.FileName
	f.uploadedContent = string(raw)
	f.uploadedType = documentType
	return &domain.Document{ID: knownID, UserID: userID, DocumentType: documentType, File: "documents/" + upload.FileName}, nil
}

func (f *fakeDocuments) OpenDocument(_ context.Context, id string) (*domain.Document, io.ReadCloser, error) {
	return &domain.Document{ID: id, File: "documents/contract.pdf"}, io.NopCloser(strings.NewReader("pdf-bytes")), nil
}

type fakeAdminLog struct {
	handlers.AdminLogService
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testServer struct {
	app        *fiber.App
	people     *fakePeople
	org        *fakeOrg
	attendance *fakeAttendance
	documents  *fakeDocuments
}

func newTestServer(t *testing.T, redisErr error) *testServer {
	t.Helper()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	logger := zap.NewNop()

	srv := &testServer{
		people:     &fakePeople{},
		org:        &fakeOrg{},
		attendance: &fakeAttendance{},
		documents:  &fakeDocuments{},
	}
	app := fiber.New(fiber.Config{ErrorHandler: apihttp.ErrorHandler(logger)})
	apihttp.RegisterMiddlewares(app, logger, metrics, time.Second)
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Health:      handlers.NewHealthHandler("hr-service", "test", pinger{}, pinger{err: redisErr}),
		Admin:       handlers.NewAdminHandler(fakeAdminLog{}),
		Users:       handlers.NewUsersHandler(srv.people),
		Employees:   handlers.NewEmployeesHandler(srv.people),
		Departments: handlers.NewDepartmentsHandler(srv.org),
		Holidays:    handlers.NewHolidaysHandler(srv.org),
		Attendance:  handlers.NewAttendanceHandler(srv.attendance),
		Leaves:      handlers.NewLeavesHandler(srv.attendance),
		Payrolls:    handlers.NewPayrollsHandler(nil),
		Documents:   handlers.NewDocumentsHandler(srv.documents),
		Reports:     handlers.NewReportsHandler(nil),
		Gatherer:    registry,
	})
	srv.app = app
	return srv
}

func (s *testServer) do(t *testing.T, req *nethttp.Request) (*nethttp.Response, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func jsonRequest(method, target, body string) *nethttp.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAdminIndex_ListsRegisteredModels(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin", nil))
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	out := decode[struct {
		Data []domain.AdminResource `json:"data"`
	}](t, body)
	require.Len(t, out.Data, 11)
	assert.Equal(t, "users", out.Data[0].Name)
	assert.Equal(t, "holiday calendars", out.Data[10].VerboseNames)
}

func TestCreateUser_ValidationDetailsUseJSONNames(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, jsonRequest(nethttp.MethodPost, "/admin/users", `{"username":"ada","email":"nope"}`))
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	out := decode[errorBody](t, body)
	assert.Equal(t, "VALIDATION_FAILED", out.Error.Code)
	assert.Contains(t, out.Error.Details, "email")
	assert.Contains(t, out.Error.Details, "password")
	assert.NotContains(t, out.Error.Details, "username")
}

func TestCreateUser_DefaultsToActive(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, jsonRequest(nethttp.MethodPost, "/admin/users",
		`{"username":"ada","email":"ada@example.com","password":"s3cret-pass","role":"HR"}`))
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	assert.True(t, srv.people.createdUser.IsActive)
	assert.Equal(t, domain.UserRoleHR, srv.people.createdUser.Role)
	assert.Equal(t, "s3cret-pass", srv.people.createdPassword)
	assert.NotContains(t, string(body), "s3cret-pass")
	assert.NotContains(t, string(body), "password")
}

func TestGetUser_InvalidAndMissingIDs(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/users/not-a-uuid", nil))
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, body).Error.Code)

	resp, body = srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/users/"+knownID, nil))
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	out := decode[errorBody](t, body)
	assert.Equal(t, "NOT_FOUND", out.Error.Code)
	assert.Equal(t, "user not found", out.Error.Message)
}

func TestCreateEmployee_DecodesJSONFieldsAndSalary(t *testing.T) {
	srv := newTestServer(t, nil)

	payload := `{"user_id":"` + knownID + `","address":{"city":"Pune"},"skills":["go","sql"],"monthly_salary":"3000.50"}`
	resp, body := srv.do(t, jsonRequest(nethttp.MethodPost, "/admin/employees", payload))
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	require.NotNil(t, srv.people.createdEmployee.MonthlySalary)
	assert.True(t, decimal.RequireFromString("3000.50").Equal(*srv.people.createdEmployee.MonthlySalary))
	out := decode[struct {
		Data struct {
			Address      map[string]any  `json:"address"`
			Skills       []any           `json:"skills"`
			YearlySalary decimal.Decimal `json:"yearly_salary"`
		} `json:"data"`
	}](t, body)
	assert.Equal(t, "Pune", out.Data.Address["city"])
	assert.Equal(t, []any{"go", "sql"}, out.Data.Skills)
	assert.Equal(t, "36006", out.Data.YearlySalary.String())
}

func TestCreateEmployee_RequiresMonthlySalary(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, payload := range []string{
		`{"user_id":"` + knownID + `"}`,
		`{"user_id":"` + knownID + `","monthly_salary":null}`,
	} {
		resp, body := srv.do(t, jsonRequest(nethttp.MethodPost, "/admin/employees", payload))
		require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		out := decode[errorBody](t, body)
		assert.Equal(t, "VALIDATION_FAILED", out.Error.Code)
		assert.Equal(t, "this field is required", out.Error.Details["monthly_salary"])
	}
	assert.Empty(t, srv.people.createdEmployee.UserID)
}

func TestCreateEmployee_SkillsAcceptObjects(t *testing.T) {
	srv := newTestServer(t, nil)

	payload := `{"user_id":"` + knownID + `","skills":[{"name":"go","level":3}],"monthly_salary":1200}`
	resp, body := srv.do(t, jsonRequest(nethttp.MethodPost, "/admin/employees", payload))
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	out := decode[struct {
		Data struct {
			Skills []map[string]any `json:"skills"`
		} `json:"data"`
	}](t, body)
	require.Len(t, out.Data.Skills, 1)
	assert.Equal(t, "go", out.Data.Skills[0]["name"])
	assert.InDelta(t, 3, out.Data.Skills[0]["level"], 0)
}

func TestListHolidays_Pagination(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/holidays?page=3&page_size=10&date_from=2024-01-01", nil))
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	assert.Equal(t, 10, srv.org.holidayFilters.Limit)
	assert.Equal(t, 20, srv.org.holidayFilters.Offset)
	require.NotNil(t, srv.org.holidayFilters.DateFrom)
	assert.Nil(t, srv.org.holidayFilters.DateTo)

	out := decode[struct {
		Data []struct {
			Display string `json:"display"`
		} `json:"data"`
		Meta struct {
			Page     int `json:"page"`
			PageSize int `json:"page_size"`
			Count    int `json:"count"`
		} `json:"meta"`
	}](t, body)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Christmas (2024-12-25)", out.Data[0].Display)
	assert.Equal(t, 3, out.Meta.Page)
	assert.Equal(t, 10, out.Meta.PageSize)
	assert.Equal(t, 1, out.Meta.Count)
}

func TestListHolidays_RejectsOverflowingPage(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, target := range []string{
		"/admin/holidays?page=9223372036854775807&page_size=10",
		"/admin/holidays?page=4294968&page_size=500",
	} {
		resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, target, nil))
		require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode, target)
		out := decode[errorBody](t, body)
		assert.Equal(t, "VALIDATION_FAILED", out.Error.Code)
		assert.Equal(t, "out of range", out.Error.Details["page"])
	}
	assert.Zero(t, srv.org.holidayFilters.Limit)
}

func TestListHolidays_RejectsBadFilters(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, _ := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/holidays?page=0", nil))
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/holidays?date_to=25-12-2024", nil))
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[errorBody](t, body).Error.Details, "date_to")
}

func TestRejectLeave_PassesReason(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, jsonRequest(nethttp.MethodPost, "/admin/leaves/"+knownID+"/reject", `{"reason":"peak season"}`))
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	assert.Equal(t, "peak season", srv.attendance.rejectReason)
	out := decode[struct {
		Data struct {
			IsRejected         bool    `json:"is_rejected"`
			ReasonForRejecting *string `json:"reason_for_rejecting"`
		} `json:"data"`
	}](t, body)
	assert.True(t, out.Data.IsRejected)
	require.NotNil(t, out.Data.ReasonForRejecting)
	assert.Equal(t, "peak season", *out.Data.ReasonForRejecting)
}

func TestUploadDocument_Multipart(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("user_id", knownID))
	require.NoError(t, writer.WriteField("document_type", "contract"))
	part, err := writer.CreateFormFile("file", "contract.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, body := srv.do(t, req)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode, string(body))

	assert.Equal(t, "contract.pdf", srv.documents.uploadedName)
	assert.Equal(t, "pdf-bytes", srv.documents.uploadedContent)
	assert.Equal(t, "contract", srv.documents.uploadedType)
	assert.Contains(t, string(body), `"file":"documents/contract.pdf"`)
}

func TestUploadDocument_RequiresFile(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("user_id", knownID))
	require.NoError(t, writer.WriteField("document_type", "contract"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, body := srv.do(t, req)
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[errorBody](t, body).Error.Details, "file")
}

func TestDownloadDocument_StreamsFile(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/documents/"+knownID+"/download", nil))
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "pdf-bytes", string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "contract.pdf")
}

func TestUnknownRoute_RendersErrorEnvelope(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/admin/tickets", nil))
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, body).Error.Code)
}

func TestPanic_Recovered(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/boom", nil))
	require.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", decode[errorBody](t, body).Error.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	resp, _ := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/health/ready", nil))
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	down := newTestServer(t, errors.New("connection refused"))
	resp, body := down.do(t, httptest.NewRequest(nethttp.MethodGet, "/health/ready", nil))
	require.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	out := decode[errorBody](t, body)
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", out.Error.Code)
	assert.Equal(t, "connection refused", out.Error.Details["redis"])
	assert.Equal(t, "ok", out.Error.Details["postgres"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/health/live", nil))

	resp, body := srv.do(t, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "hr_http_requests_total")
}
