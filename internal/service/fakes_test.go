package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
)

type idSeq struct {
	mu sync.Mutex
	n  int
}

func (s *idSeq) next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

type fakeUserRepo struct {
	repository.UserRepository
	ids   idSeq
	users map[string]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.ids.next("u")
	user.DateJoined = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) SetPassword(_ context.Context, id, hash string) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = hash
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	ids       idSeq
	employees map[string]domain.Employee
}

func newFakeEmployeeRepo(employees ...domain.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]domain.Employee{}}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	emp.ID = r.ids.next("e")
	emp.EmploymentDate = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	r.employees[emp.ID] = *emp
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	current, ok := r.employees[emp.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	emp.EmploymentDate = current.EmploymentDate
	r.employees[emp.ID] = *emp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (*domain.Employee, error) {
	for _, emp := range r.employees {
		if emp.UserID == userID {
			return &emp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeAttendanceRepo struct {
	repository.AttendanceRepository
	ids      idSeq
	counts   domain.AttendanceCounts
	calls    int
	lastFrom *time.Time
	lastTo   *time.Time
	created  []domain.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att *domain.Attendance) error {
	att.ID = r.ids.next("a")
	r.created = append(r.created, *att)
	return nil
}

func (r *fakeAttendanceRepo) CountByUser(_ context.Context, _ string, from, to *time.Time) (domain.AttendanceCounts, error) {
	r.calls++
	r.lastFrom, r.lastTo = from, to
	return r.counts, nil
}

type fakeLeaveRepo struct {
	repository.LeaveRepository
	ids      idSeq
	leaves   map[string]domain.Leave
	accepted int
}

func newFakeLeaveRepo(leaves ...domain.Leave) *fakeLeaveRepo {
	r := &fakeLeaveRepo{leaves: map[string]domain.Leave{}}
	for _, l := range leaves {
		r.leaves[l.ID] = l
	}
	return r
}

func (r *fakeLeaveRepo) Create(_ context.Context, leave *domain.Leave) error {
	leave.ID = r.ids.next("l")
	r.leaves[leave.ID] = *leave
	return nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, leave *domain.Leave) error {
	if _, ok := r.leaves[leave.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.leaves[leave.ID] = *leave
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.Leave, error) {
	leave, ok := r.leaves[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &leave, nil
}

func (r *fakeLeaveRepo) CountAccepted(context.Context, string, time.Time, time.Time) (int, error) {
	return r.accepted, nil
}

type fakePayrollRepo struct {
	repository.PayrollRepository
	ids      idSeq
	payrolls map[string]domain.Payroll
	sum      decimal.Decimal
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{payrolls: map[string]domain.Payroll{}}
}

func (r *fakePayrollRepo) Create(_ context.Context, payroll *domain.Payroll) error {
	payroll.ID = r.ids.next("p")
	r.payrolls[payroll.ID] = *payroll
	return nil
}

func (r *fakePayrollRepo) Update(_ context.Context, payroll *domain.Payroll) error {
	if _, ok := r.payrolls[payroll.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.payrolls[payroll.ID] = *payroll
	return nil
}

func (r *fakePayrollRepo) GetByID(_ context.Context, id string) (*domain.Payroll, error) {
	payroll, ok := r.payrolls[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &payroll, nil
}

func (r *fakePayrollRepo) SumSalary(context.Context, string, int, int) (decimal.Decimal, error) {
	return r.sum, nil
}

type fakeDocumentRepo struct {
	repository.DocumentRepository
	ids       idSeq
	documents map[string]domain.Document
	createErr error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{documents: map[string]domain.Document{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *domain.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	doc.ID = r.ids.next("d")
	r.documents[doc.ID] = *doc
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := r.documents[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &doc, nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.documents[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.documents, id)
	return nil
}

type fakeFileStore struct {
	files map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string][]byte{}}
}

func (s *fakeFileStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	stored := domain.DocumentUploadDir + "/" + name
	s.files[stored] = body
	return stored, nil
}

func (s *fakeFileStore) Open(_ context.Context, stored string) (io.ReadCloser, error) {
	body, ok := s.files[stored]
	if !ok {
		return nil, fmt.Errorf("no file %s", stored)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s *fakeFileStore) Remove(_ context.Context, stored string) error {
	delete(s.files, stored)
	return nil
}

type fakeAttendanceReportRepo struct {
	repository.AttendanceReportRepository
	created []domain.AttendanceReport
}

func (r *fakeAttendanceReportRepo) Create(_ context.Context, report *domain.AttendanceReport) error {
	report.ID = fmt.Sprintf("ar-%d", len(r.created)+1)
	r.created = append(r.created, *report)
	return nil
}

type fakeLeaveReportRepo struct {
	repository.LeaveReportRepository
	created []domain.LeaveReport
}

func (r *fakeLeaveReportRepo) Create(_ context.Context, report *domain.LeaveReport) error {
	report.ID = fmt.Sprintf("lr-%d", len(r.created)+1)
	r.created = append(r.created, *report)
	return nil
}

type fakePayrollReportRepo struct {
	repository.PayrollReportRepository
	created []domain.PayrollReport
}

func (r *fakePayrollReportRepo) Create(_ context.Context, report *domain.PayrollReport) error {
	report.ID = fmt.Sprintf("pr-%d", len(r.created)+1)
	r.created = append(r.created, *report)
	return nil
}

type fakeAdminLogRepo struct {
	repository.AdminLogRepository
	entries []domain.AdminLogEntry
	err     error
}

func (r *fakeAdminLogRepo) Create(_ context.Context, entry *domain.AdminLogEntry) error {
	if r.err != nil {
		return r.err
	}
	entry.ID = fmt.Sprintf("log-%d", len(r.entries)+1)
	r.entries = append(r.entries, *entry)
	return nil
}

type fakePublisher struct {
	published []domain.AdminLogEntry
	err       error
}

func (p *fakePublisher) PublishChange(_ context.Context, entry domain.AdminLogEntry) error {
	p.published = append(p.published, entry)
	return p.err
}
