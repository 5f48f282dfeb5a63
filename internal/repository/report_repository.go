package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// ReportFilter narrows report listings of any kind.
type ReportFilter struct {
	UserID *string
	Year   *int
	Month  *int
	Page
}

func (f ReportFilter) where() *where {
	w := &where{}
	if f.UserID != nil {
		w.add("user_id=$%d", *f.UserID)
	}
	if f.Year != nil {
		w.add("year=$%d", *f.Year)
	}
	if f.Month != nil {
		w.add("month=$%d", *f.Month)
	}
	return w
}

const reportOrder = ` ORDER BY year DESC, month DESC, created_at DESC`

// AttendanceReportRepository persists attendance report snapshots.
type AttendanceReportRepository interface {
	Create(ctx context.Context, report *domain.AttendanceReport) error
	Update(ctx context.Context, report *domain.AttendanceReport) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.AttendanceReport, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.AttendanceReport, error)
}

type attendanceReportRepository struct {
	db Database
}

// NewAttendanceReportRepository builds the repository.
func NewAttendanceReportRepository(db Database) AttendanceReportRepository {
	return &attendanceReportRepository{db: db}
}

const attendanceReportColumns = `id, user_id, month, year, total_present, total_absent, total_leave, created_at, updated_at`

func (r *attendanceReportRepository) Create(ctx context.Context, report *domain.AttendanceReport) error {
	const query = `
        INSERT INTO attendance_reports (user_id, month, year, total_present, total_absent, total_leave)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		report.UserID,
		report.Month,
		report.Year,
		report.TotalPresent,
		report.TotalAbsent,
		report.TotalLeave,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func (r *attendanceReportRepository) Update(ctx context.Context, report *domain.AttendanceReport) error {
	const query = `
        UPDATE attendance_reports SET user_id=$1, month=$2, year=$3, total_present=$4, total_absent=$5,
            total_leave=$6, updated_at=NOW()
        WHERE id=$7`
	return execAffectingOne(ctx, r.db, query,
		report.UserID,
		report.Month,
		report.Year,
		report.TotalPresent,
		report.TotalAbsent,
		report.TotalLeave,
		report.ID,
	)
}

func (r *attendanceReportRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM attendance_reports WHERE id=$1`, id)
}

func (r *attendanceReportRepository) GetByID(ctx context.Context, id string) (*domain.AttendanceReport, error) {
	return scanAttendanceReport(r.db.QueryRow(ctx, `SELECT `+attendanceReportColumns+` FROM attendance_reports WHERE id=$1`, id))
}

func (r *attendanceReportRepository) List(ctx context.Context, filter ReportFilter) ([]domain.AttendanceReport, error) {
	w := filter.where()
	query := `SELECT ` + attendanceReportColumns + ` FROM attendance_reports` + w.String() + reportOrder + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AttendanceReport
	for rows.Next() {
		report, err := scanAttendanceReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *report)
	}
	return result, rows.Err()
}

func scanAttendanceReport(row pgx.Row) (*domain.AttendanceReport, error) {
	var report domain.AttendanceReport
	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Month,
		&report.Year,
		&report.TotalPresent,
		&report.TotalAbsent,
		&report.TotalLeave,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

// LeaveReportRepository persists leave report snapshots.
type LeaveReportRepository interface {
	Create(ctx context.Context, report *domain.LeaveReport) error
	Update(ctx context.Context, report *domain.LeaveReport) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.LeaveReport, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.LeaveReport, error)
}

type leaveReportRepository struct {
	db Database
}

// NewLeaveReportRepository builds the repository.
func NewLeaveReportRepository(db Database) LeaveReportRepository {
	return &leaveReportRepository{db: db}
}

const leaveReportColumns = `id, user_id, month, year, total_leaves, created_at, updated_at`

func (r *leaveReportRepository) Create(ctx context.Context, report *domain.LeaveReport) error {
	const query = `
        INSERT INTO leave_reports (user_id, month, year, total_leaves)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, report.UserID, report.Month, report.Year, report.TotalLeaves).
		Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func (r *leaveReportRepository) Update(ctx context.Context, report *domain.LeaveReport) error {
	const query = `
        UPDATE leave_reports SET user_id=$1, month=$2, year=$3, total_leaves=$4, updated_at=NOW()
        WHERE id=$5`
	return execAffectingOne(ctx, r.db, query, report.UserID, report.Month, report.Year, report.TotalLeaves, report.ID)
}

func (r *leaveReportRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM leave_reports WHERE id=$1`, id)
}

func (r *leaveReportRepository) GetByID(ctx context.Context, id string) (*domain.LeaveReport, error) {
	return scanLeaveReport(r.db.QueryRow(ctx, `SELECT `+leaveReportColumns+` FROM leave_reports WHERE id=$1`, id))
}

func (r *leaveReportRepository) List(ctx context.Context, filter ReportFilter) ([]domain.LeaveReport, error) {
	w := filter.where()
	query := `SELECT ` + leaveReportColumns + ` FROM leave_reports` + w.String() + reportOrder + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaveReport
	for rows.Next() {
		report, err := scanLeaveReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *report)
	}
	return result, rows.Err()
}

func scanLeaveReport(row pgx.Row) (*domain.LeaveReport, error) {
	var report domain.LeaveReport
	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Month,
		&report.Year,
		&report.TotalLeaves,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

// PayrollReportRepository persists payroll report snapshots.
type PayrollReportRepository interface {
	Create(ctx context.Context, report *domain.PayrollReport) error
	Update(ctx context.Context, report *domain.PayrollReport) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.PayrollReport, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.PayrollReport, error)
}

type payrollReportRepository struct {
	db Database
}

// NewPayrollReportRepository builds the repository.
func NewPayrollReportRepository(db Database) PayrollReportRepository {
	return &payrollReportRepository{db: db}
}

const payrollReportColumns = `id, user_id, month, year, total_salary, created_at, updated_at`

func (r *payrollReportRepository) Create(ctx context.Context, report *domain.PayrollReport) error {
	const query = `
        INSERT INTO payroll_reports (user_id, month, year, total_salary)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, report.UserID, report.Month, report.Year, report.TotalSalary).
		Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func (r *payrollReportRepository) Update(ctx context.Context, report *domain.PayrollReport) error {
	const query = `
        UPDATE payroll_reports SET user_id=$1, month=$2, year=$3, total_salary=$4, updated_at=NOW()
        WHERE id=$5`
	return execAffectingOne(ctx, r.db, query, report.UserID, report.Month, report.Year, report.TotalSalary, report.ID)
}

func (r *payrollReportRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM payroll_reports WHERE id=$1`, id)
}

func (r *payrollReportRepository) GetByID(ctx context.Context, id string) (*domain.PayrollReport, error) {
	return scanPayrollReport(r.db.QueryRow(ctx, `SELECT `+payrollReportColumns+` FROM payroll_reports WHERE id=$1`, id))
}

func (r *payrollReportRepository) List(ctx context.Context, filter ReportFilter) ([]domain.PayrollReport, error) {
	w := filter.where()
	query := `SELECT ` + payrollReportColumns + ` FROM payroll_reports` + w.String() + reportOrder + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PayrollReport
	for rows.Next() {
		report, err := scanPayrollReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *report)
	}
	return result, rows.Err()
}

func scanPayrollReport(row pgx.Row) (*domain.PayrollReport, error) {
	var report domain.PayrollReport
	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Month,
		&report.Year,
		&report.TotalSalary,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}
