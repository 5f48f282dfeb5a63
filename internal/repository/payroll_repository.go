package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/hr-service/internal/domain"
)

// PayrollRepository manages payroll slips.
type PayrollRepository interface {
	Create(ctx context.Context, payroll *domain.Payroll) error
	Update(ctx context.Context, payroll *domain.Payroll) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]domain.Payroll, error)
	SumSalary(ctx context.Context, userID string, year, month int) (decimal.Decimal, error)
}

// PayrollFilter narrows payroll listings.
type PayrollFilter struct {
	UserID *string
	Year   *int
	Month  *int
	Page
}

type payrollRepository struct {
	db Database
}

// NewPayrollRepository builds the repository.
func NewPayrollRepository(db Database) PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, user_id, year, month, start_date, end_date, salary, created_at, updated_at`

func (r *payrollRepository) Create(ctx context.Context, payroll *domain.Payroll) error {
	const query = `
        INSERT INTO payrolls (user_id, year, month, start_date, end_date, salary)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		payroll.UserID,
		payroll.Year,
		payroll.Month,
		payroll.StartDate,
		payroll.EndDate,
		payroll.Salary,
	).Scan(&payroll.ID, &payroll.CreatedAt, &payroll.UpdatedAt)
}

func (r *payrollRepository) Update(ctx context.Context, payroll *domain.Payroll) error {
	const query = `
        UPDATE payrolls SET user_id=$1, year=$2, month=$3, start_date=$4, end_date=$5, salary=$6, updated_at=NOW()
        WHERE id=$7`
	return execAffectingOne(ctx, r.db, query,
		payroll.UserID,
		payroll.Year,
		payroll.Month,
		payroll.StartDate,
		payroll.EndDate,
		payroll.Salary,
		payroll.ID,
	)
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM payrolls WHERE id=$1`, id)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*domain.Payroll, error) {
	return scanPayroll(r.db.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payrolls WHERE id=$1`, id))
}

func (r *payrollRepository) List(ctx context.Context, filter PayrollFilter) ([]domain.Payroll, error) {
	var w where
	if filter.UserID != nil {
		w.add("user_id=$%d", *filter.UserID)
	}
	if filter.Year != nil {
		w.add("year=$%d", *filter.Year)
	}
	if filter.Month != nil {
		w.add("month=$%d", *filter.Month)
	}
	query := `SELECT ` + payrollColumns + ` FROM payrolls` + w.String() + ` ORDER BY year DESC, month DESC` + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Payroll
	for rows.Next() {
		payroll, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *payroll)
	}
	return result, rows.Err()
}

func (r *payrollRepository) SumSalary(ctx context.Context, userID string, year, month int) (decimal.Decimal, error) {
	const query = `
        SELECT COALESCE(SUM(salary), 0) FROM payrolls
        WHERE user_id=$1 AND year=$2 AND month=$3`
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID, year, month).Scan(&total)
	return total, err
}

func scanPayroll(row pgx.Row) (*domain.Payroll, error) {
	var payroll domain.Payroll
	if err := row.Scan(
		&payroll.ID,
		&payroll.UserID,
		&payroll.Year,
		&payroll.Month,
		&payroll.StartDate,
		&payroll.EndDate,
		&payroll.Salary,
		&payroll.CreatedAt,
		&payroll.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &payroll, nil
}
