package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EmployeeRepository manages employee profiles.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
}

// EmployeeFilter narrows employee listings.
type EmployeeFilter struct {
	DepartmentID *string
	IsFresher    *bool
	Position     string
	Page
}

type employeeRepository struct {
	db Database
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(db Database) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
        SELECT e.id, e.user_id, u.username, e.address, e.contact, e.department_id, e.position,
            e.years_of_experience, e.is_fresher, e.skills, e.monthly_salary, e.employment_date,
            e.payment_details, e.leave_balance, e.created_at, e.updated_at
        FROM employees e
        JOIN users u ON u.id = e.user_id`

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (user_id, address, contact, department_id, position, years_of_experience,
            is_fresher, skills, monthly_salary, payment_details, leave_balance)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, employment_date, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		emp.UserID,
		emp.Address,
		emp.Contact,
		emp.DepartmentID,
		emp.Position,
		emp.YearsOfExperience,
		emp.IsFresher,
		emp.Skills,
		emp.MonthlySalary,
		emp.PaymentDetails,
		emp.LeaveBalance,
	).Scan(&emp.ID, &emp.EmploymentDate, &emp.CreatedAt, &emp.UpdatedAt)
}

// Update never touches employment_date: it is fixed when the profile is created.
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET user_id=$1, address=$2, contact=$3, department_id=$4, position=$5,
            years_of_experience=$6, is_fresher=$7, skills=$8, monthly_salary=$9, payment_details=$10,
            leave_balance=$11, updated_at=NOW()
        WHERE id=$12`
	return execAffectingOne(ctx, r.db, query,
		emp.UserID,
		emp.Address,
		emp.Contact,
		emp.DepartmentID,
		emp.Position,
		emp.YearsOfExperience,
		emp.IsFresher,
		emp.Skills,
		emp.MonthlySalary,
		emp.PaymentDetails,
		emp.LeaveBalance,
		emp.ID,
	)
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM employees WHERE id=$1`, id)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, employeeSelect+` WHERE e.id=$1`, id))
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, employeeSelect+` WHERE e.user_id=$1`, userID))
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	var w where
	if filter.DepartmentID != nil {
		w.add("e.department_id=$%d", *filter.DepartmentID)
	}
	if filter.IsFresher != nil {
		w.add("e.is_fresher=$%d", *filter.IsFresher)
	}
	if filter.Position != "" {
		w.add("e.position ILIKE $%d", "%"+filter.Position+"%")
	}
	rows, err := r.db.Query(ctx, employeeSelect+w.String()+` ORDER BY u.username`+filter.clause(), w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	if err := row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.Username,
		&emp.Address,
		&emp.Contact,
		&emp.DepartmentID,
		&emp.Position,
		&emp.YearsOfExperience,
		&emp.IsFresher,
		&emp.Skills,
		&emp.MonthlySalary,
		&emp.EmploymentDate,
		&emp.PaymentDetails,
		&emp.LeaveBalance,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
