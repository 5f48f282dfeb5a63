package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context, filter DepartmentFilter) ([]domain.Department, error)
}

// DepartmentFilter narrows department listings.
type DepartmentFilter struct {
	HeadID *string
	Search string
	Page
}

type departmentRepository struct {
	db Database
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(db Database) DepartmentRepository {
	return &departmentRepository{db: db}
}

const departmentSelect = `
        SELECT d.id, d.name, d.description, d.department_head_id,
            (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id) AS number_of_employees,
            d.created_at, d.updated_at
        FROM departments d`

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name, description, department_head_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		dept.Name,
		dept.Description,
		dept.DepartmentHeadID,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `
        UPDATE departments SET name=$1, description=$2, department_head_id=$3, updated_at=NOW()
        WHERE id=$4`
	return execAffectingOne(ctx, r.db, query,
		dept.Name,
		dept.Description,
		dept.DepartmentHeadID,
		dept.ID,
	)
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM departments WHERE id=$1`, id)
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return scanDepartment(r.db.QueryRow(ctx, departmentSelect+` WHERE d.id=$1`, id))
}

func (r *departmentRepository) List(ctx context.Context, filter DepartmentFilter) ([]domain.Department, error) {
	var w where
	if filter.HeadID != nil {
		w.add("d.department_head_id=$%d", *filter.HeadID)
	}
	if filter.Search != "" {
		w.add("d.name ILIKE $%d", "%"+filter.Search+"%")
	}
	rows, err := r.db.Query(ctx, departmentSelect+w.String()+` ORDER BY d.name`+filter.clause(), w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *dept)
	}
	return result, rows.Err()
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var dept domain.Department
	if err := row.Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.DepartmentHeadID,
		&dept.NumberOfEmployees,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dept, nil
}
