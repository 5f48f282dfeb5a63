package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// HolidayRepository manages the company holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *domain.HolidayCalendar) error
	Update(ctx context.Context, holiday *domain.HolidayCalendar) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.HolidayCalendar, error)
	List(ctx context.Context, filter HolidayFilter) ([]domain.HolidayCalendar, error)
}

// HolidayFilter narrows holiday listings.
type HolidayFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Page
}

type holidayRepository struct {
	db Database
}

// NewHolidayRepository builds the repository.
func NewHolidayRepository(db Database) HolidayRepository {
	return &holidayRepository{db: db}
}

const holidayColumns = `id, date, occasion, created_at, updated_at`

func (r *holidayRepository) Create(ctx context.Context, holiday *domain.HolidayCalendar) error {
	const query = `
        INSERT INTO holiday_calendars (date, occasion)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, holiday.Date, holiday.Occasion).
		Scan(&holiday.ID, &holiday.CreatedAt, &holiday.UpdatedAt)
}

func (r *holidayRepository) Update(ctx context.Context, holiday *domain.HolidayCalendar) error {
	const query = `UPDATE holiday_calendars SET date=$1, occasion=$2, updated_at=NOW() WHERE id=$3`
	return execAffectingOne(ctx, r.db, query, holiday.Date, holiday.Occasion, holiday.ID)
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM holiday_calendars WHERE id=$1`, id)
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (*domain.HolidayCalendar, error) {
	return scanHoliday(r.db.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holiday_calendars WHERE id=$1`, id))
}

func (r *holidayRepository) List(ctx context.Context, filter HolidayFilter) ([]domain.HolidayCalendar, error) {
	var w where
	if filter.DateFrom != nil {
		w.add("date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		w.add("date <= $%d", *filter.DateTo)
	}
	query := `SELECT ` + holidayColumns + ` FROM holiday_calendars` + w.String() + ` ORDER BY date` + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HolidayCalendar
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *holiday)
	}
	return result, rows.Err()
}

func scanHoliday(row pgx.Row) (*domain.HolidayCalendar, error) {
	var holiday domain.HolidayCalendar
	if err := row.Scan(&holiday.ID, &holiday.Date, &holiday.Occasion, &holiday.CreatedAt, &holiday.UpdatedAt); err != nil {
		return nil, err
	}
	return &holiday, nil
}
