package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/spec-kit/hr-service/internal/domain"
)

// AttendanceRepository manages daily attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	Update(ctx context.Context, att *domain.Attendance) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, error)
	CountByUser(ctx context.Context, userID string, from, to *time.Time) (domain.AttendanceCounts, error)
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	UserID   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page
}

type attendanceRepository struct {
	db Database
}

// NewAttendanceRepository builds the repository.
func NewAttendanceRepository(db Database) AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
        SELECT a.id, a.user_id, u.username, a.date, a.in_time, a.out_time,
            a.is_present, a.is_absent, a.on_leave, a.created_at, a.updated_at
        FROM attendances a
        JOIN users u ON u.id = a.user_id`

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	const query = `
        INSERT INTO attendances (user_id, date, in_time, out_time, is_present, is_absent, on_leave)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		att.UserID,
		att.Date,
		toPgTime(att.InTime),
		toPgTime(att.OutTime),
		att.IsPresent,
		att.IsAbsent,
		att.OnLeave,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
}

func (r *attendanceRepository) Update(ctx context.Context, att *domain.Attendance) error {
	const query = `
        UPDATE attendances SET user_id=$1, date=$2, in_time=$3, out_time=$4,
            is_present=$5, is_absent=$6, on_leave=$7, updated_at=NOW()
        WHERE id=$8`
	return execAffectingOne(ctx, r.db, query,
		att.UserID,
		att.Date,
		toPgTime(att.InTime),
		toPgTime(att.OutTime),
		att.IsPresent,
		att.IsAbsent,
		att.OnLeave,
		att.ID,
	)
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM attendances WHERE id=$1`, id)
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*domain.Attendance, error) {
	return scanAttendance(r.db.QueryRow(ctx, attendanceSelect+` WHERE a.id=$1`, id))
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, error) {
	var w where
	if filter.UserID != nil {
		w.add("a.user_id=$%d", *filter.UserID)
	}
	if filter.DateFrom != nil {
		w.add("a.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		w.add("a.date <= $%d", *filter.DateTo)
	}
	rows, err := r.db.Query(ctx, attendanceSelect+w.String()+` ORDER BY a.date DESC, u.username`+filter.clause(), w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *att)
	}
	return result, rows.Err()
}

// CountByUser counts present, absent and on-leave days. Nil bounds leave the range open;
// to is exclusive.
func (r *attendanceRepository) CountByUser(ctx context.Context, userID string, from, to *time.Time) (domain.AttendanceCounts, error) {
	w := where{}
	w.add("user_id=$%d", userID)
	if from != nil {
		w.add("date >= $%d", *from)
	}
	if to != nil {
		w.add("date < $%d", *to)
	}
	query := `
        SELECT COUNT(*) FILTER (WHERE is_present),
            COUNT(*) FILTER (WHERE is_absent),
            COUNT(*) FILTER (WHERE on_leave)
        FROM attendances` + w.String()

	var counts domain.AttendanceCounts
	err := r.db.QueryRow(ctx, query, w.args...).Scan(&counts.Present, &counts.Absent, &counts.Leave)
	return counts, err
}

func scanAttendance(row pgx.Row) (*domain.Attendance, error) {
	var (
		att     domain.Attendance
		inTime  pgtype.Time
		outTime pgtype.Time
	)
	if err := row.Scan(
		&att.ID,
		&att.UserID,
		&att.Username,
		&att.Date,
		&inTime,
		&outTime,
		&att.IsPresent,
		&att.IsAbsent,
		&att.OnLeave,
		&att.CreatedAt,
		&att.UpdatedAt,
	); err != nil {
		return nil, err
	}
	att.InTime = fromPgTime(inTime)
	att.OutTime = fromPgTime(outTime)
	return &att, nil
}

func toPgTime(t *domain.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds, Valid: true}
}

func fromPgTime(t pgtype.Time) *domain.TimeOfDay {
	if !t.Valid {
		return nil
	}
	return &domain.TimeOfDay{Microseconds: t.Microseconds}
}
