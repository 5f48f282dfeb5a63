package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// LeaveRepository manages leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) error
	Update(ctx context.Context, leave *domain.Leave) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]domain.Leave, error)
	CountAccepted(ctx context.Context, userID string, from, to time.Time) (int, error)
}

// LeaveFilter narrows leave listings.
type LeaveFilter struct {
	UserID     *string
	IsAccepted *bool
	IsRejected *bool
	Page
}

type leaveRepository struct {
	db Database
}

// NewLeaveRepository builds the repository.
func NewLeaveRepository(db Database) LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, user_id, leave_type, reason, is_accepted, is_rejected, reason_for_rejecting, created_at, updated_at`

func (r *leaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	const query = `
        INSERT INTO leaves (user_id, leave_type, reason, is_accepted, is_rejected, reason_for_rejecting)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		leave.UserID,
		leave.LeaveType,
		leave.Reason,
		leave.IsAccepted,
		leave.IsRejected,
		leave.ReasonForRejecting,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
}

func (r *leaveRepository) Update(ctx context.Context, leave *domain.Leave) error {
	const query = `
        UPDATE leaves SET user_id=$1, leave_type=$2, reason=$3, is_accepted=$4, is_rejected=$5,
            reason_for_rejecting=$6, updated_at=NOW()
        WHERE id=$7`
	return execAffectingOne(ctx, r.db, query,
		leave.UserID,
		leave.LeaveType,
		leave.Reason,
		leave.IsAccepted,
		leave.IsRejected,
		leave.ReasonForRejecting,
		leave.ID,
	)
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM leaves WHERE id=$1`, id)
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.Leave, error) {
	return scanLeave(r.db.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id=$1`, id))
}

func (r *leaveRepository) List(ctx context.Context, filter LeaveFilter) ([]domain.Leave, error) {
	var w where
	if filter.UserID != nil {
		w.add("user_id=$%d", *filter.UserID)
	}
	if filter.IsAccepted != nil {
		w.add("is_accepted=$%d", *filter.IsAccepted)
	}
	if filter.IsRejected != nil {
		w.add("is_rejected=$%d", *filter.IsRejected)
	}
	query := `SELECT ` + leaveColumns + ` FROM leaves` + w.String() + ` ORDER BY created_at DESC` + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Leave
	for rows.Next() {
		leave, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *leave)
	}
	return result, rows.Err()
}

// CountAccepted counts accepted requests raised in [from, to).
func (r *leaveRepository) CountAccepted(ctx context.Context, userID string, from, to time.Time) (int, error) {
	const query = `
        SELECT COUNT(*) FROM leaves
        WHERE user_id=$1 AND is_accepted AND created_at >= $2 AND created_at < $3`
	var total int
	err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&total)
	return total, err
}

func scanLeave(row pgx.Row) (*domain.Leave, error) {
	var leave domain.Leave
	if err := row.Scan(
		&leave.ID,
		&leave.UserID,
		&leave.LeaveType,
		&leave.Reason,
		&leave.IsAccepted,
		&leave.IsRejected,
		&leave.ReasonForRejecting,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &leave, nil
}
