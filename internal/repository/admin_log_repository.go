package repository

import (
	"context"

	"github.com/spec-kit/hr-service/internal/domain"
)

// AdminLogRepository stores the admin change history.
type AdminLogRepository interface {
	Create(ctx context.Context, entry *domain.AdminLogEntry) error
	List(ctx context.Context, filter AdminLogFilter) ([]domain.AdminLogEntry, error)
}

// AdminLogFilter narrows admin log listings.
type AdminLogFilter struct {
	Resource string
	ObjectID string
	Page
}

type adminLogRepository struct {
	db Database
}

// NewAdminLogRepository builds the repository.
func NewAdminLogRepository(db Database) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Create(ctx context.Context, entry *domain.AdminLogEntry) error {
	const query = `
        INSERT INTO admin_log_entries (resource, object_id, object_repr, action, change_message)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, action_time`
	return r.db.QueryRow(ctx, query,
		entry.Resource,
		entry.ObjectID,
		entry.ObjectRepr,
		entry.Action,
		entry.ChangeMessage,
	).Scan(&entry.ID, &entry.ActionTime)
}

func (r *adminLogRepository) List(ctx context.Context, filter AdminLogFilter) ([]domain.AdminLogEntry, error) {
	var w where
	if filter.Resource != "" {
		w.add("resource=$%d", filter.Resource)
	}
	if filter.ObjectID != "" {
		w.add("object_id=$%d", filter.ObjectID)
	}
	query := `
        SELECT id, action_time, resource, object_id, object_repr, action, change_message
        FROM admin_log_entries` + w.String() + ` ORDER BY action_time DESC` + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdminLogEntry
	for rows.Next() {
		var entry domain.AdminLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.ActionTime,
			&entry.Resource,
			&entry.ObjectID,
			&entry.ObjectRepr,
			&entry.Action,
			&entry.ChangeMessage,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
