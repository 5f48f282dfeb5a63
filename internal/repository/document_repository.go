package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// DocumentRepository persists document metadata; file bytes live in storage.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	UserID       *string
	DocumentType string
	Page
}

type documentRepository struct {
	db Database
}

// NewDocumentRepository constructs repository.
func NewDocumentRepository(db Database) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `id, user_id, document_type, file, created_at, updated_at`

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (user_id, document_type, file)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		doc.UserID,
		doc.DocumentType,
		doc.File,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) error {
	const query = `
        UPDATE documents SET user_id=$1, document_type=$2, file=$3, updated_at=NOW()
        WHERE id=$4`
	return execAffectingOne(ctx, r.db, query, doc.UserID, doc.DocumentType, doc.File, doc.ID)
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM documents WHERE id=$1`, id)
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	return scanDocument(r.db.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id=$1`, id))
}

func (r *documentRepository) List(ctx context.Context, filter DocumentFilter) ([]domain.Document, error) {
	var w where
	if filter.UserID != nil {
		w.add("user_id=$%d", *filter.UserID)
	}
	if filter.DocumentType != "" {
		w.add("document_type=$%d", filter.DocumentType)
	}
	query := `SELECT ` + documentColumns + ` FROM documents` + w.String() + ` ORDER BY created_at DESC` + filter.clause()
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *doc)
	}
	return result, rows.Err()
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var doc domain.Document
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.DocumentType,
		&doc.File,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}
