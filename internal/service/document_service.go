package service

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// FileStore keeps the uploaded document files.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Open(ctx context.Context, stored string) (io.ReadCloser, error)
	Remove(ctx context.Context, stored string) error
}

// DocumentService manages uploaded documents and their files.
type DocumentService struct {
	documents repository.DocumentRepository
	users     repository.UserRepository
	files     FileStore
	logger    *zap.Logger
	recorder  recorder
}

// DocumentDependencies bundles collaborators for the document service.
type DocumentDependencies struct {
	DocumentRepo repository.DocumentRepository
	UserRepo     repository.UserRepository
	Files        FileStore
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewDocumentService constructs the service.
func NewDocumentService(deps DocumentDependencies) *DocumentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		documents: deps.DocumentRepo,
		users:     deps.UserRepo,
		files:     deps.Files,
		logger:    logger,
		recorder:  newRecorder(deps.Dispatcher, logger),
	}
}

// DocumentUpload describes an uploaded file.
type DocumentUpload struct {
	FileName string
	Content  io.Reader
}

// DocumentListFilters define listing parameters.
type DocumentListFilters = repository.DocumentFilter

// UploadDocument stores the file and records it for the user.
func (s *DocumentService) UploadDocument(ctx context.Context, userID, documentType string, upload DocumentUpload) (*domain.Document, error) {
	if _, err := lookupUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	stored, err := s.files.Save(ctx, upload.FileName, upload.Content)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	doc := &domain.Document{
		UserID:       userID,
		DocumentType: strings.TrimSpace(documentType),
		File:         stored,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		s.discard(ctx, stored)
		return nil, apperrors.MapError(err)
	}
	s.recorder.created(ctx, domain.ResourceDocuments, doc.ID, doc.String())
	return doc, nil
}

// GetDocument fetches document metadata.
func (s *DocumentService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, "document", id)
	}
	return doc, nil
}

// ListDocuments lists document metadata.
func (s *DocumentService) ListDocuments(ctx context.Context, filters DocumentListFilters) ([]domain.Document, error) {
	docs, err := s.documents.List(ctx, filters)
	return docs, apperrors.MapError(err)
}

// UpdateDocument changes the owner and type; a non-nil upload replaces the file.
func (s *DocumentService) UpdateDocument(ctx context.Context, id, userID, documentType string, upload *DocumentUpload) (*domain.Document, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.UserID != userID {
		if _, err := lookupUser(ctx, s.users, userID); err != nil {
			return nil, err
		}
	}
	documentType = strings.TrimSpace(documentType)

	var diff fieldDiff
	diff.check("user", doc.UserID != userID)
	diff.check("document_type", doc.DocumentType != documentType)

	previousFile := doc.File
	if upload != nil {
		stored, err := s.files.Save(ctx, upload.FileName, upload.Content)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		doc.File = stored
		diff.check("file", true)
	}
	doc.UserID = userID
	doc.DocumentType = documentType

	if err := s.documents.Update(ctx, doc); err != nil {
		if doc.File != previousFile {
			s.discard(ctx, doc.File)
		}
		return nil, apperrors.MapNotFound(err, "document", id)
	}
	if doc.File != previousFile {
		s.discard(ctx, previousFile)
	}
	s.recorder.updated(ctx, domain.ResourceDocuments, doc.ID, doc.String(), diff)
	return doc, nil
}

// OpenDocument returns the metadata and a reader over the stored file.
func (s *DocumentService) OpenDocument(ctx context.Context, id string) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.files.Open(ctx, doc.File)
	if err != nil {
		return nil, nil, apperrors.NewNotFound("document file", map[string]any{"id": id, "file": doc.File})
	}
	return doc, rc, nil
}

// DeleteDocument removes the record and its stored file.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return apperrors.MapNotFound(err, "document", id)
	}
	s.discard(ctx, doc.File)
	s.recorder.deleted(ctx, domain.ResourceDocuments, doc.ID, doc.String())
	return nil
}

func (s *DocumentService) discard(ctx context.Context, stored string) {
	if err := s.files.Remove(ctx, stored); err != nil {
		s.logger.Warn("failed to remove stored document", zap.String("file", stored), zap.Error(err))
	}
}
