package domain

import (
	"fmt"
	"time"
)

// DocumentUploadDir is the storage prefix for uploaded documents.
const DocumentUploadDir = "documents"

// Document references a file uploaded for a user.
type Document struct {
	ID           string
	UserID       string
	DocumentType string
	File         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d Document) String() string {
	return fmt.Sprintf("Document object (%s)", d.ID)
}
