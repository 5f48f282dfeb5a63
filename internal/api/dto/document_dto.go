package dto

import "time"

// DocumentForm is the multipart form for uploading or replacing a document.
type DocumentForm struct {
	UserID       string `form:"user_id" validate:"required,uuid"`
	DocumentType string `form:"document_type" validate:"required,max=100"`
}

// DocumentResponse renders document metadata.
type DocumentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DocumentType string    `json:"document_type"`
	File         string    `json:"file"`
	Display      string    `json:"display"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
