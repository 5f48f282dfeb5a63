package handlers

import (
	"mime/multipart"
	"net/http"
	"path"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// DocumentsHandler exposes /admin/documents. Writes are multipart forms.
type DocumentsHandler struct {
	documents DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documents DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documents}
}

func parseDocumentForm(c *fiber.Ctx) (dto.DocumentForm, error) {
	var form dto.DocumentForm
	if err := c.BodyParser(&form); err != nil {
		return form, apperrors.NewValidationError("invalid form", map[string]any{"body": err.Error()})
	}
	return form, validateStruct(&form)
}

func openUpload(header *multipart.FileHeader) (multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable upload", map[string]any{"file": err.Error()})
	}
	return file, nil
}

// List handles GET /admin/documents.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	page, meta, err := pageFromQuery(c)
	if err != nil {
		return err
	}
	filters := service.DocumentListFilters{DocumentType: c.Query("document_type"), Page: page}
	if filters.UserID, err = queryUUID(c, "user_id"); err != nil {
		return err
	}
	documents, err := h.documents.ListDocuments(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return respondList(c, mapSlice(documents, documentResponse), meta)
}

// Create handles POST /admin/documents.
func (h *DocumentsHandler) Create(c *fiber.Ctx) error {
	form, err := parseDocumentForm(c)
	if err != nil {
		return err
	}
	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("validation failed", map[string]any{"file": "this field is required"})
	}
	file, err := openUpload(header)
	if err != nil {
		return err
	}
	defer file.Close()

	doc, err := h.documents.UploadDocument(c.UserContext(), form.UserID, form.DocumentType,
		service.DocumentUpload{FileName: header.Filename, Content: file})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": documentResponse(*doc)})
}

// Get handles GET /admin/documents/:id.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	doc, err := h.documents.GetDocument(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": documentResponse(*doc)})
}

// Download handles GET /admin/documents/:id/download.
func (h *DocumentsHandler) Download(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	doc, content, err := h.documents.OpenDocument(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Attachment(path.Base(doc.File))
	// fasthttp closes the stream once the body is written.
	return c.SendStream(content)
}

// Update handles PUT /admin/documents/:id. The file part is optional.
func (h *DocumentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	form, err := parseDocumentForm(c)
	if err != nil {
		return err
	}

	var upload *service.DocumentUpload
	if header, ferr := c.FormFile("file"); ferr == nil {
		file, err := openUpload(header)
		if err != nil {
			return err
		}
		defer file.Close()
		upload = &service.DocumentUpload{FileName: header.Filename, Content: file}
	}

	doc, err := h.documents.UpdateDocument(c.UserContext(), id, form.UserID, form.DocumentType, upload)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": documentResponse(*doc)})
}

// Delete handles DELETE /admin/documents/:id. The stored file is removed too.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.documents.DeleteDocument(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
