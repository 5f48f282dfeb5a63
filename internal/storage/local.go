package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-service/internal/domain"
)

// ErrInvalidPath is returned for stored paths that escape the media root.
var ErrInvalidPath = errors.New("invalid stored file path")

const maxNameAttempts = 10

// LocalStorage keeps uploaded documents on the local filesystem under a media root.
type LocalStorage struct {
	root string
}

// NewLocalStorage prepares the upload directory below root.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		return nil, errors.New("media root is required")
	}
	if err := os.MkdirAll(filepath.Join(root, domain.DocumentUploadDir), 0o750); err != nil {
		return nil, err
	}
	return &LocalStorage{root: root}, nil
}

// Save writes r under the documents directory and returns the stored path relative
// to the media root, e.g. "documents/contract.pdf". An existing file with the same
// name is never overwritten; a random suffix is added instead.
func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	base := cleanName(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	candidate := base
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rel := path.Join(domain.DocumentUploadDir, candidate)
		f, err := os.OpenFile(s.abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
		if errors.Is(err, os.ErrExist) {
			candidate = fmt.Sprintf("%s_%s%s", stem, uuid.NewString()[:7], ext)
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(f, r); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return "", err
		}
		if err := f.Close(); err != nil {
			_ = os.Remove(f.Name())
			return "", err
		}
		return rel, nil
	}
	return "", fmt.Errorf("no free file name for %q", base)
}

// Open returns a reader for a stored path.
func (s *LocalStorage) Open(_ context.Context, stored string) (io.ReadCloser, error) {
	if err := validStoredPath(stored); err != nil {
		return nil, err
	}
	return os.Open(s.abs(stored))
}

// Remove deletes a stored file. Missing files are ignored.
func (s *LocalStorage) Remove(_ context.Context, stored string) error {
	if err := validStoredPath(stored); err != nil {
		return err
	}
	if err := os.Remove(s.abs(stored)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func validStoredPath(stored string) error {
	clean := path.Clean(stored)
	if clean != stored || path.IsAbs(clean) || !strings.HasPrefix(clean, domain.DocumentUploadDir+"/") {
		return ErrInvalidPath
	}
	return nil
}

func cleanName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == 0:
			return -1
		}
		return r
	}, base)
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
