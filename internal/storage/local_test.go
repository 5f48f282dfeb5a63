package storage_test

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/storage"
)

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	defer filet.CleanUp(t)
	root := filet.TmpDir(t, "")

	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	stored, err := store.Save(context.Background(), "offer letter.pdf", strings.NewReader("signed"))
	require.NoError(t, err)
	assert.Equal(t, "documents/offer_letter.pdf", stored)
	assert.True(t, filet.FileSays(t, filepath.Join(root, "documents", "offer_letter.pdf"), []byte("signed")))

	rc, err := store.Open(context.Background(), stored)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "signed", string(body))
}

func TestLocalStorage_NameCollisionGetsSuffix(t *testing.T) {
	defer filet.CleanUp(t)
	root := filet.TmpDir(t, "")

	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	first, err := store.Save(context.Background(), "id.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "id.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.Equal(t, "documents/id.png", first)
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(second, "documents/id_"))
	assert.True(t, strings.HasSuffix(second, ".png"))
	assert.True(t, filet.FileSays(t, filepath.Join(root, filepath.FromSlash(first)), []byte("a")))
}

func TestLocalStorage_StripsDirectories(t *testing.T) {
	defer filet.CleanUp(t)
	root := filet.TmpDir(t, "")

	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	stored, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "documents/passwd", stored)
}

func TestLocalStorage_Remove(t *testing.T) {
	defer filet.CleanUp(t)
	root := filet.TmpDir(t, "")

	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	stored, err := store.Save(context.Background(), "payslip.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), stored))
	assert.False(t, filet.Exists(t, filepath.Join(root, "documents", "payslip.txt")))
	require.NoError(t, store.Remove(context.Background(), stored))
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	defer filet.CleanUp(t)
	root := filet.TmpDir(t, "")

	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "documents/../../secret")
	require.ErrorIs(t, err, storage.ErrInvalidPath)
	require.ErrorIs(t, store.Remove(context.Background(), "/etc/hosts"), storage.ErrInvalidPath)
}
