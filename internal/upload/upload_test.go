package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/upload"
)

func multipartFile(t *testing.T, field, filename, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	file, header, err := req.FormFile(field)
	require.NoError(t, err)
	return file, header
}

func TestSaver_StoresFileUnderPublicPath(t *testing.T) {
	dir := t.TempDir()
	saver, err := upload.NewSaver(dir)
	require.NoError(t, err)

	file, header := multipartFile(t, "image", "screenshot.png", "png-bytes")
	defer file.Close()

	path, err := saver.Save(file, header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/"), "got %q", path)
	assert.True(t, strings.HasSuffix(path, ".png"), "original extension survives, got %q", path)

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestSaver_FilenameIsTimestampOnly(t *testing.T) {
	saver, err := upload.NewSaver(t.TempDir())
	require.NoError(t, err)

	file, header := multipartFile(t, "image", "../../../etc/passwd.jpg", "x")
	defer file.Close()

	path, err := saver.Save(file, header)
	require.NoError(t, err)

	name := strings.TrimPrefix(path, "/uploads/")
	assert.NotContains(t, name, "/", "client filename must not influence the stored path")
	assert.NotContains(t, name, "..")
}

func TestNewSaver_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := upload.NewSaver(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
