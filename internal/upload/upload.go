// Package upload stores request file attachments on local disk and maps
// them to their public /uploads/ paths.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	dErrors "folio/pkg/domain-errors"
)

// PublicPrefix is the URL prefix files are served under.
const PublicPrefix = "/uploads/"

// Saver writes uploaded files into a single directory. Filenames are the
// upload's unix-millisecond timestamp plus the original extension, so
// names sort chronologically and never collide with meaningful content.
type Saver struct {
	dir string
	now func() time.Time
}

// NewSaver creates the upload directory when missing.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir, now: time.Now}, nil
}

// Dir returns the directory files are written to, for static serving.
func (s *Saver) Dir() string { return s.dir }

// Save stores one uploaded file and returns its public path.
func (s *Saver) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d%s", s.now().UnixMilli(), filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store upload")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store upload")
	}
	return PublicPrefix + name, nil
}
