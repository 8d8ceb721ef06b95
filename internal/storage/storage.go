package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store persists uploaded files under a single directory inside the public
// web root. The database keeps only the generated filename.
type Store struct {
	dir string
	log *zap.Logger
}

func New(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Save writes the uploaded file under a collision-free name and returns it.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	name := Filename(fh.Filename)
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Remove unlinks a stored file. Best effort: a missing file is not an error,
// any other failure is logged and swallowed so the caller's DB delete stands.
func (s *Store) Remove(filename string) {
	if filename == "" {
		return
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		s.log.Warn("could not remove stored file", zap.String("filename", filename), zap.Error(err))
	}
}

// Path returns the on-disk path for a stored filename. The base name is taken
// first so a crafted filename cannot escape the uploads directory.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Filename builds a stored name from the client-provided one: sanitized,
// lowercased, prefixed with a timestamp and a short random suffix.
func Filename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := Sanitize(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "fichier"
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d_%s_%s%s", time.Now().Unix(), suffix, base, ext)
}

// Sanitize lowercases and strips everything but letters, digits, '-' and '_'.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
