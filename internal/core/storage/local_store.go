package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

// LocalStore stages uploads in a directory on local disk.
type LocalStore struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

var _ core.FileStore = (*LocalStore)(nil)

func NewLocalStore(dir string, logger *slog.Logger) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalStore{dir: dir, now: time.Now, logger: logger}, nil
}

// Save writes r to <unix-millis>-<basename>. Two uploads landing in the same
// millisecond with the same name get a uuid suffix instead of overwriting each other.
func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (core.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return core.StoredFile{}, err
	}

	base := sanitizeName(originalName)
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + base

	f, err := s.create(name)
	if errors.Is(err, fs.ErrExist) {
		name = strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + uuid.NewString()[:8] + "-" + base
		f, err = s.create(name)
	}
	if err != nil {
		return core.StoredFile{}, fmt.Errorf("stage upload: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return core.StoredFile{}, fmt.Errorf("write upload: %w", err)
	}

	s.logger.Debug("storage.saved", "name", name, "size", n)
	return core.StoredFile{Name: name, Path: f.Name(), Size: n}, nil
}

func (s *LocalStore) create(name string) (*os.File, error) {
	return os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
}

// Remove deletes a staged file. A file that is already gone is not an error.
func (s *LocalStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// sanitizeName keeps only the final path element of a client-supplied name.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." || base == "" {
		return "upload"
	}
	return base
}
