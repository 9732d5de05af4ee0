package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DATCH7/real-estate/internal/logger"
)

// photoFileStorage keeps uploaded photos as plain files in a single
// directory. Filenames are flat: no separators, no "..".
type photoFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewPhotoFileStorage creates the directory if needed.
func NewPhotoFileStorage(dir string, logger *logger.Logger) (PhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewPhotoFileStorage").Str("dir", dir).Msg("error creating photo directory")
		return nil, fmt.Errorf("error creating photo directory: %w", err)
	}

	return &photoFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

func (s *photoFileStorage) Dir() string {
	return s.dir
}

func (s *photoFileStorage) path(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhotoName, filename)
	}

	return filepath.Join(s.dir, filename), nil
}

// Save writes the file; an existing file with the same name is an error.
func (s *photoFileStorage) Save(ctx context.Context, filename string, content []byte) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoFileStorage.Save").Str("file", filename).Msg("error creating photo file")
		return fmt.Errorf("error creating photo file: %w", err)
	}

	if _, err = f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("error writing photo file: %w", err)
	}

	return f.Close()
}

// Delete removes every named file. Missing files are ignored; the remaining
// failures are joined.
func (s *photoFileStorage) Delete(ctx context.Context, filenames ...string) error {
	var errs []error
	for _, name := range filenames {
		path, err := s.path(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Err(err).Str("func", "*photoFileStorage.Delete").Str("file", name).Msg("error removing photo file")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
