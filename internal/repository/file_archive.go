package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// FileArchive keeps the snapshot in a plain text file (bookings.txt by
// default).
type FileArchive struct {
	path string
}

// NewFileArchive returns an archive backed by path.  The file is not
// touched until Open or Write.
func NewFileArchive(path string) *FileArchive {
	return &FileArchive{path: path}
}

// Location returns the file path.
func (a *FileArchive) Location() string { return a.path }

// Open opens the file for reading.  A missing file is ErrNoSnapshot.
func (a *FileArchive) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", reservation.ErrNoSnapshot, a.path)
		}
		return nil, err
	}
	return f, nil
}

// Write truncates the file and hands it to fn.  The file is closed on
// every path; a close error is returned when fn itself succeeded.
func (a *FileArchive) Write(_ context.Context, fn func(io.Writer) error) (err error) {
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(a.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
