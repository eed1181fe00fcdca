package localdisk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// Store keeps asset bytes as plain files under one root directory. Stored
// names are opaque tokens generated by the service layer, so the only path
// handling needed here is making sure a name cannot escape the root.
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore creates the root directory if needed and returns a Store.
func NewStore(root string, logger *slog.Logger) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Store{root: abs, logger: logger}, nil
}

// resolve joins a stored name to the root, rejecting anything that would
// resolve outside of it.
func (s *Store) resolve(storedName string) (string, error) {
	if storedName == "" || strings.ContainsAny(storedName, `/\`) {
		return "", fmt.Errorf("invalid stored name %q", storedName)
	}
	full := filepath.Join(s.root, filepath.Clean(storedName))
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("stored name %q escapes storage root", storedName)
	}
	return full, nil
}

// Save streams content into a new file and returns the number of bytes
// written.
func (s *Store) Save(ctx context.Context, storedName string, content io.Reader) (int64, error) {
	full, err := s.resolve(storedName)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(full)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(full)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	return written, nil
}

// Open returns the file as a seekable stream plus its modification time, or
// domain.ErrFileNotFound.
func (s *Store) Open(ctx context.Context, storedName string) (io.ReadSeekCloser, time.Time, error) {
	full, err := s.resolve(storedName)
	if err != nil {
		return nil, time.Time{}, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, time.Time{}, domain.ErrFileNotFound
		}
		return nil, time.Time{}, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, fmt.Errorf("failed to stat file: %w", err)
	}
	return f, info.ModTime(), nil
}

// Delete removes the file, reporting false without error when it is already
// absent.
func (s *Store) Delete(ctx context.Context, storedName string) (bool, error) {
	full, err := s.resolve(storedName)
	if err != nil {
		return false, err
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete file: %w", err)
	}
	return true, nil
}
