// Package store persists calendars as a compact JSON file guarded by a companion lock file.
package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultLockTimeout bounds lock acquisition when no timeout is configured.
const DefaultLockTimeout = 30 * time.Second

var _ ports.CalendarStore = (*Store)(nil)

// Store implements ports.CalendarStore using a flat JSON file.
type Store struct {
	path        string
	lockTimeout time.Duration
	logger      ports.Logger
}

// New creates a Store backed by the file at path.
func New(path string, lockTimeout time.Duration, logger ports.Logger) *Store {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &Store{
		path:        filepath.Clean(path),
		lockTimeout: lockTimeout,
		logger:      logger,
	}
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

// Write persists cal under the lock. An empty calendar never replaces an existing file.
func (s *Store) Write(ctx context.Context, cal *domain.CalendarYear) error {
	// The lock file lives next to the data file.
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.path)
	}

	unlock, err := acquire(ctx, s.path, s.lockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	if cal.Len() == 0 {
		if _, statErr := os.Stat(s.path); statErr == nil {
			s.logger.Info("empty calendar, keeping existing data file", "path", s.path)
			return nil
		}
	}

	data, err := cal.MarshalJSON()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by configuration
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	s.logger.Info("calendar written", "path", s.path, "entries", cal.Len(), "digest", cal.DigestString())
	return nil
}

// Read loads the calendar under the lock.
func (s *Store) Read(ctx context.Context) (*domain.CalendarYear, error) {
	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(errors.Join(domain.ErrSnapshotNotFound, err), "path", s.path)
	}

	unlock, err := acquire(ctx, s.path, s.lockTimeout)
	if err != nil {
		return nil, err
	}
	defer unlock()

	//nolint:gosec // Path is cleaned and provided by configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(errors.Join(domain.ErrSnapshotNotFound, err), "path", s.path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	cal, err := domain.ParseCalendarYear(data)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreUnmarshalFailed, err), "path", s.path)
	}
	return cal, nil
}
