// Package storage persists the whole store as a single JSON blob under a
// fixed key name. Load never fails: a missing or corrupt blob falls back
// to the empty snapshot so the application always starts.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/teamhub-dev/teamhub/internal/models"
)

// SnapshotKey is the fixed identifier the blob is stored under. Existing
// data keyed by this name must keep loading across releases.
const SnapshotKey = "teamhub-store"

type Store struct {
	path string
}

func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, SnapshotKey+".json")}
}

// Path returns the location of the persisted blob.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot. Absence or a parse failure yields
// the empty snapshot; corruption is logged, never fatal.
func (s *Store) Load() models.Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).Warnf("failed to read %s, starting empty", s.path)
		}
		return models.EmptySnapshot()
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logrus.WithError(err).Warnf("corrupt snapshot at %s, starting empty", s.path)
		return models.EmptySnapshot()
	}

	snap.Normalize()
	return snap
}

// Save writes the entire snapshot. The write goes to a temp file in the
// same directory and is renamed into place, so readers never observe a
// partial blob.
func (s *Store) Save(snap models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), SnapshotKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
