// Package storage persists student records as a pretty-printed JSON array in
// a snapshot file. The file is rewritten in full on every save; there is no
// partial or incremental persistence. Two processes sharing one snapshot file
// are not supported: the last writer wins.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/akushwaha/studentms/internal/app/models"
)

// SnapshotStore reads and writes the student snapshot file.
type SnapshotStore struct {
	path string
	log  zerolog.Logger
}

// NewSnapshotStore creates a store for the snapshot file at path.
func NewSnapshotStore(path string, log zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{
		path: path,
		log:  log,
	}
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads all students from the snapshot file. It never fails: a missing
// file, unreadable file or malformed content all yield an empty slice so the
// application can always start.
func (s *SnapshotStore) Load() []models.Student {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info().Str("path", s.path).Msg("Snapshot file not found, starting with an empty student list")
		} else {
			s.log.Error().Err(err).Str("path", s.path).Msg("Failed to read snapshot file, starting empty")
		}
		return []models.Student{}
	}

	var students []models.Student
	if err := json.Unmarshal(data, &students); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("Snapshot file is not a valid student list, starting empty")
		return []models.Student{}
	}
	if students == nil {
		// The file contained JSON null.
		return []models.Student{}
	}

	s.log.Info().Str("path", s.path).Int("count", len(students)).Msg("Loaded students from snapshot")
	return students
}

// Save overwrites the snapshot file with the given students, pretty-printed.
func (s *SnapshotStore) Save(students []models.Student) error {
	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}

	s.log.Debug().Str("path", s.path).Int("count", len(students)).Msg("Snapshot saved")
	return nil
}
