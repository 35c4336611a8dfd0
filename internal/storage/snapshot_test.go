package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akushwaha/studentms/internal/app/models"
)

func testStudent(t *testing.T, id int, email string) models.Student {
	t.Helper()
	s, err := models.New(id, "John Doe", email, "1234567890",
		time.Date(2005, time.May, 10, 0, 0, 0, 0, time.UTC),
		"123 Main St", models.DeptCSE, models.StatusActive)
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "students.json"), zerolog.Nop())

	students := store.Load()
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestLoadMalformedFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte("{this is not json"), 0o644))

	store := NewSnapshotStore(path, zerolog.Nop())
	assert.Empty(t, store.Load())
}

func TestLoadNullFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	store := NewSnapshotStore(path, zerolog.Nop())
	students := store.Load()
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	store := NewSnapshotStore(path, zerolog.Nop())

	saved := []models.Student{
		testStudent(t, 101, "john@example.com"),
		testStudent(t, 102, "jane@example.com"),
	}
	require.NoError(t, store.Save(saved))

	loaded := store.Load()
	assert.Equal(t, saved, loaded)

	// The file is pretty-printed.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	store := NewSnapshotStore(path, zerolog.Nop())

	require.NoError(t, store.Save([]models.Student{
		testStudent(t, 101, "john@example.com"),
		testStudent(t, 102, "jane@example.com"),
	}))
	require.NoError(t, store.Save([]models.Student{
		testStudent(t, 103, "only@example.com"),
	}))

	loaded := store.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, 103, loaded[0].ID())
}

func TestSaveReportsWriteFailure(t *testing.T) {
	// A directory path cannot be written as a file.
	store := NewSnapshotStore(t.TempDir(), zerolog.Nop())

	err := store.Save([]models.Student{testStudent(t, 101, "john@example.com")})
	assert.Error(t, err)
}
