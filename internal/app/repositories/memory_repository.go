package repositories

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/akushwaha/studentms/internal/app/models"
	"github.com/akushwaha/studentms/internal/storage"
)

// idBaseline is the counter start when the snapshot holds no students, so the
// first assigned id is idBaseline+1.
const idBaseline = 100

// MemoryStudentRepository keeps students in an in-memory map and writes the
// whole map through to a JSON snapshot file after every successful mutation.
// The in-memory state is authoritative: snapshot write failures are logged
// and swallowed, and the caller still sees the mutation succeed.
type MemoryStudentRepository struct {
	mu        sync.RWMutex
	students  map[int]models.Student
	idCounter atomic.Int64
	store     *storage.SnapshotStore
	log       zerolog.Logger
}

var _ StudentRepository = (*MemoryStudentRepository)(nil)

// NewMemoryStudentRepository loads the snapshot (an absent or unreadable file
// yields an empty store, never a startup failure) and positions the id
// counter one below the next id to hand out: max of the loaded ids, or the
// baseline when none exist.
func NewMemoryStudentRepository(store *storage.SnapshotStore, log zerolog.Logger) *MemoryStudentRepository {
	r := &MemoryStudentRepository{
		students: make(map[int]models.Student),
		store:    store,
		log:      log,
	}

	maxID := 0
	if store != nil {
		for _, s := range store.Load() {
			r.students[s.ID()] = s
			if s.ID() > maxID {
				maxID = s.ID()
			}
		}
	}
	if len(r.students) == 0 {
		maxID = idBaseline
	}
	r.idCounter.Store(int64(maxID))

	return r
}

// persist writes the current map to the snapshot file. Failures are logged
// and swallowed; callers must not be able to tell a failed write from a
// successful one.
func (r *MemoryStudentRepository) persist() {
	if r.store == nil {
		return
	}

	students := make([]models.Student, 0, len(r.students))
	for _, s := range r.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID() < students[j].ID() })

	if err := r.store.Save(students); err != nil {
		r.log.Error().Err(err).Str("path", r.store.Path()).
			Msg("Failed to persist snapshot, in-memory state remains authoritative")
	}
}

// Save assigns the next id, constructs the student (running full entity
// validation before anything is stored) and writes through to the snapshot.
func (r *MemoryStudentRepository) Save(_ context.Context, in NewStudentInput) (models.Student, error) {
	newID := int(r.idCounter.Add(1))

	student, err := models.New(newID, in.Name, in.Email, in.Phone, in.DateOfBirth, in.Address, in.Department, in.Status)
	if err != nil {
		return models.Student{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[newID] = student
	r.persist()

	return student, nil
}

// FindByID looks a student up in the map.
func (r *MemoryStudentRepository) FindByID(_ context.Context, id int) (models.Student, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	student, ok := r.students[id]
	return student, ok, nil
}

// Update replaces the stored record keyed by student.ID(), or reports
// not-found without writing anything.
func (r *MemoryStudentRepository) Update(_ context.Context, student models.Student) (models.Student, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[student.ID()]; !ok {
		return models.Student{}, false, nil
	}

	r.students[student.ID()] = student
	r.persist()

	return student, true, nil
}

// DeleteByID removes the record with the given id, if present.
func (r *MemoryStudentRepository) DeleteByID(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[id]; !ok {
		return false, nil
	}

	delete(r.students, id)
	r.persist()

	return true, nil
}

// FindAll returns every student, ordered by id.
func (r *MemoryStudentRepository) FindAll(_ context.Context) ([]models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]models.Student, 0, len(r.students))
	for _, s := range r.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID() < students[j].ID() })

	return students, nil
}
