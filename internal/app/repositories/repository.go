// Package repositories defines the persistence contract for student records
// and its two backends: a file-backed in-memory map and a PostgreSQL store.
package repositories

import (
	"context"
	"time"

	"github.com/akushwaha/studentms/internal/app/models"
)

// NewStudentInput carries the attributes of a student to be created. There is
// deliberately no ID field: id assignment belongs to the repository.
type NewStudentInput struct {
	Name        string
	Email       string
	Phone       string
	DateOfBirth time.Time
	Address     string
	Department  models.Department
	Status      models.Status
}

// StudentRepository is the capability set every backend implements. Absence
// of a record is a normal outcome reported through the bool return, never an
// error. Each method is its own unit of work; there are no cross-call
// transactions.
type StudentRepository interface {
	// Save assigns a new unique id, persists the student and returns it
	// with the id populated.
	Save(ctx context.Context, in NewStudentInput) (models.Student, error)

	// FindByID looks a student up by id. ok is false when no such record
	// exists.
	FindByID(ctx context.Context, id int) (student models.Student, ok bool, err error)

	// Update replaces the stored record whose id equals student.ID(). ok is
	// false, and nothing is written, when no such record exists. Update
	// never creates records.
	Update(ctx context.Context, student models.Student) (updated models.Student, ok bool, err error)

	// DeleteByID removes the record with the given id, reporting whether a
	// record existed.
	DeleteByID(ctx context.Context, id int) (bool, error)

	// FindAll returns every record. The slice is empty, never nil, when the
	// store holds no records.
	FindAll(ctx context.Context) ([]models.Student, error)
}
