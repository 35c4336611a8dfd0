package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akushwaha/studentms/internal/app/models"
	"github.com/akushwaha/studentms/internal/pkg/apperrors"
	"github.com/akushwaha/studentms/internal/pkg/dberrors"
)

// emailUniqueConstraint is the unique constraint on students.email.
const emailUniqueConstraint = "students_email_key"

// PostgresStudentRepository persists students in the students table. The
// database is the source of truth: no state is held in process, ids come from
// the table's sequence and each call maps to a single SQL statement executed
// on a connection acquired from (and released back to) the injected pool.
type PostgresStudentRepository struct {
	db *pgxpool.Pool
}

var _ StudentRepository = (*PostgresStudentRepository)(nil)

// NewPostgresStudentRepository creates a repository on the given pool. The
// pool is shared and owned by the caller.
func NewPostgresStudentRepository(db *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{
		db: db,
	}
}

// Save validates the student through entity construction, inserts it and
// returns it with the database-assigned id. A duplicate email surfaces as an
// error wrapping apperrors.ErrEmailAlreadyExists, never as an empty result.
func (r *PostgresStudentRepository) Save(ctx context.Context, in NewStudentInput) (models.Student, error) {
	// Construct first so validation and normalization happen before any SQL.
	candidate, err := models.New(0, in.Name, in.Email, in.Phone, in.DateOfBirth, in.Address, in.Department, in.Status)
	if err != nil {
		return models.Student{}, err
	}

	query := `
		INSERT INTO students (name, email, phone, dob, address, department, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRow(ctx, query,
		candidate.Name(),
		candidate.Email(),
		candidate.Phone(),
		candidate.DateOfBirth(),
		nullIfEmpty(candidate.Address()),
		candidate.Department().Code(),
		candidate.Status().Code(),
	).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueConstraint) {
			return models.Student{}, fmt.Errorf("%w: %s", apperrors.ErrEmailAlreadyExists, candidate.Email())
		}
		return models.Student{}, fmt.Errorf("error inserting student: %w", err)
	}

	return candidate.WithID(int(id))
}

// FindByID retrieves a student by id. A missing row is a normal outcome.
func (r *PostgresStudentRepository) FindByID(ctx context.Context, id int) (models.Student, bool, error) {
	query := `
		SELECT id, name, email, phone, dob, address, department, status
		FROM students
		WHERE id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Student{}, false, nil
		}
		return models.Student{}, false, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, true, nil
}

// Update replaces the row keyed by student.ID(). A missing row is reported
// through ok=false; nothing is written in that case.
func (r *PostgresStudentRepository) Update(ctx context.Context, student models.Student) (models.Student, bool, error) {
	query := `
		UPDATE students
		SET name = $1, email = $2, phone = $3, dob = $4, address = $5, department = $6, status = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name(),
		student.Email(),
		student.Phone(),
		student.DateOfBirth(),
		nullIfEmpty(student.Address()),
		student.Department().Code(),
		student.Status().Code(),
		student.ID(),
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueConstraint) {
			return models.Student{}, false, fmt.Errorf("%w: %s", apperrors.ErrEmailAlreadyExists, student.Email())
		}
		return models.Student{}, false, fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.Student{}, false, nil
	}

	return student, true, nil
}

// DeleteByID removes the row with the given id, reporting whether one
// existed.
func (r *PostgresStudentRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// FindAll retrieves every student, ordered by id.
func (r *PostgresStudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, email, phone, dob, address, department, status
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// scanStudent rebuilds a Student from one row. Rows go through entity
// construction, so a row the entity rejects is reported as an error rather
// than leaking an invalid Student.
func scanStudent(row pgx.Row) (models.Student, error) {
	var (
		id         int64
		name       string
		email      string
		phone      string
		dob        time.Time
		address    *string
		deptCode   string
		statusCode string
	)

	if err := row.Scan(&id, &name, &email, &phone, &dob, &address, &deptCode, &statusCode); err != nil {
		return models.Student{}, err
	}

	department, ok := models.DepartmentFromCode(deptCode)
	if !ok {
		return models.Student{}, fmt.Errorf("row %d carries unknown department code %q", id, deptCode)
	}
	status, ok := models.StatusFromCode(statusCode)
	if !ok {
		return models.Student{}, fmt.Errorf("row %d carries unknown status code %q", id, statusCode)
	}

	return models.New(int(id), name, email, phone, dob, derefOrEmpty(address), department, status)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
