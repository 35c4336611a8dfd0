// Package services orchestrates student operations: raw console input in,
// domain objects out. The service converts and validates strings before the
// repository is ever touched, so a validation error always means no
// persistence side effect occurred. Repository failures pass through
// unmodified; user-facing messaging is the UI's concern.
package services

import (
	"context"

	"github.com/akushwaha/studentms/internal/app/models"
	"github.com/akushwaha/studentms/internal/app/repositories"
	"github.com/akushwaha/studentms/internal/pkg/apperrors"
	"github.com/akushwaha/studentms/internal/pkg/validation"
)

// StudentService provides the business operations behind the console menu.
// It depends only on the repository interface and works identically over the
// file-backed and relational backends.
type StudentService struct {
	repo repositories.StudentRepository
}

// NewStudentService creates a service on the given repository.
func NewStudentService(repo repositories.StudentRepository) *StudentService {
	return &StudentService{
		repo: repo,
	}
}

// CreateStudentInput carries the raw strings collected by the UI.
type CreateStudentInput struct {
	Name           string
	Email          string
	Phone          string
	DateOfBirth    string
	Address        string
	DepartmentCode string
	StatusCode     string
}

// CreateStudent converts date, department and status from their string forms,
// then delegates creation to the repository. Any conversion failure is a
// ValidationError raised before the repository is called.
func (s *StudentService) CreateStudent(ctx context.Context, in CreateStudentInput) (models.Student, error) {
	dob, ok := validation.ParseDate(in.DateOfBirth)
	if !ok {
		return models.Student{}, apperrors.NewValidationError("dateOfBirth", "must be a yyyy-MM-dd date")
	}

	department, ok := models.DepartmentFromCode(in.DepartmentCode)
	if !ok {
		return models.Student{}, apperrors.NewValidationError("department", "unknown department code")
	}

	status, ok := models.StatusFromCode(in.StatusCode)
	if !ok {
		return models.Student{}, apperrors.NewValidationError("status", "unknown status code")
	}

	return s.repo.Save(ctx, repositories.NewStudentInput{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		DateOfBirth: dob,
		Address:     in.Address,
		Department:  department,
		Status:      status,
	})
}

// updateWith finds the student, derives a modified copy and persists it.
// ok is false when the id is unknown. A failed derivation (invalid new field
// value) returns the validation error and leaves the stored record untouched.
func (s *StudentService) updateWith(ctx context.Context, id int, derive func(models.Student) (models.Student, error)) (models.Student, bool, error) {
	student, ok, err := s.repo.FindByID(ctx, id)
	if err != nil || !ok {
		return models.Student{}, false, err
	}

	modified, err := derive(student)
	if err != nil {
		return models.Student{}, false, err
	}

	return s.repo.Update(ctx, modified)
}

// UpdateStudentName replaces the name of the student with the given id.
func (s *StudentService) UpdateStudentName(ctx context.Context, id int, newName string) (models.Student, bool, error) {
	return s.updateWith(ctx, id, func(st models.Student) (models.Student, error) {
		return st.WithName(newName)
	})
}

// UpdateStudentEmail replaces the email of the student with the given id.
func (s *StudentService) UpdateStudentEmail(ctx context.Context, id int, newEmail string) (models.Student, bool, error) {
	return s.updateWith(ctx, id, func(st models.Student) (models.Student, error) {
		return st.WithEmail(newEmail)
	})
}

// UpdateStudentPhone replaces the phone number of the student with the given
// id.
func (s *StudentService) UpdateStudentPhone(ctx context.Context, id int, newPhone string) (models.Student, bool, error) {
	return s.updateWith(ctx, id, func(st models.Student) (models.Student, error) {
		return st.WithPhone(newPhone)
	})
}

// UpdateStudentAddress replaces the address of the student with the given id.
func (s *StudentService) UpdateStudentAddress(ctx context.Context, id int, newAddress string) (models.Student, bool, error) {
	return s.updateWith(ctx, id, func(st models.Student) (models.Student, error) {
		return st.WithAddress(newAddress)
	})
}

// UpdateStudentDepartment replaces the department from a code string. An
// unknown code is a ValidationError raised before any lookup.
func (s *StudentService) UpdateStudentDepartment(ctx context.Context, id int, departmentCode string) (models.Student, bool, error) {
	department, ok := models.DepartmentFromCode(departmentCode)
	if !ok {
		return models.Student{}, false, apperrors.NewValidationError("department", "unknown department code")
	}

	return s.updateWith(ctx, id, func(st models.Student) (models.Student, error) {
		return st.WithDepartment(department)
	})
}

// UpdateStudentStatus replaces the status from a code string. An unknown code
// is a ValidationError raised before any lookup.
func (s *StudentService) UpdateStudentStatus(ctx context.Context, id int, statusCode string) (models.Student, bool, error) {
	status, ok := models.StatusFromCode(statusCode)
	if !ok {
		return models.Student{}, false, apperrors.NewValidationError("status", "unknown status code")
	}

	return s.updateWith(ctx, id, func(st models.Student) (models.Student, error) {
		return st.WithStatus(status)
	})
}

// FindStudentByID looks a student up by id.
func (s *StudentService) FindStudentByID(ctx context.Context, id int) (models.Student, bool, error) {
	return s.repo.FindByID(ctx, id)
}

// DeleteStudentByID removes a student, reporting whether one existed.
func (s *StudentService) DeleteStudentByID(ctx context.Context, id int) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}

// FindAllStudents returns every student on record.
func (s *StudentService) FindAllStudents(ctx context.Context) ([]models.Student, error) {
	return s.repo.FindAll(ctx)
}
