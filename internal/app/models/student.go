// Package models contains the student domain model and its closed
// vocabularies. The Student type is an immutable value object: every field is
// checked at construction, so an invalid Student cannot be observed anywhere
// in the system.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/akushwaha/studentms/internal/pkg/apperrors"
	"github.com/akushwaha/studentms/internal/pkg/validation"
)

// Student represents a single student record. Fields are unexported; use New
// to construct one and the With* methods to derive modified copies. The id is
// assigned by the persistence layer, never by the entity itself.
type Student struct {
	id         int
	name       string
	email      string
	phone      string
	dob        time.Time
	address    string
	department Department
	status     Status
}

// New constructs a Student, validating name, email and phone. Email and phone
// are stored in normalized form (lower-case trimmed email, digits with an
// optional leading '+' for phone). Date of birth, address, department and
// status are accepted as-is: the enums are already closed values and the date
// is already parsed. New performs no I/O.
func New(id int, name, email, phone string, dob time.Time, address string, department Department, status Status) (Student, error) {
	if !validation.IsValidName(name) {
		return Student{}, apperrors.NewValidationError("name", "must be 2-50 letters, spaces, periods, apostrophes or hyphens")
	}
	if !validation.IsValidEmail(email) {
		return Student{}, apperrors.NewValidationError("email", "must be a valid email address")
	}
	if !validation.IsValidPhone(phone) {
		return Student{}, apperrors.NewValidationError("phone", "must be 7-15 digits with an optional leading '+'")
	}

	return Student{
		id:         id,
		name:       name,
		email:      validation.NormalizeEmail(email),
		phone:      validation.NormalizePhone(phone),
		dob:        dob,
		address:    address,
		department: department,
		status:     status,
	}, nil
}

// ID returns the unique identifier, or 0 before persistence assigned one.
func (s Student) ID() int { return s.id }

// Name returns the student's full name.
func (s Student) Name() string { return s.name }

// Email returns the normalized email address.
func (s Student) Email() string { return s.email }

// Phone returns the normalized phone number.
func (s Student) Phone() string { return s.phone }

// DateOfBirth returns the student's date of birth.
func (s Student) DateOfBirth() time.Time { return s.dob }

// Address returns the free-text address, possibly empty.
func (s Student) Address() string { return s.address }

// Department returns the academic department.
func (s Student) Department() Department { return s.department }

// Status returns the enrollment status.
func (s Student) Status() Status { return s.status }

// WithID derives a copy with the given id. Reserved for the persistence
// layer, which owns id assignment.
func (s Student) WithID(id int) (Student, error) {
	return New(id, s.name, s.email, s.phone, s.dob, s.address, s.department, s.status)
}

// WithName derives a copy with a new name, re-running full validation.
func (s Student) WithName(name string) (Student, error) {
	return New(s.id, name, s.email, s.phone, s.dob, s.address, s.department, s.status)
}

// WithEmail derives a copy with a new email, re-running full validation.
func (s Student) WithEmail(email string) (Student, error) {
	return New(s.id, s.name, email, s.phone, s.dob, s.address, s.department, s.status)
}

// WithPhone derives a copy with a new phone number, re-running full
// validation.
func (s Student) WithPhone(phone string) (Student, error) {
	return New(s.id, s.name, s.email, phone, s.dob, s.address, s.department, s.status)
}

// WithAddress derives a copy with a new address.
func (s Student) WithAddress(address string) (Student, error) {
	return New(s.id, s.name, s.email, s.phone, s.dob, address, s.department, s.status)
}

// WithDepartment derives a copy with a new department.
func (s Student) WithDepartment(department Department) (Student, error) {
	return New(s.id, s.name, s.email, s.phone, s.dob, s.address, department, s.status)
}

// WithStatus derives a copy with a new status.
func (s Student) WithStatus(status Status) (Student, error) {
	return New(s.id, s.name, s.email, s.phone, s.dob, s.address, s.department, status)
}

// Equal reports whether two students are the same entity. Identity is defined
// solely by id.
func (s Student) Equal(other Student) bool {
	return s.id == other.id
}

// String returns a multi-line rendering of the student's core details.
func (s Student) String() string {
	return fmt.Sprintf(
		"\nName: %s\nid: %d\nphone: %s\nemail: %s\nDOB: %s\ndepartment: %s\naddress: %s\nstatus: %s",
		s.name, s.id, s.phone, s.email, s.dob.Format(validation.DateLayout),
		s.department, s.address, s.status,
	)
}

// studentJSON is the wire form of a Student in the snapshot file. Field order
// here is the order fields appear in the file.
type studentJSON struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DOB        string `json:"DOB"`
	Address    string `json:"address"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// MarshalJSON serializes the student with a stable field order and the date
// of birth as a yyyy-MM-dd string.
func (s Student) MarshalJSON() ([]byte, error) {
	return json.Marshal(studentJSON{
		ID:         s.id,
		Name:       s.name,
		Email:      s.email,
		Phone:      s.phone,
		DOB:        s.dob.Format(validation.DateLayout),
		Address:    s.address,
		Department: s.department.Code(),
		Status:     s.status.Code(),
	})
}

// UnmarshalJSON reads the wire form and rebuilds the student through New, so
// snapshot data is subject to the same validation as any other construction
// path. Unknown fields are ignored.
func (s *Student) UnmarshalJSON(data []byte) error {
	var raw studentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dob, ok := validation.ParseDate(raw.DOB)
	if !ok {
		return apperrors.NewValidationError("DOB", "must be a yyyy-MM-dd date")
	}
	department, ok := DepartmentFromCode(raw.Department)
	if !ok {
		return apperrors.NewValidationError("department", "unknown department code")
	}
	status, ok := StatusFromCode(raw.Status)
	if !ok {
		return apperrors.NewValidationError("status", "unknown status code")
	}

	student, err := New(raw.ID, raw.Name, raw.Email, raw.Phone, dob, raw.Address, department, status)
	if err != nil {
		return err
	}

	*s = student
	return nil
}
