package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akushwaha/studentms/internal/app/models"
	"github.com/akushwaha/studentms/internal/app/repositories"
	"github.com/akushwaha/studentms/internal/pkg/apperrors"
)

// recordingRepo is a hand-rolled repository double that counts mutations, so
// tests can prove a validation failure never reached persistence.
type recordingRepo struct {
	students    map[int]models.Student
	nextID      int
	saveCalls   int
	updateCalls int
	deleteCalls int
}

var _ repositories.StudentRepository = (*recordingRepo)(nil)

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{
		students: make(map[int]models.Student),
		nextID:   100,
	}
}

func (r *recordingRepo) Save(_ context.Context, in repositories.NewStudentInput) (models.Student, error) {
	r.saveCalls++
	r.nextID++
	student, err := models.New(r.nextID, in.Name, in.Email, in.Phone, in.DateOfBirth, in.Address, in.Department, in.Status)
	if err != nil {
		return models.Student{}, err
	}
	r.students[r.nextID] = student
	return student, nil
}

func (r *recordingRepo) FindByID(_ context.Context, id int) (models.Student, bool, error) {
	s, ok := r.students[id]
	return s, ok, nil
}

func (r *recordingRepo) Update(_ context.Context, student models.Student) (models.Student, bool, error) {
	r.updateCalls++
	if _, ok := r.students[student.ID()]; !ok {
		return models.Student{}, false, nil
	}
	r.students[student.ID()] = student
	return student, true, nil
}

func (r *recordingRepo) DeleteByID(_ context.Context, id int) (bool, error) {
	r.deleteCalls++
	if _, ok := r.students[id]; !ok {
		return false, nil
	}
	delete(r.students, id)
	return true, nil
}

func (r *recordingRepo) FindAll(_ context.Context) ([]models.Student, error) {
	all := make([]models.Student, 0, len(r.students))
	for _, s := range r.students {
		all = append(all, s)
	}
	return all, nil
}

func validInput() CreateStudentInput {
	return CreateStudentInput{
		Name:           "John Doe",
		Email:          "John.Doe@Example.com",
		Phone:          "(123) 456-7890",
		DateOfBirth:    "2005-05-10",
		Address:        "123 Main St",
		DepartmentCode: "CSE",
		StatusCode:     "ACTIVE",
	}
}

func TestCreateStudentSuccess(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)

	created, err := svc.CreateStudent(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 101, created.ID())
	assert.Equal(t, "john.doe@example.com", created.Email())
	assert.Equal(t, "1234567890", created.Phone())
	assert.Equal(t, models.DeptCSE, created.Department())
	assert.Equal(t, models.StatusActive, created.Status())
	assert.Equal(t, 1, repo.saveCalls)
}

func TestCreateStudentLowercaseCodesAccepted(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)

	in := validInput()
	in.DepartmentCode = "cse"
	in.StatusCode = "active"

	created, err := svc.CreateStudent(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.DeptCSE, created.Department())
	assert.Equal(t, models.StatusActive, created.Status())
}

func TestCreateStudentConversionFailuresPrecedePersistence(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*CreateStudentInput)
	}{
		{"dateOfBirth", func(in *CreateStudentInput) { in.DateOfBirth = "10-05-2005" }},
		{"department", func(in *CreateStudentInput) { in.DepartmentCode = "UNDERWATER" }},
		{"status", func(in *CreateStudentInput) { in.StatusCode = "SLEEPING" }},
	}

	for _, tc := range cases {
		repo := newRecordingRepo()
		svc := NewStudentService(repo)

		in := validInput()
		tc.mutate(&in)

		_, err := svc.CreateStudent(context.Background(), in)
		require.Error(t, err, tc.field)
		assert.True(t, apperrors.IsValidation(err), tc.field)

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tc.field, verr.Field)
		assert.Zero(t, repo.saveCalls, "repository must not be touched for %s", tc.field)
	}
}

func TestCreateStudentInvalidEmailNeverStored(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)

	in := validInput()
	in.Email = "invalid-email"

	_, err := svc.CreateStudent(context.Background(), in)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.students)
}

func TestUpdateStudentNameRoundTrip(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	updated, ok, err := svc.UpdateStudentName(ctx, created.ID(), "Jane Doe")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", updated.Name())

	found, ok, err := svc.FindStudentByID(ctx, created.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", found.Name())
}

func TestUpdateUnknownIDReportsNotFound(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)

	_, ok, err := svc.UpdateStudentName(context.Background(), 9999, "Jane Doe")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, repo.updateCalls)
}

func TestFailedDerivationLeavesRecordUnchanged(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	_, _, err = svc.UpdateStudentName(ctx, created.ID(), "Invalid@Name")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, repo.updateCalls)

	found, ok, err := svc.FindStudentByID(ctx, created.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "John Doe", found.Name())
}

func TestUpdateDepartmentAndStatusByCode(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	updated, ok, err := svc.UpdateStudentDepartment(ctx, created.ID(), "ece")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.DeptECE, updated.Department())

	updated, ok, err = svc.UpdateStudentStatus(ctx, created.ID(), "graduated")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.StatusGraduated, updated.Status())
}

func TestUpdateWithUnknownCodeFailsBeforeLookup(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	_, _, err = svc.UpdateStudentDepartment(ctx, created.ID(), "UNDERWATER")
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = svc.UpdateStudentStatus(ctx, created.ID(), "SLEEPING")
	assert.True(t, apperrors.IsValidation(err))

	assert.Zero(t, repo.updateCalls)
}

func TestDeleteStudentByID(t *testing.T) {
	repo := newRecordingRepo()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	ok, err := svc.DeleteStudentByID(ctx, created.ID())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteStudentByID(ctx, created.ID())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindAllStudentsEmpty(t *testing.T) {
	svc := NewStudentService(newRecordingRepo())

	all, err := svc.FindAllStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestServiceOverFileBackedRepositoryEndToEnd(t *testing.T) {
	// The John Doe scenario from top to bottom over the real file-backed
	// backend.
	repo := repositories.NewMemoryStudentRepository(nil, zerolog.Nop())
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, CreateStudentInput{
		Name:           "John Doe",
		Email:          "John.Doe@Example.com",
		Phone:          "(123) 456-7890",
		DateOfBirth:    "2005-05-10",
		Address:        "123 Main St",
		DepartmentCode: "CSE",
		StatusCode:     "ACTIVE",
	})
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", created.Email())
	assert.Equal(t, "1234567890", created.Phone())
	assert.Positive(t, created.ID())
	assert.True(t, created.DateOfBirth().Equal(time.Date(2005, time.May, 10, 0, 0, 0, 0, time.UTC)))

	found, ok, err := svc.FindStudentByID(ctx, created.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, found)
}
