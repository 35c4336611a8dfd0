package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentFromCode(t *testing.T) {
	for _, code := range []string{"CSE", "cse", "Cse"} {
		d, ok := DepartmentFromCode(code)
		assert.True(t, ok, code)
		assert.Equal(t, DeptCSE, d)
	}

	for _, code := range []string{"", "PHYSICS", "CS"} {
		_, ok := DepartmentFromCode(code)
		assert.False(t, ok, code)
	}
}

func TestDepartmentDisplayNames(t *testing.T) {
	assert.Equal(t, "Computer Science & Engineering", DeptCSE.DisplayName())
	assert.Equal(t, "Mechanical Engineering", DeptME.DisplayName())

	for _, d := range AllDepartments() {
		assert.True(t, d.IsValid())
		assert.NotEmpty(t, d.DisplayName())
		assert.NotEmpty(t, d.Code())
	}
}

func TestStatusFromCode(t *testing.T) {
	for _, code := range []string{"ACTIVE", "active", "Active"} {
		s, ok := StatusFromCode(code)
		assert.True(t, ok, code)
		assert.Equal(t, StatusActive, s)
	}

	for _, code := range []string{"", "ENROLLED", "ACT"} {
		_, ok := StatusFromCode(code)
		assert.False(t, ok, code)
	}
}

func TestStatusDisplayNames(t *testing.T) {
	assert.Equal(t, "Active", StatusActive.DisplayName())
	assert.Equal(t, "Dropped", StatusDropped.DisplayName())

	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid())
		assert.NotEmpty(t, s.DisplayName())
	}
}
