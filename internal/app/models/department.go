package models

import "strings"

// Department is the closed set of academic departments. The value of each
// constant doubles as its machine-readable code.
type Department string

const (
	DeptCSE Department = "CSE"
	DeptAI  Department = "AI"
	DeptML  Department = "ML"
	DeptECE Department = "ECE"
	DeptEE  Department = "EE"
	DeptME  Department = "ME"
	DeptCE  Department = "CE"
	DeptIT  Department = "IT"
	DeptCHE Department = "CHE"
	DeptBT  Department = "BT"
	DeptAE  Department = "AE"
)

// departmentNames maps each department to its human-readable display name.
var departmentNames = map[Department]string{
	DeptCSE: "Computer Science & Engineering",
	DeptAI:  "Artificial Intelligence",
	DeptML:  "Machine Learning",
	DeptECE: "Electronics & Communication",
	DeptEE:  "Electrical Engineering",
	DeptME:  "Mechanical Engineering",
	DeptCE:  "Civil Engineering",
	DeptIT:  "Information Technology",
	DeptCHE: "Chemical Engineering",
	DeptBT:  "Biotechnology",
	DeptAE:  "Aerospace Engineering",
}

// AllDepartments returns every department in declaration order.
func AllDepartments() []Department {
	return []Department{
		DeptCSE, DeptAI, DeptML, DeptECE, DeptEE, DeptME,
		DeptCE, DeptIT, DeptCHE, DeptBT, DeptAE,
	}
}

// Code returns the short machine-readable code, e.g. "CSE".
func (d Department) Code() string {
	return string(d)
}

// DisplayName returns the full human-readable name of the department.
func (d Department) DisplayName() string {
	return departmentNames[d]
}

// IsValid reports whether d is one of the defined departments.
func (d Department) IsValid() bool {
	_, ok := departmentNames[d]
	return ok
}

// String returns the display name, matching how departments are rendered to
// users.
func (d Department) String() string {
	return d.DisplayName()
}

// DepartmentFromCode finds a department from a code string. The search is
// case-insensitive.
func DepartmentFromCode(code string) (Department, bool) {
	for _, d := range AllDepartments() {
		if strings.EqualFold(code, d.Code()) {
			return d, true
		}
	}
	return "", false
}
