package models

import "strings"

// Status is the closed set of enrollment statuses a student can have. The
// value of each constant doubles as its machine-readable code.
type Status string

const (
	// StatusActive means the student is currently enrolled and attending.
	StatusActive Status = "ACTIVE"
	// StatusInactive means the student is temporarily not enrolled.
	StatusInactive Status = "INACTIVE"
	// StatusGraduated means the student completed their course of study.
	StatusGraduated Status = "GRADUATED"
	// StatusDropped means the student officially withdrew.
	StatusDropped Status = "DROPPED"
)

// statusNames maps each status to its human-readable display name.
var statusNames = map[Status]string{
	StatusActive:    "Active",
	StatusInactive:  "Inactive",
	StatusGraduated: "Graduated",
	StatusDropped:   "Dropped",
}

// AllStatuses returns every status in declaration order.
func AllStatuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusGraduated, StatusDropped}
}

// Code returns the machine-readable code, e.g. "ACTIVE".
func (s Status) Code() string {
	return string(s)
}

// DisplayName returns the human-readable name, e.g. "Active".
func (s Status) DisplayName() string {
	return statusNames[s]
}

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// String returns the display name, matching how statuses are rendered to
// users.
func (s Status) String() string {
	return s.DisplayName()
}

// StatusFromCode finds a status from a code string. The search is
// case-insensitive.
func StatusFromCode(code string) (Status, bool) {
	for _, s := range AllStatuses() {
		if strings.EqualFold(code, s.Code()) {
			return s, true
		}
	}
	return "", false
}
