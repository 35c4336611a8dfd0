// Package ui implements the interactive console front end. It owns all
// reading from stdin and all user-facing messaging; errors coming up from the
// service layer are translated into console output here and never crash the
// loop.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/akushwaha/studentms/internal/app/models"
	"github.com/akushwaha/studentms/internal/app/services"
	"github.com/akushwaha/studentms/internal/pkg/apperrors"
)

// Menu drives the interactive loop over a student service.
type Menu struct {
	service *services.StudentService
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	now     func() time.Time
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(service *services.StudentService, in io.Reader, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
		now:     time.Now,
	}
}

// Run shows the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Student Management System ===")
		fmt.Fprintln(m.out, "1. Add a New Student")
		fmt.Fprintln(m.out, "2. Find a Student by ID")
		fmt.Fprintln(m.out, "3. Update a Student's Information")
		fmt.Fprintln(m.out, "4. Delete a Student")
		fmt.Fprintln(m.out, "5. Display All Students")
		fmt.Fprintln(m.out, "0. Exit Application")

		choice, ok, err := m.promptInt("\nEnter your choice: ")
		if err != nil {
			// Input stream closed; treat it like an exit request.
			return nil
		}
		if !ok {
			fmt.Fprintln(m.out, "Error: invalid input, please enter a number.")
			continue
		}

		switch choice {
		case 1:
			m.addStudent(ctx)
		case 2:
			m.findStudentByID(ctx)
		case 3:
			m.updateStudent(ctx)
		case 4:
			m.deleteStudent(ctx)
		case 5:
			m.displayAllStudents(ctx)
		case 0:
			fmt.Fprintf(m.out, "\nThank you for using the Student Management System. %s\n", m.exitGreeting())
			return nil
		default:
			fmt.Fprintln(m.out, "Error: invalid choice, please select an option from the menu.")
		}
	}
}

func (m *Menu) addStudent(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Add New Student ---")

	input := services.CreateStudentInput{}
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Enter Student Name: ", &input.Name},
		{"Enter Student Email: ", &input.Email},
		{"Enter Student Phone Number: ", &input.Phone},
		{"Enter Student Date of Birth (YYYY-MM-DD): ", &input.DateOfBirth},
		{"Enter Student Address: ", &input.Address},
		{departmentPrompt(), &input.DepartmentCode},
		{statusPrompt(), &input.StatusCode},
	}
	for _, f := range fields {
		line, err := m.promptLine(f.prompt)
		if err != nil {
			return
		}
		*f.dest = line
	}

	created, err := m.service.CreateStudent(ctx, input)
	if err != nil {
		m.reportError("could not add student", err)
		return
	}

	fmt.Fprintln(m.out, "\nSUCCESS: student added.")
	fmt.Fprintf(m.out, "Assigned Student ID: %d\n", created.ID())
}

func (m *Menu) findStudentByID(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Find a Student by ID ---")

	id, ok, err := m.promptInt("Enter the Student ID to search for: ")
	if err != nil || !ok {
		if !ok {
			fmt.Fprintln(m.out, "Error: invalid ID, please enter a valid number.")
		}
		return
	}

	student, found, err := m.service.FindStudentByID(ctx, id)
	if err != nil {
		m.reportError("could not look the student up", err)
		return
	}
	if !found {
		fmt.Fprintf(m.out, "\nError: no student found with ID %d\n", id)
		return
	}

	fmt.Fprintln(m.out, "\n--- Student Found ---")
	fmt.Fprintln(m.out, student)
}

func (m *Menu) updateStudent(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Update a Student's Information ---")

	id, ok, err := m.promptInt("Enter the ID of the student you want to update: ")
	if err != nil || !ok {
		if !ok {
			fmt.Fprintln(m.out, "Error: invalid ID, please enter a valid number.")
		}
		return
	}

	student, found, err := m.service.FindStudentByID(ctx, id)
	if err != nil {
		m.reportError("could not look the student up", err)
		return
	}
	if !found {
		fmt.Fprintf(m.out, "Error: no student found with ID %d\n", id)
		return
	}

	m.updateSubMenu(ctx, student)
}

// updateSubMenu loops over a single student's fields. The local copy is
// replaced after every successful update so the header always shows the
// current name.
func (m *Menu) updateSubMenu(ctx context.Context, student models.Student) {
	for {
		fmt.Fprintf(m.out, "\n--- Updating Student: %s (ID: %d) ---\n", student.Name(), student.ID())
		fmt.Fprintln(m.out, "Which field would you like to update?")
		fmt.Fprintln(m.out, "1. Name")
		fmt.Fprintln(m.out, "2. Email")
		fmt.Fprintln(m.out, "3. Phone Number")
		fmt.Fprintln(m.out, "4. Address")
		fmt.Fprintln(m.out, "5. Department")
		fmt.Fprintln(m.out, "6. Status")
		fmt.Fprintln(m.out, "0. Back to Main Menu")

		choice, ok, err := m.promptInt("Enter your choice: ")
		if err != nil {
			return
		}
		if !ok {
			fmt.Fprintln(m.out, "Error: invalid choice, please enter a number.")
			continue
		}

		var (
			prompt  string
			confirm string
			update  func(context.Context, int, string) (models.Student, bool, error)
		)
		switch choice {
		case 1:
			prompt, confirm, update = "Enter the new name: ", "name", m.service.UpdateStudentName
		case 2:
			prompt, confirm, update = "Enter the new email: ", "email", m.service.UpdateStudentEmail
		case 3:
			prompt, confirm, update = "Enter the new phone number: ", "phone number", m.service.UpdateStudentPhone
		case 4:
			prompt, confirm, update = "Enter the new address: ", "address", m.service.UpdateStudentAddress
		case 5:
			prompt, confirm, update = departmentPrompt(), "department", m.service.UpdateStudentDepartment
		case 6:
			prompt, confirm, update = statusPrompt(), "status", m.service.UpdateStudentStatus
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Error: invalid choice, please try again.")
			continue
		}

		value, err := m.promptLine(prompt)
		if err != nil {
			return
		}

		updated, found, err := update(ctx, student.ID(), value)
		if err != nil {
			m.reportError("could not update the student", err)
			continue
		}
		if !found {
			fmt.Fprintf(m.out, "Error: student with ID %d no longer exists.\n", student.ID())
			return
		}

		student = updated
		fmt.Fprintf(m.out, "\nSUCCESS: %s updated.\n", confirm)
	}
}

func (m *Menu) deleteStudent(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Delete a Student ---")

	id, ok, err := m.promptInt("Enter the ID of the student to delete: ")
	if err != nil || !ok {
		if !ok {
			fmt.Fprintln(m.out, "Error: invalid ID, please enter a valid number.")
		}
		return
	}

	deleted, err := m.service.DeleteStudentByID(ctx, id)
	if err != nil {
		m.reportError("could not delete the student", err)
		return
	}
	if !deleted {
		fmt.Fprintf(m.out, "\nERROR: no student found with ID %d.\n", id)
		return
	}

	fmt.Fprintf(m.out, "\nSUCCESS: student with ID %d was deleted.\n", id)
}

func (m *Menu) displayAllStudents(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Displaying All Students ---")

	students, err := m.service.FindAllStudents(ctx)
	if err != nil {
		m.reportError("could not list students", err)
		return
	}
	if len(students) == 0 {
		fmt.Fprintln(m.out, "There are no students in the system to display.")
		return
	}

	fmt.Fprintf(m.out, "Total students: %d\n", len(students))
	for _, student := range students {
		fmt.Fprintln(m.out, student)
		fmt.Fprintln(m.out, "------------------------------------------")
	}
}

// promptLine prints the prompt and reads one trimmed line. The error is
// non-nil only when the input stream has ended.
func (m *Menu) promptLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			m.log.Error().Err(err).Msg("reading console input")
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptInt reads one line and parses it as an integer. ok is false on a
// non-numeric entry.
func (m *Menu) promptInt(prompt string) (int, bool, error) {
	line, err := m.promptLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// reportError shows validation failures with their message and keeps anything
// else generic, logging the detail instead of dumping it on the user.
func (m *Menu) reportError(action string, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(m.out, "\nERROR: %s: %s\n", action, verr.Error())
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		fmt.Fprintf(m.out, "\nERROR: %s: %s\n", action, apperrors.ErrEmailAlreadyExists.Error())
	default:
		m.log.Error().Err(err).Str("action", action).Msg("console operation failed")
		fmt.Fprintf(m.out, "\nERROR: %s: an unexpected error occurred, please try again.\n", action)
	}
}

func (m *Menu) exitGreeting() string {
	switch hour := m.now().Hour(); {
	case hour >= 4 && hour < 12:
		return "Good Morning!"
	case hour >= 12 && hour < 20:
		return "Have a great day!"
	default:
		return "Good Night!"
	}
}

func departmentPrompt() string {
	codes := make([]string, 0, len(models.AllDepartments()))
	for _, d := range models.AllDepartments() {
		codes = append(codes, d.Code())
	}
	return fmt.Sprintf("Enter Department (%s): ", strings.Join(codes, ", "))
}

func statusPrompt() string {
	codes := make([]string, 0, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		codes = append(codes, s.Code())
	}
	return fmt.Sprintf("Enter Status (%s): ", strings.Join(codes, ", "))
}
