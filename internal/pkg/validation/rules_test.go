package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john.doe@example.com",
		"a_b%c+d@sub.example.org",
		"UPPER.CASE@EXAMPLE.COM",
		"x@y.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"invalid-email",
		"missing@tld",
		"@example.com",
		"john@example.c",
		"john@example.toolongtld",
		"john doe@example.com",
		" padded@example.com ",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"1234567",
		"+911234567890",
		"(123) 456-7890",
		"123-456-7890",
		"123456789012345",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"123456",            // too short
		"1234567890123456",  // too long
		"12345ab",           // letters
		"++1234567",         // double plus
		"1234567+",          // plus not leading
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{
		"John Doe",
		"O'Brien",
		"Jean-Luc Picard",
		"J. R. R. Tolkien",
		"Søren Kierkegaard",
		"李小龍",
	}
	for _, name := range valid {
		assert.True(t, IsValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"",
		"A", // too short
		"Invalid@Name",
		"Name123",
		"this name is way too long to be accepted by the system at all",
	}
	for _, name := range invalid {
		assert.False(t, IsValidName(name), "expected %q to be invalid", name)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2005-05-10")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2005, time.May, 10, 0, 0, 0, 0, time.UTC), got)

	for _, s := range []string{"", "10-05-2005", "2005/05/10", "2005-13-01", "2005-02-30", "not a date"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, "expected %q to fail parsing", s)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "1234567890", NormalizePhone("(123) 456-7890"))
	assert.Equal(t, "+911234567890", NormalizePhone("+91 12345 67890"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", NormalizeEmail("  John.Doe@Example.COM "))
	assert.Equal(t, "", NormalizeEmail(""))
}
