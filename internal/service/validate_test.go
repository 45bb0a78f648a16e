package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcd123!", true},
		{"Str0ng#Pass", true},
		{"abcd123!", false},  // no uppercase
		{"ABCD123!", false},  // no lowercase
		{"Abcdefg!", false},  // no digit
		{"Abcd1234", false},  // no symbol
		{"Ab1!", false},      // too short
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validPassword(tc.password), "password %q", tc.password)
	}
}

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"123456789", false},   // 9 digits
		{"12345678901", false}, // 11 digits
		{"12345abcde", false},  // non-digits
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validPhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"alice.smith@example.co.uk", true},
		{"not-an-email", false},
		{"missing@domain", false},
		{"@x.com", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validEmail(tc.email), "email %q", tc.email)
	}
}

// The rule lists report the first failing rule, in declaration order.
func TestValidateRegistration_FirstFailureWins(t *testing.T) {
	err := validateRegistration("Al", "bad-email", "123", "weak")
	assert.EqualError(t, err, "Name should be minimum 5 characters!")

	err = validateRegistration("Alice Smith", "bad-email", "123", "weak")
	assert.EqualError(t, err, "Enter a valid email!")

	err = validateRegistration("Alice Smith", "a@x.com", "123", "weak")
	assert.EqualError(t, err, "Phone number must be of 10 characters!")

	err = validateRegistration("Alice Smith", "a@x.com", "1234567890", "weak")
	assert.EqualError(t, err, "Password must contain atleast 1 uppercase, 1 lowercase, 1 special character, and 1 number!")

	assert.NoError(t, validateRegistration("Alice Smith", "a@x.com", "1234567890", "Abcd123!"))
}

func TestValidateDataFields_FirstFailureWins(t *testing.T) {
	err := validateDataFields("ab", "bad", "123", "")
	assert.EqualError(t, err, "Name should be minimum 3 characters!")

	err = validateDataFields("abc", "bad", "123", "")
	assert.EqualError(t, err, "Enter a valid email!")

	err = validateDataFields("abc", "a@x.com", "123", "")
	assert.EqualError(t, err, "Enter a valid phone!")

	err = validateDataFields("abc", "a@x.com", "1234567890", "")
	assert.EqualError(t, err, "Domain cannot be empty!")

	assert.NoError(t, validateDataFields("abc", "a@x.com", "1234567890", "example.com"))
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := validateLogin("nope", "")
	var ve ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.EqualError(t, err, "Enter a valid email")

	err = validateLogin("a@x.com", "")
	assert.EqualError(t, err, "Password cannot be empty")
}
