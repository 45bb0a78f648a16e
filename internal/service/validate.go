package service

import (
	"regexp"
	"strings"
	"unicode"
)

// Input validation is an explicit ordered list of predicate+message
// pairs evaluated top to bottom, short-circuiting on the first failure.
// The ordering is part of the contract: clients always see the first
// failing rule's message.

type rule struct {
	ok  func() bool
	msg string
}

func firstError(rules []rule) error {
	for _, r := range rules {
		if !r.ok() {
			return ValidationError(r.msg)
		}
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validPhone requires exactly 10 digits.
func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

const passwordSymbols = "!@#$%^&*"

// validPassword requires at least 8 characters with at least one
// uppercase letter, one lowercase letter, one digit and one symbol.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func validateRegistration(name, email, phone, password string) error {
	return firstError([]rule{
		{func() bool { return len(name) >= 5 }, "Name should be minimum 5 characters!"},
		{func() bool { return validEmail(email) }, "Enter a valid email!"},
		{func() bool { return validPhone(phone) }, "Phone number must be of 10 characters!"},
		{func() bool { return validPassword(password) }, "Password must contain atleast 1 uppercase, 1 lowercase, 1 special character, and 1 number!"},
	})
}

func validateLogin(email, password string) error {
	return firstError([]rule{
		{func() bool { return validEmail(email) }, "Enter a valid email"},
		{func() bool { return password != "" }, "Password cannot be empty"},
	})
}

func validateProfile(name, email, phone string) error {
	return firstError([]rule{
		{func() bool { return len(name) >= 5 }, "Name should be minimum 5 characters!"},
		{func() bool { return validEmail(email) }, "Enter a valid email!"},
		{func() bool { return validPhone(phone) }, "Enter a valid phone!"},
	})
}

func validateDataFields(name, email, phone, domainName string) error {
	return firstError([]rule{
		{func() bool { return len(name) >= 3 }, "Name should be minimum 3 characters!"},
		{func() bool { return validEmail(email) }, "Enter a valid email!"},
		{func() bool { return validPhone(phone) }, "Enter a valid phone!"},
		{func() bool { return domainName != "" }, "Domain cannot be empty!"},
	})
}
