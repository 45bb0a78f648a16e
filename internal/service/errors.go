package service

import "errors"

// ValidationError carries the first failing rule's message for
// malformed input. Handlers map it to a 400 response.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Business errors surfaced to clients. The message text is part of the
// API contract, so the strings stay exactly as the clients expect them.
var (
	ErrEmailInUse        = errors.New("Email already in use!")
	ErrPhoneInUse        = errors.New("Phone already in use!")
	ErrEmailTaken        = errors.New("This email is already taken!")
	ErrPhoneTaken        = errors.New("This phone is already taken!")
	ErrNoAccount         = errors.New("No account is associated to this email")
	ErrIncorrectPassword = errors.New("Incorrect Password")
	ErrUserNotFound      = errors.New("User not found!")
	ErrDataNotFound      = errors.New("Data not found!")
	ErrNotAllowed        = errors.New("Not allowed!")
	ErrInternalServer    = errors.New("internal server error")
)
