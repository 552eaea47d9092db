package domain

import "errors"

var (
	// ErrInvalidInput covers malformed operands and operators.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivideByZero is raised by the caller-side guard; the request never
	// reaches the remote model.
	ErrDivideByZero = errors.New("cannot divide by zero")

	// ErrNoCredential means no usable API key is stored. An absent file and
	// an undecryptable one both land here.
	ErrNoCredential = errors.New("no API key configured")
)
