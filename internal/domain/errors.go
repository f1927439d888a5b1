package domain

import "errors"

var (
	// ErrEmailTaken is returned when signup hits the unique index on email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
