package services

import "errors"

// Service-level error taxonomy. Controllers map these onto HTTP statuses;
// everything else bubbles up as a 500.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrMealNotFound = errors.New("meal not found")
	ErrLogNotFound  = errors.New("daily log not found")
	ErrLogConflict  = errors.New("daily log already exists for this date")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
