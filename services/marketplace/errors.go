package marketplace

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProviderNotFound = errors.New("provider not found")

	ErrServiceRequestNotFound = errors.New("service request not found")

	// ErrNotAllowed indicates the caller is not the party a transition
	// rule permits
	ErrNotAllowed = errors.New("operation not allowed for this user")

	// ErrInvalidTransition indicates the request is not in a state the
	// transition accepts
	ErrInvalidTransition = errors.New("invalid service request transition")
)
