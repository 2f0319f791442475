package permissions

import "errors"

// AuthenticationError means no valid session was found. The message tells
// the user to log in again.
type AuthenticationError struct {
	msg string
}

func (e *AuthenticationError) Error() string { return e.msg }

// AuthorizationError means the session is valid but a role or ownership
// gate denied the operation. The message names the denied relationship.
type AuthorizationError struct {
	msg string
}

func (e *AuthorizationError) Error() string { return e.msg }

var (
	// ErrNotLoggedIn is returned when no session is persisted at all.
	ErrNotLoggedIn = &AuthenticationError{msg: "User not logged in. Please log in."}

	// ErrInvalidToken is returned when a session exists but does not
	// validate (expired, tampered, or its user is gone).
	ErrInvalidToken = &AuthenticationError{msg: "Invalid token. Please log in."}
)

const (
	msgNoPermission    = "You do not have permission to perform this action."
	msgNotClientRep    = "Access denied. You are not the Sales Representative assigned to this client."
	msgNotContractRep  = "Access denied. You are not the sales person assigned to this contract."
	msgNotEventRep     = "Access denied. You are not the sales person assigned to this event."
	msgNotEventSupport = "Access denied. You are not the Support staff assigned to this event."
)

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization reports whether err is an authorization denial.
func IsAuthorization(err error) bool {
	var denied *AuthorizationError
	return errors.As(err, &denied)
}

func denied(msg string) error {
	return &AuthorizationError{msg: msg}
}
