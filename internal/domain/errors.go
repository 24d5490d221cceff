package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the API client, the list loader and the
// handlers. Each maps to one user-visible behaviour.
var (
	// ErrConfig means the console was started without something it needs to
	// talk to the API (base URL). It is shown inline and never retried.
	ErrConfig = errors.New("missing API configuration")

	// ErrUnauthenticated means no credential is present. No network call is
	// made; the Guard sends the admin to sign-in.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrUnauthorized means the API rejected the credential. The Guard
	// purges it and redirects; it is never rendered inline.
	ErrUnauthorized = errors.New("session is no longer valid")

	// ErrBadShape means a response lacked the fields a view depends on.
	ErrBadShape = errors.New("bad response shape")

	// ErrNotFound is returned when a row id is not present in a loaded view.
	ErrNotFound = errors.New("requested resource not found")
)

// APIError is a non-authorization failure reported by the marketplace API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsAuth reports whether err should be handled by the session guard.
func IsAuth(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrUnauthorized)
}

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
