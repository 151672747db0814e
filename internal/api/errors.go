package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrTimeout indicates the request timed out or was canceled
	ErrTimeout = errors.New("request timed out")

	// ErrNoRoutes indicates the provider answered but returned no route
	ErrNoRoutes = errors.New("no routes found")

	// ErrServerError indicates a server-side HTTP error
	ErrServerError = errors.New("server error")

	// ErrInvalidRequest indicates the request parameters were rejected
	ErrInvalidRequest = errors.New("invalid request")
)

// FetchError represents a transport-level failure: the provider could not be
// reached, or answered with a non-200 HTTP status.
type FetchError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for FetchError
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode == 400 || e.StatusCode == 403
	}
	return false
}

// NewFetchError creates a new transport-level error
func NewFetchError(statusCode int, status, endpoint string) *FetchError {
	return &FetchError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// RouteError represents a provider-level failure: the directions API answered
// but reported a non-OK status or an empty route list. Status and Message are
// carried verbatim from the response.
type RouteError struct {
	Status  string
	Message string
}

func (e *RouteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("route error %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("route error %s", e.Status)
}

// Is implements errors.Is for RouteError
func (e *RouteError) Is(target error) bool {
	return target == ErrNoRoutes && (e.Status == "ZERO_RESULTS" || e.Status == StatusOK)
}

// NewRouteError creates a new provider-level error
func NewRouteError(status, message string) *RouteError {
	return &RouteError{
		Status:  status,
		Message: message,
	}
}
