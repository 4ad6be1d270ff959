package client

import (
	"errors"
	"fmt"
)

// ErrTimeout marks a call cancelled by the client-side timeout.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx response from the server. Status 400 covers
// validation failures, 404 missing items.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// RequestFailedError is a well-formed envelope with success=false.
type RequestFailedError struct {
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}
