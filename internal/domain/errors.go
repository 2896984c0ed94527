package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAddress  = errors.New("token address is missing")
	ErrUnauthenticated = errors.New("session is not authenticated")
	ErrInvalidPassword = errors.New("invalid password")
)

// RequestError is any failure of an outbound call to the data gateway,
// including non-2xx responses.
type RequestError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%d error for url %s: %s", e.StatusCode, e.URL, e.Body)
		}
		return fmt.Sprintf("%d error for url %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ProcessingError covers every other failure in the analysis chain.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
