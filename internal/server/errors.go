// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidCredentials indicates a failed admin login.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrAccountInactive indicates the admin account is disabled.
type ErrAccountInactive struct {
	Username string
}

func (e *ErrAccountInactive) Error() string {
	return fmt.Sprintf("account is inactive: %s", e.Username)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedMedia indicates an upload of a file type the analyzer cannot
// read.
type ErrUnsupportedMedia struct {
	MediaType string
}

func (e *ErrUnsupportedMedia) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MediaType)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials, *ErrAccountInactive:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
