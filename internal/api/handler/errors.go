package handler

import (
	"net/http"

	"github.com/mcoot/wordscramble/internal/api/apierr"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewMethodNotAllowedError creates an error for a route hit with the wrong method
func NewMethodNotAllowedError(method string) error {
	return apierr.NewMethodNotAllowedError(method)
}
