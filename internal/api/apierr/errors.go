package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordscramble/internal/model"
)

// APIError represents an API error response.
// Reason and Title are only set for rejected words.
type APIError struct {
	Code    string `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeMethodNotAllowed      = "METHOD_NOT_ALLOWED"
	CodeGameNotFound          = "GAME_NOT_FOUND"
	CodeWordRejected          = "WORD_REJECTED"
	CodeWordListUnavailable   = "WORD_LIST_UNAVAILABLE"
	CodeDictionaryUnavailable = "DICTIONARY_UNAVAILABLE"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status WriteError would use for err
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var rejection *model.RejectionError
	if errors.As(err, &rejection) {
		return &httpError{http.StatusUnprocessableEntity, APIError{
			Code:    CodeWordRejected,
			Reason:  string(rejection.Reason),
			Title:   rejection.Title,
			Message: rejection.Message,
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrWordListUnavailable), errors.Is(err, model.ErrWordListEmpty):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeWordListUnavailable, Message: "No root words available"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeDictionaryUnavailable, Message: "Dictionary not loaded"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewMethodNotAllowedError creates an error for a known path hit with the wrong method
func NewMethodNotAllowedError(method string) error {
	return &httpError{http.StatusMethodNotAllowed, APIError{Code: CodeMethodNotAllowed, Message: "Method " + method + " not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
