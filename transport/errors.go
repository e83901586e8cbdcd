package transport

import (
	"fmt"
	"net/http"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

type InvalidMethodError struct {
	Method string `json:"method"`
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("Invalid method: %s", e.Method)
}

func NewInvalidMethodError(method string) *InvalidMethodError {
	return &InvalidMethodError{Method: method}
}

// writeStorageError maps persistence errors onto status codes: "not found"
// becomes 404, everything else 500.
func writeStorageError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "not found") {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
