// Package apperr defines the error taxonomy surfaced to callers of the event engine.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code is a machine-readable error code
type Code string

const (
	// CodeInternal ...
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeValidation ...
	CodeValidation Code = "VALIDATION_ERROR"

	// CodeNotFound ...
	CodeNotFound Code = "NOT_FOUND"

	// CodeStorage ...
	CodeStorage Code = "DB_ERROR"
)

// Issue is one field-level validation problem
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError ...
type ValidationError struct {
	Message string
	Issues  []Issue
}

// NewValidationError ...
func NewValidationError(msg string, issues ...Issue) *ValidationError {
	return &ValidationError{
		Message: msg,
		Issues:  issues,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// NotFoundError ...
type NotFoundError struct {
	Entity string
	Key    string
}

// NewNotFoundError ...
func NewNotFoundError(entity string, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// StorageError wraps a failure of the persistence layer
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap ...
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err into a StorageError, errors already classified are returned unchanged
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if CodeOf(err) != CodeInternal {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// CodeOf classifies err
func CodeOf(err error) Code {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var storageErr *StorageError

	switch {
	case errors.As(err, &validationErr):
		return CodeValidation
	case errors.As(err, &notFoundErr):
		return CodeNotFound
	case errors.As(err, &storageErr):
		return CodeStorage
	default:
		return CodeInternal
	}
}

// HTTPStatus ...
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Response is the transport-independent error body
type Response struct {
	Error      bool    `json:"error"`
	Code       Code    `json:"code"`
	HTTPStatus int     `json:"httpStatus"`
	Message    string  `json:"message"`
	Issues     []Issue `json:"issues,omitempty"`
}

// ToResponse ...
func ToResponse(err error) Response {
	resp := Response{
		Error:      true,
		Code:       CodeOf(err),
		HTTPStatus: HTTPStatus(err),
	}

	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		resp.Message = validationErr.Message
		resp.Issues = validationErr.Issues
	case resp.Code == CodeInternal || resp.Code == CodeStorage:
		resp.Message = "something went wrong"
	default:
		resp.Message = err.Error()
	}
	return resp
}
