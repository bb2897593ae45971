package model

import (
	"errors"
	"fmt"
)

// Request-scoped failure kinds. Every engine operation reports problems as
// one of these so callers can render a specific message; none of them is
// fatal to the process.

// ValidationError means the input itself is malformed (missing field,
// start >= end). The caller should re-prompt.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ConflictError means a temporal invariant would be violated: the teacher,
// the class or the requested window already has an overlapping commitment.
// The caller should re-fetch slots before retrying, the selection may be
// stale.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

// NotFoundError means a referenced teacher/student/subject/class does not
// exist or is inactive.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// PermissionError means the acting party is not allowed to perform the
// operation on this entity.
type PermissionError struct {
	Msg string
}

func (e *PermissionError) Error() string {
	return e.Msg
}

// StoreError wraps a data-store failure. Surfaced to the user as a generic
// failure; retrying is up to the user.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func Permissionf(format string, args ...interface{}) error {
	return &PermissionError{Msg: fmt.Sprintf(format, args...)}
}

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsPermission(err error) bool {
	var e *PermissionError
	return errors.As(err, &e)
}

func IsStore(err error) bool {
	var e *StoreError
	return errors.As(err, &e)
}
