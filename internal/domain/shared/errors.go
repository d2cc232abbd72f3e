package shared

import (
	"errors"
	"strings"
)

// ErrorKind classifies a domain error for transport mapping.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "INVALID_INPUT"
	KindNotFound     ErrorKind = "NOT_FOUND"
)

// DomainError represents a domain-level error carrying one or more messages.
type DomainError struct {
	Kind     ErrorKind `json:"kind"`
	Messages []string  `json:"messages"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewInvalidInput creates a validation error from one or more messages.
func NewInvalidInput(messages ...string) *DomainError {
	return &DomainError{Kind: KindInvalidInput, Messages: messages}
}

// NewNotFound creates a missing-resource error from one or more messages.
func NewNotFound(messages ...string) *DomainError {
	return &DomainError{Kind: KindNotFound, Messages: messages}
}

// IsInvalidInput reports whether err is a validation domain error.
func IsInvalidInput(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == KindInvalidInput
}

// IsNotFound reports whether err is a missing-resource domain error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == KindNotFound
}
