package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures for translation at the HTTP boundary
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindValidation
	KindMalformed
	KindNotFound
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMalformed:
		return "malformed"
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unexpected"
	}
}

type AppError struct {
	Kind    ErrorKind
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, details []string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func NewMalformedError(message string, err error) *AppError {
	return &AppError{Kind: KindMalformed, Message: message, Err: err}
}

func NewNotFoundError(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidArgumentError(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

// KindOf returns the kind of the first AppError in err's chain, or KindUnexpected.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}
