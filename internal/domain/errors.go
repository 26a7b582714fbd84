package domain

import (
	"errors"
	"strings"
)

// ErrorKind определяет класс доменной ошибки, по которому ветвится вызывающий код.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindNotFound       ErrorKind = "not_found"
	KindInfrastructure ErrorKind = "infrastructure"
)

// Error — структурированная доменная ошибка со списком сообщений.
type Error struct {
	Kind   ErrorKind
	Errors []ErrorMessage
	Cause  error
}

func NewValidationError(messages ...ErrorMessage) *Error {
	return &Error{Kind: KindValidation, Errors: messages}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Errors: []ErrorMessage{NewErrorMessage(message)}}
}

// NewInfrastructureError оборачивает сбой внешнего коллаборатора (хранилища, кэша и т.п.).
func NewInfrastructureError(cause error) *Error {
	msg := "infrastructure failure"
	if cause != nil {
		msg = cause.Error()
	}

	return &Error{
		Kind:   KindInfrastructure,
		Errors: []ErrorMessage{NewErrorMessage(msg)},
		Cause:  cause,
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch len(e.Errors) {
	case 0:
		return string(e.Kind)
	case 1:
		return e.Errors[0].Message
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, m := range e.Errors {
		msgs = append(msgs, m.Message)
	}

	return strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind проверяет, что в цепочке err есть *Error заданного класса.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return false
	}

	return domainErr.Kind == kind
}

// AsError извлекает *Error из цепочки ошибок.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return nil, false
	}

	return domainErr, true
}
