package usecase

import "github.com/DRSN-tech/catalog-admin/internal/domain"

// Result — итог сценария: либо полезная нагрузка, либо упорядоченный список ошибок.
type Result[T any] struct {
	value        T
	notification *domain.Notification
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](notification *domain.Notification) Result[T] {
	return Result[T]{notification: notification}
}

func (r Result[T]) IsOk() bool {
	return r.notification == nil
}

// Value возвращает полезную нагрузку; для неуспешного результата — нулевое значение.
func (r Result[T]) Value() T {
	return r.value
}

// Notification возвращает накопленные ошибки; для успешного результата — nil.
func (r Result[T]) Notification() *domain.Notification {
	return r.notification
}

// Errors — сокращение для Notification().Errors().
func (r Result[T]) Errors() []domain.ErrorMessage {
	if r.notification == nil {
		return nil
	}

	return r.notification.Errors()
}
