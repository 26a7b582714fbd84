package domain

import "slices"

// Notification накапливает все ошибки валидации в порядке их появления и никогда не прерывает выполнение.
type Notification struct {
	errors []ErrorMessage

	// cause — исходная ошибка, если уведомление построено из сбоя, а не из правил валидации.
	cause error
}

var _ ValidationHandler = (*Notification)(nil)

func NewNotification() *Notification {
	return &Notification{errors: make([]ErrorMessage, 0)}
}

// NotificationWith создаёт уведомление с одной ошибкой.
func NotificationWith(msg ErrorMessage) *Notification {
	n := NewNotification()
	n.errors = append(n.errors, msg)
	return n
}

// NotificationFromError создаёт уведомление из сообщения произвольной ошибки.
func NotificationFromError(err error) *Notification {
	n := NotificationWith(NewErrorMessage(err.Error()))
	n.cause = err
	return n
}

func (n *Notification) Append(msg ErrorMessage) (ValidationHandler, error) {
	n.errors = append(n.errors, msg)
	return n, nil
}

func (n *Notification) AppendHandler(other ValidationHandler) (ValidationHandler, error) {
	n.errors = append(n.errors, other.Errors()...)
	return n, nil
}

// Validate запускает шаг и складывает его ошибки в уведомление. Ошибка наружу не возвращается.
func (n *Notification) Validate(step ValidationStep) error {
	err := step()
	if err == nil {
		return nil
	}

	if domainErr, ok := AsError(err); ok {
		n.errors = append(n.errors, domainErr.Errors...)
		return nil
	}

	n.errors = append(n.errors, NewErrorMessage(err.Error()))
	return nil
}

func (n *Notification) Errors() []ErrorMessage {
	return slices.Clone(n.errors)
}

// Cause возвращает исходную ошибку для уведомлений из NotificationFromError и nil для остальных.
func (n *Notification) Cause() error {
	return n.cause
}

func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// FirstError возвращает первое сообщение или пустую строку.
func (n *Notification) FirstError() string {
	if len(n.errors) == 0 {
		return ""
	}

	return n.errors[0].Message
}
