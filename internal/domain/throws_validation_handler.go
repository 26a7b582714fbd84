package domain

// ThrowsValidationHandler отказывает на первой же ошибке и ничего не накапливает.
type ThrowsValidationHandler struct{}

var _ ValidationHandler = ThrowsValidationHandler{}

func NewThrowsValidationHandler() ThrowsValidationHandler {
	return ThrowsValidationHandler{}
}

func (ThrowsValidationHandler) Append(msg ErrorMessage) (ValidationHandler, error) {
	return nil, NewValidationError(msg)
}

func (ThrowsValidationHandler) AppendHandler(other ValidationHandler) (ValidationHandler, error) {
	return nil, NewValidationError(other.Errors()...)
}

func (ThrowsValidationHandler) Validate(step ValidationStep) error {
	err := step()
	if err == nil {
		return nil
	}

	if domainErr, ok := AsError(err); ok {
		return domainErr
	}

	return &Error{
		Kind:   KindValidation,
		Errors: []ErrorMessage{NewErrorMessage(err.Error())},
		Cause:  err,
	}
}

func (ThrowsValidationHandler) Errors() []ErrorMessage {
	return []ErrorMessage{}
}

func (ThrowsValidationHandler) HasErrors() bool {
	return false
}
