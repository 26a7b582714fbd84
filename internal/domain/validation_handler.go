package domain

// ValidationStep — единица валидации, запускаемая через ValidationHandler.
type ValidationStep func() error

// ValidationHandler принимает ошибки валидации. Реализации определяют политику:
// накопление (Notification) или немедленный отказ (ThrowsValidationHandler).
type ValidationHandler interface {
	Append(msg ErrorMessage) (ValidationHandler, error)
	AppendHandler(other ValidationHandler) (ValidationHandler, error)
	Validate(step ValidationStep) error
	Errors() []ErrorMessage
	HasErrors() bool
}
