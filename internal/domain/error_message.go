package domain

// ErrorMessage описывает одно нарушение правила валидации.
type ErrorMessage struct {
	Message string `json:"message"`
}

func NewErrorMessage(message string) ErrorMessage {
	return ErrorMessage{Message: message}
}

func (m ErrorMessage) String() string {
	return m.Message
}
