package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	NameMinLength = 3
	NameMaxLength = 255
)

var (
	ErrMsgNameNull   = NewErrorMessage("name must not be null")
	ErrMsgNameEmpty  = NewErrorMessage("name must not be empty")
	ErrMsgNameLength = NewErrorMessage(
		fmt.Sprintf("name must be between %d and %d characters", NameMinLength, NameMaxLength),
	)
)

// CategoryValidator — одноразовая проверка категории через ValidationHandler.
type CategoryValidator struct {
	category *Category
	handler  ValidationHandler
}

func NewCategoryValidator(category *Category, handler ValidationHandler) *CategoryValidator {
	return &CategoryValidator{
		category: category,
		handler:  handler,
	}
}

// Validate применяет правила к категории. Ошибка возвращается только fail-fast обработчиком.
func (v *CategoryValidator) Validate() error {
	return v.checkNameConstraints()
}

func (v *CategoryValidator) checkNameConstraints() error {
	name := v.category.Name
	if name == nil {
		_, err := v.handler.Append(ErrMsgNameNull)
		return err
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		_, err := v.handler.Append(ErrMsgNameEmpty)
		return err
	}

	length := utf8.RuneCountInString(trimmed)
	if length < NameMinLength || length > NameMaxLength {
		_, err := v.handler.Append(ErrMsgNameLength)
		return err
	}

	return nil
}
