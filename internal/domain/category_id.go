package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// CategoryID — неизменяемый идентификатор категории.
type CategoryID struct {
	value uuid.UUID
}

func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.New()}
}

// CategoryIDFrom разбирает строковое представление идентификатора.
func CategoryIDFrom(raw string) (CategoryID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return CategoryID{}, fmt.Errorf("invalid category id %q: %w", raw, err)
	}

	return CategoryID{value: id}, nil
}

func CategoryIDFromUUID(id uuid.UUID) CategoryID {
	return CategoryID{value: id}
}

func (id CategoryID) UUID() uuid.UUID {
	return id.value
}

func (id CategoryID) String() string {
	return id.value.String()
}

func (id CategoryID) IsZero() bool {
	return id.value == uuid.Nil
}
