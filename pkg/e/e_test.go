package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap("CategoryRepo.Create", ErrCategoryNotFound)

	assert.EqualError(t, err, "CategoryRepo.Create: category not found")
	assert.True(t, errors.Is(err, ErrCategoryNotFound))
}
