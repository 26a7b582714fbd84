package converter

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryConverter_ModelAndBack(t *testing.T) {
	conv := NewCategoryConverterImpl()
	name, description := "Movies", "All movies"
	category := domain.NewCategory(&name, &description, false)

	model := conv.ToModel(category)
	require.NotNil(t, model)
	assert.Equal(t, category.ID.UUID(), model.ID)
	assert.Equal(t, "Movies", model.Name)
	assert.Equal(t, "All movies", *model.Description)
	assert.NotNil(t, model.DeletedAt)

	restored := conv.ToEntity(model)
	assert.Equal(t, category.ID, restored.ID)
	assert.Equal(t, "Movies", *restored.Name)
	assert.False(t, restored.IsActive)
	assert.Equal(t, category.DeletedAt, restored.DeletedAt)
}

func TestCategoryConverter_DoesNotShareDescription(t *testing.T) {
	conv := NewCategoryConverterImpl()
	description := "original"
	model := &CategoryModel{ID: uuid.New(), Name: "Books", Description: &description, IsActive: true}

	entity := conv.ToEntity(model)
	*entity.Description = "changed"

	assert.Equal(t, "original", description)
}

func TestCategoryConverter_Nil(t *testing.T) {
	conv := NewCategoryConverterImpl()

	assert.Nil(t, conv.ToModel(nil))
	assert.Nil(t, conv.ToEntity(nil))
	assert.Empty(t, conv.ToArrEntity(nil))
}

func TestOutboxEventConverter_ModelAndBack(t *testing.T) {
	conv := NewOutboxEventConverterImpl()
	event := &usecase.OutboxEvent{
		EventID:    uuid.NewString(),
		EventType:  usecase.CategoryUpdated,
		CategoryID: uuid.NewString(),
		Payload:    []byte("payload"),
		Status:     usecase.Pending,
		Attempts:   2,
		CreatedAt:  time.Now().UTC(),
	}

	got := conv.ToEntity(conv.ToModel(event))

	assert.Equal(t, event, got)
}
