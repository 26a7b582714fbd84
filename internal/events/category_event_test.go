package events

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryEvent_SnapshotSurvivesEncoding(t *testing.T) {
	name, description := "Movies", "All movies"
	category := domain.NewCategory(&name, &description, false)

	ev := NewCategoryEvent("ev-1", "category.updated", category.ID, category)
	data, err := ev.Marshal()
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, "ev-1", decoded.EventID)
	assert.Equal(t, "category.updated", decoded.EventType)
	assert.Equal(t, category.ID.String(), decoded.CategoryID)
	assert.True(t, ev.OccurredAt.Equal(decoded.OccurredAt))

	require.NotNil(t, decoded.Snapshot)
	assert.Equal(t, "Movies", decoded.Snapshot.Name)
	assert.Equal(t, "All movies", *decoded.Snapshot.Description)
	assert.False(t, decoded.Snapshot.IsActive)
	assert.True(t, category.CreatedAt.Equal(decoded.Snapshot.CreatedAt))
	require.NotNil(t, decoded.Snapshot.DeletedAt)
	assert.True(t, category.DeletedAt.Equal(*decoded.Snapshot.DeletedAt))
}

func TestCategoryEvent_DeletionHasNoSnapshot(t *testing.T) {
	id := domain.NewCategoryID()

	data, err := NewCategoryEvent("ev-2", "category.deleted", id, nil).Marshal()
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, id.String(), decoded.CategoryID)
	assert.Nil(t, decoded.Snapshot)
}

func TestCategoryEvent_NullableFields(t *testing.T) {
	name := "Books"
	category := domain.NewCategory(&name, nil, true)

	data, err := NewCategoryEvent("ev-3", "category.created", category.ID, category).Marshal()
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Nil(t, decoded.Snapshot.Description)
	assert.Nil(t, decoded.Snapshot.DeletedAt)
	assert.WithinDuration(t, time.Now(), decoded.OccurredAt, time.Minute)
}

func TestUnmarshal_Garbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
