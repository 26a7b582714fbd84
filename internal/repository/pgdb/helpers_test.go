package pgdb

import (
	"fmt"
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort, direction string
		want            string
	}{
		{"name", "asc", "ORDER BY name ASC, id ASC"},
		{"created_at", "DESC", "ORDER BY created_at DESC, id ASC"},
		{"updated_at", "", "ORDER BY updated_at ASC, id ASC"},
		{"name; DROP TABLE categories", "desc", "ORDER BY name DESC, id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.sort+"/"+tt.direction, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sort, tt.direction))
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%movies%", likePattern("movies"))
	assert.Equal(t, `%50\% off\_now%`, likePattern("50% off_now"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, offset(1, 10))
	assert.Equal(t, 20, offset(3, 10))
	assert.Equal(t, 0, offset(0, 10))
	assert.Positive(t, offset(1<<62, 100))
	assert.Positive(t, offset(math.MaxInt, 1))
}

func TestPostgresDuplicate(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	other := &pgconn.PgError{Code: "23503"}

	assert.True(t, postgresDuplicate(dup))
	assert.False(t, postgresDuplicate(other))
	assert.False(t, postgresDuplicate(fmt.Errorf("plain")))
}
