package pgquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSQL(t *testing.T) {
	got := countSQL("SELECT id, name FROM teams WHERE active = $1 ORDER BY id")
	assert.Equal(t,
		"SELECT count(*) FROM (SELECT id, name FROM teams WHERE active = $1 ORDER BY id) AS paged_count",
		got)
}

func TestRangeSQL(t *testing.T) {
	tests := []struct {
		name     string
		baseSQL  string
		argCount int
		want     string
	}{
		{
			name:     "no base arguments",
			baseSQL:  "SELECT id FROM teams ORDER BY id",
			argCount: 0,
			want:     "SELECT id FROM teams ORDER BY id LIMIT $1 OFFSET $2",
		},
		{
			name:     "window parameters follow base arguments",
			baseSQL:  "SELECT id FROM teams WHERE active = $1 ORDER BY id",
			argCount: 1,
			want:     "SELECT id FROM teams WHERE active = $1 ORDER BY id LIMIT $2 OFFSET $3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rangeSQL(tt.baseSQL, tt.argCount))
		})
	}
}

func TestRangeArgs_DoesNotShareBackingArray(t *testing.T) {
	base := []any{true, "season"}
	first := append(rangeArgs(base), 10, 0)
	second := append(rangeArgs(base), 20, 40)

	require.Len(t, first, 4)
	require.Len(t, second, 4)
	assert.Equal(t, 10, first[2])
	assert.Equal(t, 20, second[2])
}

func TestNew_NilPoolPanics(t *testing.T) {
	assert.Panics(t, func() {
		New[string](nil, "SELECT 1", nil)
	})
}
