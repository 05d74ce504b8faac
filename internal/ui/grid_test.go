package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/daylily/internal/testutil"
)

func TestGridColumns(t *testing.T) {
	assert.Equal(t, 1, gridColumns(0))
	assert.Equal(t, 1, gridColumns(20))
	assert.Equal(t, 1, gridColumns(63))
	assert.Equal(t, 2, gridColumns(64))
	assert.Equal(t, 3, gridColumns(100))
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name           string
		cursor, n, col int
		dx, dy         int
		want           int
	}{
		{"right", 0, 10, 3, 1, 0, 1},
		{"right at end", 9, 10, 3, 1, 0, 9},
		{"left at start", 0, 10, 3, -1, 0, 0},
		{"down", 1, 10, 3, 0, 1, 4},
		{"down past end stays", 8, 10, 3, 0, 1, 8},
		{"up past start stays", 1, 10, 3, 0, -1, 1},
		{"empty", 0, 0, 3, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveCursor(tt.cursor, tt.n, tt.col, tt.dx, tt.dy))
		})
	}
}

func TestScrollOffset(t *testing.T) {
	assert.Equal(t, 0, scrollOffset(0, 2, 5))
	assert.Equal(t, 3, scrollOffset(0, 7, 5))
	assert.Equal(t, 2, scrollOffset(4, 2, 5))
	assert.Equal(t, 3, scrollOffset(3, 3, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Moonlit M…", truncate("Moonlit Masquerade", 10))
	assert.Equal(t, "Café", truncate("Café", 4))
}

func TestRenderGrid(t *testing.T) {
	out := renderGrid(NewStyles(LightTheme()), testutil.Garden(), 0, 2, 1, 1)

	assert.Contains(t, out, "Happy Returns")
	assert.Contains(t, out, "Stella Blue")
	assert.NotContains(t, out, "Stella de Oro", "first row is scrolled away")
	assert.NotContains(t, out, "Moonlit", "only one row is shown")
	assert.True(t, strings.Contains(out, "Apps (1986)"))
}
