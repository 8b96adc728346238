package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeForZoom(t *testing.T) {
	tests := []struct {
		name     string
		zoom     int
		diameter int
		border   int
	}{
		{"far out", 3, 6, 1},
		{"threshold 5", 5, 6, 1},
		{"zoom 6", 6, 8, 1},
		{"threshold 7", 7, 8, 1},
		{"zoom 8", 8, 12, 2},
		{"threshold 9", 9, 12, 2},
		{"zoom 10", 10, 16, 2},
		{"threshold 11", 11, 16, 2},
		{"close in", 12, 20, 3},
		{"very close", 18, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, b := SizeForZoom(tt.zoom)
			assert.Equal(t, tt.diameter, d)
			assert.Equal(t, tt.border, b)
		})
	}
}

func TestResizeAll(t *testing.T) {
	markers := []*Marker{{}, {}, {}}

	ResizeAll(markers, 10)

	for _, m := range markers {
		require.Equal(t, 16, m.Diameter)
		require.Equal(t, 2, m.Border)
		require.Equal(t, 8, m.Anchor)
	}

	t.Run("idempotent at the same zoom", func(t *testing.T) {
		before := *markers[0]
		ResizeAll(markers, 10)
		assert.Equal(t, before, *markers[0])
	})

	t.Run("anchor follows the diameter", func(t *testing.T) {
		ResizeAll(markers, 12)
		assert.Equal(t, 20, markers[1].Diameter)
		assert.Equal(t, 10, markers[1].Anchor)
	})
}
