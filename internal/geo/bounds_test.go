package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsExtend(t *testing.T) {
	b := NewBounds(50, 25)
	b.Extend(48, 27)
	b.Extend(52, 23)

	assert.Equal(t, Bounds{MinLat: 48, MinLon: 23, MaxLat: 52, MaxLon: 27}, b)
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinLat: 48, MinLon: 23, MaxLat: 52, MaxLon: 27}

	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"inside", 50, 25, true},
		{"on edge", 48, 23, true},
		{"north of box", 53, 25, false},
		{"west of box", 50, 22, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.lat, tt.lon))
		})
	}
}

func TestBoundsPad(t *testing.T) {
	b := Bounds{MinLat: 40, MinLon: 20, MaxLat: 50, MaxLon: 30}
	padded := b.Pad(0.05)

	assert.InDelta(t, 39.5, padded.MinLat, 1e-9)
	assert.InDelta(t, 50.5, padded.MaxLat, 1e-9)
	assert.InDelta(t, 19.5, padded.MinLon, 1e-9)
	assert.InDelta(t, 30.5, padded.MaxLon, 1e-9)
}

func TestBoundsPadSinglePoint(t *testing.T) {
	b := NewBounds(50, 25)
	assert.Equal(t, b, b.Pad(0.05))
}

func TestBoundsCenter(t *testing.T) {
	b := Bounds{MinLat: 40, MinLon: 20, MaxLat: 50, MaxLon: 30}
	lat, lon := b.Center()

	assert.Equal(t, 45.0, lat)
	assert.Equal(t, 25.0, lon)
}
