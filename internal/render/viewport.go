package render

import (
	"math"

	"github.com/ortemap/ortemap/internal/config"
	"github.com/ortemap/ortemap/internal/geo"
)

const (
	// padFraction expands the fitted bounding box by 5% per side.
	padFraction = 0.05
	// visibleShare is the fraction of markers that must already be inside
	// the current view for it to be left untouched.
	visibleShare = 0.7
)

// FitIfNeeded computes the padded bounding box of all markers and decides
// whether to replace the current view with it. The view is kept when at
// least 70% of the markers already fall inside it. With zero markers this
// is a no-op.
func FitIfNeeded(markers []*Marker, current geo.Bounds) (geo.Bounds, bool) {
	if len(markers) == 0 {
		return current, false
	}

	box := geo.NewBounds(markers[0].Lat, markers[0].Lon)
	visible := 0

	for _, m := range markers {
		box.Extend(m.Lat, m.Lon)
		if current.Contains(m.Lat, m.Lon) {
			visible++
		}
	}

	if float64(visible) >= visibleShare*float64(len(markers)) {
		return current, false
	}

	return box.Pad(padFraction), true
}

// ViewBoundsAt approximates the geographic box visible around a center at a
// given zoom, assuming a 1024x768 viewport over 256px tiles. Mercator
// latitude distortion is ignored; the fit heuristic only needs a rough box.
func ViewBoundsAt(center config.Center, zoom int) geo.Bounds {
	worldSpan := 360.0 / math.Pow(2, float64(zoom))
	lonHalf := worldSpan * (1024.0 / 256.0) / 2
	latHalf := worldSpan * (768.0 / 256.0) / 2

	b := geo.NewBounds(center.Lat-latHalf, center.Lon-lonHalf)
	b.Extend(center.Lat+latHalf, center.Lon+lonHalf)

	return b
}
