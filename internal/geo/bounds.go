package geo

// Bounds is a geographic bounding box in WGS84 degrees.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// NewBounds returns a degenerate box containing only the given point.
func NewBounds(lat, lon float64) Bounds {
	return Bounds{MinLat: lat, MinLon: lon, MaxLat: lat, MaxLon: lon}
}

// Extend grows the box so that it contains the given point.
func (b *Bounds) Extend(lat, lon float64) {
	if lat < b.MinLat {
		b.MinLat = lat
	}
	if lat > b.MaxLat {
		b.MaxLat = lat
	}
	if lon < b.MinLon {
		b.MinLon = lon
	}
	if lon > b.MaxLon {
		b.MaxLon = lon
	}
}

// Contains reports whether the point lies within the box, edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Pad expands the box by the given fraction of its span on each side.
// A zero-span axis is left untouched so a single point stays a point.
func (b Bounds) Pad(fraction float64) Bounds {
	latPad := (b.MaxLat - b.MinLat) * fraction
	lonPad := (b.MaxLon - b.MinLon) * fraction

	return Bounds{
		MinLat: b.MinLat - latPad,
		MinLon: b.MinLon - lonPad,
		MaxLat: b.MaxLat + latPad,
		MaxLon: b.MaxLon + lonPad,
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}
