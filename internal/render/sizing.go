package render

// SizeStep is one rung of the zoom sizing ladder: the marker dimensions used
// for any zoom level up to and including MaxZoom.
type SizeStep struct {
	MaxZoom  int `json:"max_zoom"`
	Diameter int `json:"diameter"`
	Border   int `json:"border"`
}

// SizeSteps is the full zoom sizing ladder, ordered by MaxZoom ascending.
// The last step applies to every zoom above the previous threshold. Shipped
// to the client so its zoom handler is a plain lookup.
var SizeSteps = []SizeStep{
	{MaxZoom: 5, Diameter: 6, Border: 1},
	{MaxZoom: 7, Diameter: 8, Border: 1},
	{MaxZoom: 9, Diameter: 12, Border: 2},
	{MaxZoom: 11, Diameter: 16, Border: 2},
	{MaxZoom: 1 << 30, Diameter: 20, Border: 3},
}

// SizeForZoom returns the marker diameter and border width for a zoom level.
// Pure step function of zoom.
func SizeForZoom(zoom int) (diameter, border int) {
	for _, s := range SizeSteps {
		if zoom <= s.MaxZoom {
			return s.Diameter, s.Border
		}
	}

	last := SizeSteps[len(SizeSteps)-1]
	return last.Diameter, last.Border
}

// ResizeAll applies the sizing for the given zoom to every marker. The anchor
// is half the diameter so the dot stays centered on its coordinate. Calling
// it twice at the same zoom changes nothing.
func ResizeAll(markers []*Marker, zoom int) {
	diameter, border := SizeForZoom(zoom)

	for _, m := range markers {
		m.Diameter = diameter
		m.Border = border
		m.Anchor = diameter / 2
	}
}
