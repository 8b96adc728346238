// Package render implements the place rendering pipeline: color assignment,
// marker construction, zoom sizing, aggregation and viewport fitting.
package render

// ColorAssigner maps region labels to palette colors in first-seen order.
// Assignments are append-only for the lifetime of the session; once the
// number of distinct regions exceeds the palette size, colors repeat
// cyclically.
type ColorAssigner struct {
	assigned map[string]string
	palette  []string
	order    []string
}

// NewColorAssigner creates an assigner over the given ordered palette.
// The palette must contain at least one color.
func NewColorAssigner(palette []string) *ColorAssigner {
	return &ColorAssigner{
		assigned: make(map[string]string),
		palette:  palette,
	}
}

// ColorFor returns the color for a region, assigning the next palette slot
// on first sight. Repeated calls for the same region always return the same
// color.
func (c *ColorAssigner) ColorFor(region string) string {
	if color, ok := c.assigned[region]; ok {
		return color
	}

	color := c.palette[len(c.order)%len(c.palette)]
	c.assigned[region] = color
	c.order = append(c.order, region)

	return color
}

// Assigned returns the number of regions that have received a color.
func (c *ColorAssigner) Assigned() int {
	return len(c.order)
}
