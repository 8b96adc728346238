package render

import (
	"fmt"
	"html"

	"github.com/ortemap/ortemap/internal/dataset"
)

// Marker is the visual handle for one place record. Coordinates are stored
// in display order (lat, lon), swapped from the GeoJSON storage order.
type Marker struct {
	Name     string  `json:"name"`
	Region   string  `json:"region"`
	Color    string  `json:"color"`
	Popup    string  `json:"popup"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Diameter int     `json:"diameter"`
	Border   int     `json:"border"`
	Anchor   int     `json:"anchor"`
}

// NewMarker builds a marker for a record, drawing its color from the
// assigner. Empty name or region render as empty popup labels. The caller
// owns insertion into the live marker list.
func NewMarker(rec dataset.PlaceRecord, colors *ColorAssigner) *Marker {
	return &Marker{
		Name:   rec.Name,
		Region: rec.Region,
		Color:  colors.ColorFor(rec.Region),
		Popup:  popupHTML(rec),
		Lat:    rec.Lat,
		Lon:    rec.Lon,
	}
}

func popupHTML(rec dataset.PlaceRecord) string {
	body := fmt.Sprintf("<strong>%s</strong><br><em>%s</em>",
		html.EscapeString(rec.Name), html.EscapeString(rec.Region))

	if rec.WikidataURL != "" {
		body += fmt.Sprintf(`<br><a href="%s" target="_blank" rel="noopener">Wikidata</a>`,
			html.EscapeString(rec.WikidataURL))
	}

	return body
}
