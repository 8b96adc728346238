// Package dataset loads the place collection and converts it into typed records.
package dataset

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ortemap/ortemap/internal/geo"

	"github.com/rs/zerolog/log"
)

// PlaceRecord is one validated historical place. Immutable once loaded.
type PlaceRecord struct {
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	WikidataURL string  `json:"wikidata_url,omitempty"`
	Lon         float64 `json:"lon"`
	Lat         float64 `json:"lat"`
}

// Load reads the dataset from an HTTP URL or a local file path.
// A single attempt, no retry; any failure is terminal for the caller.
func Load(client *http.Client, source string) ([]PlaceRecord, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(client, source)
	}
	return loadFile(source)
}

func fetch(client *http.Client, url string) ([]PlaceRecord, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode}
	}

	return Decode(resp.Body)
}

func loadFile(path string) ([]PlaceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses a GeoJSON body and converts every well-formed point feature
// into a PlaceRecord. Features with malformed coordinates are skipped with a
// warning; missing name or region is tolerated and yields empty labels.
func Decode(r io.Reader) ([]PlaceRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, &SchemaError{Reason: err.Error()}
	}

	if fc.Features == nil {
		return nil, &SchemaError{Reason: "missing or invalid features array"}
	}

	records := make([]PlaceRecord, 0, len(fc.Features))
	skipped := 0

	for i, f := range fc.Features {
		if len(f.Geometry.Coordinates) != 2 {
			log.Warn().
				Int("feature", i).
				Int("coordinates", len(f.Geometry.Coordinates)).
				Msg("Skipping feature: geometry is not a [lon, lat] pair")
			skipped++
			continue
		}

		records = append(records, PlaceRecord{
			Name:        stringProp(f.Properties, "name"),
			Region:      stringProp(f.Properties, "region"),
			WikidataURL: stringProp(f.Properties, "wikidata_url"),
			Lon:         f.Geometry.Coordinates[0],
			Lat:         f.Geometry.Coordinates[1],
		})
	}

	log.Debug().
		Int("loaded", len(records)).
		Int("skipped", skipped).
		Msg("Dataset decoded")

	return records, nil
}

func stringProp(props map[string]interface{}, key string) string {
	if props == nil {
		return ""
	}
	if s, ok := props[key].(string); ok {
		return s
	}
	return ""
}
