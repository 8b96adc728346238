// Package prepare converts the place register into the GeoJSON dataset,
// enriching each entry with coordinates from Wikidata.
package prepare

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ortemap/ortemap/internal/geo"

	"github.com/rs/zerolog/log"
)

// Options controls one register processing run.
type Options struct {
	Register       string
	Output         string
	NameColumn     string
	RegionColumn   string
	WikidataColumn string
	Delay          time.Duration
	Force          bool
}

// ProcessRegister reads the CSV place register, resolves coordinates via
// Wikidata and writes the GeoJSON dataset. Rows without a name or without
// resolvable coordinates are skipped and counted.
func ProcessRegister(client *http.Client, opts Options) error {
	if _, err := os.Stat(opts.Output); err == nil && !opts.Force {
		log.Debug().Str("output", opts.Output).Msg("Dataset exists, skipping")
		return nil
	}

	rows, header, err := readRegister(opts.Register)
	if err != nil {
		return err
	}

	for _, col := range []string{opts.NameColumn, opts.RegionColumn, opts.WikidataColumn} {
		if _, ok := header[col]; !ok {
			return fmt.Errorf("register %s is missing column %q", opts.Register, col)
		}
	}

	log.Info().
		Str("register", opts.Register).
		Int("entries", len(rows)).
		Msg("Processing place register")

	fc := geo.FeatureCollection{Type: "FeatureCollection", Features: []geo.Feature{}}
	succeeded, failed := 0, 0

	for i, row := range rows {
		name := strings.TrimSpace(row[opts.NameColumn])
		if name == "" {
			log.Warn().Int("row", i+1).Msg("Skipping entry: no name")
			continue
		}

		entityID := ExtractEntityID(row[opts.WikidataColumn])
		if entityID == "" {
			log.Warn().
				Str("place", name).
				Str("url", row[opts.WikidataColumn]).
				Msg("Skipping entry: no Wikidata id in URL")
			failed++
			continue
		}

		lon, lat, err := FetchCoordinates(client, entityID)
		if err != nil {
			log.Warn().
				Err(err).
				Str("place", name).
				Str("entity", entityID).
				Msg("No coordinates found")
			failed++
			continue
		}

		fc.Features = append(fc.Features, geo.Feature{
			Type: "Feature",
			Geometry: geo.Geometry{
				Type:        "Point",
				Coordinates: []float64{lon, lat},
			},
			Properties: map[string]interface{}{
				"name":         name,
				"region":       strings.TrimSpace(row[opts.RegionColumn]),
				"wikidata_url": strings.TrimSpace(row[opts.WikidataColumn]),
			},
		})
		succeeded++

		log.Debug().
			Str("place", name).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("Coordinates resolved")

		// stay polite to the public SPARQL endpoint
		time.Sleep(opts.Delay)
	}

	log.Info().
		Int("succeeded", succeeded).
		Int("failed", failed).
		Str("output", opts.Output).
		Msg("Register processed")

	return saveGeoJSON(filepath.Dir(opts.Output), opts.Output, fc)
}

// readRegister loads the CSV register into header-keyed rows and returns the
// set of header columns alongside.
func readRegister(path string) ([]map[string]string, map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("register %s is empty", path)
	}

	header := all[0]
	columns := make(map[string]struct{}, len(header))
	for _, col := range header {
		columns[strings.TrimSpace(col)] = struct{}{}
	}

	rows := make([]map[string]string, 0, len(all)-1)
	for _, record := range all[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, columns, nil
}

// saveGeoJSON marshals the feature collection and writes it to disk.
func saveGeoJSON(dir, path string, fc geo.FeatureCollection) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return json.NewEncoder(f).Encode(fc)
}
