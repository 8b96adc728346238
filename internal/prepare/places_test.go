package prepare

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ortemap/ortemap/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegister = `Schreibweise Ortsregister,Region,Wikidata URL
Halych,Galicia,https://www.wikidata.org/wiki/Q156212
Ostroh,Volhynia,https://www.wikidata.org/wiki/Q158528
,Galicia,https://www.wikidata.org/wiki/Q1
No Entity,Galicia,https://example.com/nothing
`

func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()

	registerPath := filepath.Join(dir, "register.csv")
	require.NoError(t, os.WriteFile(registerPath, []byte(testRegister), 0644))

	return Options{
		Register:       registerPath,
		Output:         filepath.Join(dir, "out", "places.geojson"),
		NameColumn:     "Schreibweise Ortsregister",
		RegionColumn:   "Region",
		WikidataColumn: "Wikidata URL",
	}
}

func TestProcessRegister(t *testing.T) {
	t.Run("resolves entities and writes the dataset", func(t *testing.T) {
		stubSPARQL(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query().Get("query")
			switch {
			case strings.Contains(query, "wd:Q156212"):
				_, _ = w.Write([]byte(sparqlBody("Point(24.7275 49.1225)")))
			case strings.Contains(query, "wd:Q158528"):
				_, _ = w.Write([]byte(sparqlBody("Point(26.5167 50.3333)")))
			default:
				_, _ = w.Write([]byte(`{"results": {"bindings": []}}`))
			}
		})

		opts := testOptions(t)
		require.NoError(t, ProcessRegister(http.DefaultClient, opts))

		records, err := dataset.Load(http.DefaultClient, opts.Output)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Halych", records[0].Name)
		assert.Equal(t, "Galicia", records[0].Region)
		assert.Equal(t, "https://www.wikidata.org/wiki/Q156212", records[0].WikidataURL)
		assert.InDelta(t, 24.7275, records[0].Lon, 1e-9)
		assert.InDelta(t, 49.1225, records[0].Lat, 1e-9)

		assert.Equal(t, "Ostroh", records[1].Name)
	})

	t.Run("skips when the output exists", func(t *testing.T) {
		opts := testOptions(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(opts.Output), 0755))
		require.NoError(t, os.WriteFile(opts.Output, []byte("keep me"), 0644))

		require.NoError(t, ProcessRegister(http.DefaultClient, opts))

		data, err := os.ReadFile(opts.Output)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(data))
	})

	t.Run("force overwrites the output", func(t *testing.T) {
		stubSPARQL(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sparqlBody("Point(24.7275 49.1225)")))
		})

		opts := testOptions(t)
		opts.Force = true
		require.NoError(t, os.MkdirAll(filepath.Dir(opts.Output), 0755))
		require.NoError(t, os.WriteFile(opts.Output, []byte("stale"), 0644))

		require.NoError(t, ProcessRegister(http.DefaultClient, opts))

		records, err := dataset.Load(http.DefaultClient, opts.Output)
		require.NoError(t, err)
		assert.NotEmpty(t, records)
	})

	t.Run("missing register column", func(t *testing.T) {
		opts := testOptions(t)
		opts.NameColumn = "Nonexistent"

		err := ProcessRegister(http.DefaultClient, opts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Nonexistent")
	})

	t.Run("missing register file", func(t *testing.T) {
		opts := testOptions(t)
		opts.Register = filepath.Join(t.TempDir(), "nope.csv")

		require.Error(t, ProcessRegister(http.DefaultClient, opts))
	})
}
