package render

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ortemap/ortemap/internal/config"
	"github.com/ortemap/ortemap/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dataset string) *config.Config {
	return &config.Config{
		Title:   "test",
		Dataset: dataset,
		Center:  config.Center{Lat: 49, Lon: 25},
		Zoom:    6,
		Palette: []string{"#111111", "#222222", "#333333"},
	}
}

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

const sessionBody = `{"type": "FeatureCollection", "features": [
	{"type": "Feature", "geometry": {"type": "Point", "coordinates": [24.7, 49.1]}, "properties": {"name": "Halych", "region": "Galicia"}},
	{"type": "Feature", "geometry": {"type": "Point", "coordinates": [24.0, 49.8]}, "properties": {"name": "Lviv", "region": "Galicia"}},
	{"type": "Feature", "geometry": {"type": "Point", "coordinates": [26.5, 50.3]}, "properties": {"name": "Ostroh", "region": "Volhynia"}}
]}`

func TestSessionRun(t *testing.T) {
	t.Run("reaches ready with a valid dataset", func(t *testing.T) {
		srv := serveBody(t, http.StatusOK, sessionBody)
		defer srv.Close()

		s := NewSession(testConfig(srv.URL))
		require.Equal(t, StateInitializing, s.State())

		require.NoError(t, s.Run(srv.Client()))
		assert.Equal(t, StateReady, s.State())

		require.Len(t, s.Markers(), 3)
		assert.Equal(t, "#111111", s.Markers()[0].Color)
		assert.Equal(t, "#222222", s.Markers()[2].Color)

		// sized for the configured default zoom
		d, b := SizeForZoom(6)
		assert.Equal(t, d, s.Markers()[0].Diameter)
		assert.Equal(t, b, s.Markers()[0].Border)

		legend := s.Legend()
		require.Len(t, legend, 2)
		assert.Equal(t, "Galicia", legend[0].Region)
		assert.Equal(t, 2, legend[0].Count)

		summary := s.Summary()
		assert.Equal(t, 3, summary.TotalPlaces)
		assert.Equal(t, 2, summary.TotalRegions)
		assert.Equal(t, "Galicia", summary.TopRegion)

		// markers sit around the configured center, view is kept
		_, fitted := s.Viewport()
		assert.False(t, fitted)
	})

	t.Run("refits when markers are off screen", func(t *testing.T) {
		body := `{"type": "FeatureCollection", "features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [139.7, 35.7]}, "properties": {"name": "Far", "region": "East"}}
		]}`
		srv := serveBody(t, http.StatusOK, body)
		defer srv.Close()

		s := NewSession(testConfig(srv.URL))
		require.NoError(t, s.Run(srv.Client()))

		bounds, fitted := s.Viewport()
		assert.True(t, fitted)
		assert.True(t, bounds.Contains(35.7, 139.7))
	})

	t.Run("missing file fails with transport message", func(t *testing.T) {
		srv := serveBody(t, http.StatusNotFound, "not here")
		defer srv.Close()

		s := NewSession(testConfig(srv.URL))
		err := s.Run(srv.Client())

		require.Error(t, err)
		assert.Equal(t, StateFailed, s.State())

		var transportErr *dataset.TransportError
		require.ErrorAs(t, err, &transportErr)

		message, cause := s.Failure()
		assert.Contains(t, message, "status 404")
		assert.Contains(t, message, srv.URL)
		assert.Equal(t, err, cause)
	})

	t.Run("bad schema fails with schema message", func(t *testing.T) {
		srv := serveBody(t, http.StatusOK, `{"type": "FeatureCollection"}`)
		defer srv.Close()

		s := NewSession(testConfig(srv.URL))
		err := s.Run(srv.Client())

		require.Error(t, err)
		assert.Equal(t, StateFailed, s.State())

		var schemaErr *dataset.SchemaError
		require.ErrorAs(t, err, &schemaErr)

		message, _ := s.Failure()
		assert.Contains(t, message, "not a valid GeoJSON feature collection")
	})

	t.Run("empty dataset is ready with empty panels", func(t *testing.T) {
		srv := serveBody(t, http.StatusOK, `{"type": "FeatureCollection", "features": []}`)
		defer srv.Close()

		s := NewSession(testConfig(srv.URL))
		require.NoError(t, s.Run(srv.Client()))

		assert.Equal(t, StateReady, s.State())
		assert.Empty(t, s.Markers())
		assert.Empty(t, s.Legend())

		summary := s.Summary()
		assert.Zero(t, summary.TotalPlaces)
		assert.Zero(t, summary.TotalRegions)
		assert.Empty(t, summary.TopRegion)

		_, fitted := s.Viewport()
		assert.False(t, fitted)
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "initializing", StateInitializing.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "processing", StateProcessing.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
}
