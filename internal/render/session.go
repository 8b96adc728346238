package render

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ortemap/ortemap/internal/config"
	"github.com/ortemap/ortemap/internal/dataset"
	"github.com/ortemap/ortemap/internal/geo"
	"github.com/ortemap/ortemap/internal/metrics"

	"github.com/rs/zerolog/log"
)

// State is the lifecycle phase of a rendering session.
type State int

const (
	StateInitializing State = iota
	StateLoading
	StateProcessing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateLoading:
		return "loading"
	case StateProcessing:
		return "processing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session owns all pipeline state for one page-lifetime rendering run:
// the loaded records, the marker list, the color map, the counts and the
// fitted viewport. There is no reload path; a session runs exactly once.
type Session struct {
	cfg     *config.Config
	colors  *ColorAssigner
	counts  *RegionCounts
	cause   error
	failure string
	records []dataset.PlaceRecord
	markers []*Marker
	legend  []LegendEntry
	summary Summary
	view    geo.Bounds
	state   State
	fitted  bool
}

// NewSession sets up a session over the given configuration.
func NewSession(cfg *config.Config) *Session {
	return &Session{
		cfg:    cfg,
		colors: NewColorAssigner(cfg.Palette),
		state:  StateInitializing,
	}
}

// Run drives the session through Loading and Processing to Ready, or to
// Failed on the first error. Failure is all-or-nothing: nothing from a
// partially loaded dataset is kept.
func (s *Session) Run(client *http.Client) error {
	s.state = StateLoading
	log.Info().Str("source", s.cfg.Dataset).Msg("Loading dataset")

	records, err := dataset.Load(client, s.cfg.Dataset)
	if err != nil {
		s.fail(err)
		return err
	}

	s.state = StateProcessing
	s.records = records

	s.markers = make([]*Marker, 0, len(records))
	for _, rec := range records {
		s.markers = append(s.markers, NewMarker(rec, s.colors))
	}
	ResizeAll(s.markers, s.cfg.Zoom)

	s.counts = Aggregate(records)
	s.legend = s.counts.Legend(s.colors)
	s.summary = s.counts.Summarize()

	initial := ViewBoundsAt(s.cfg.Center, s.cfg.Zoom)
	s.view, s.fitted = FitIfNeeded(s.markers, initial)

	s.state = StateReady

	metrics.DatasetLoadsTotal.WithLabelValues("ok").Inc()
	metrics.PlacesLoaded.Set(float64(s.summary.TotalPlaces))
	metrics.RegionsLoaded.Set(float64(s.summary.TotalRegions))

	log.Info().
		Int("places", s.summary.TotalPlaces).
		Int("regions", s.summary.TotalRegions).
		Bool("view_fitted", s.fitted).
		Msg("Session ready")

	return nil
}

// fail records the terminal failure with a user-facing message alongside
// the raw error description.
func (s *Session) fail(err error) {
	s.state = StateFailed
	s.cause = err

	var transport *dataset.TransportError
	var schema *dataset.SchemaError

	switch {
	case errors.As(err, &transport):
		metrics.DatasetLoadsTotal.WithLabelValues("transport").Inc()
		s.failure = fmt.Sprintf(
			"The places file could not be fetched (status %d). Expected a GeoJSON feature collection at %s.",
			transport.Status, s.cfg.Dataset)
	case errors.As(err, &schema):
		metrics.DatasetLoadsTotal.WithLabelValues("schema").Inc()
		s.failure = fmt.Sprintf(
			"The places file at %s is not a valid GeoJSON feature collection.",
			s.cfg.Dataset)
	default:
		metrics.DatasetLoadsTotal.WithLabelValues("fault").Inc()
		s.failure = fmt.Sprintf(
			"The map could not be prepared. Expected a GeoJSON feature collection at %s.",
			s.cfg.Dataset)
	}

	log.Error().
		Err(err).
		Str("source", s.cfg.Dataset).
		Str("state", s.state.String()).
		Msg("Session failed")
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Failure returns the user-facing message and raw cause of a failed session.
func (s *Session) Failure() (string, error) { return s.failure, s.cause }

// Records returns the loaded place records.
func (s *Session) Records() []dataset.PlaceRecord { return s.records }

// Markers returns the live marker list.
func (s *Session) Markers() []*Marker { return s.markers }

// Legend returns the legend entries, sorted by count descending.
func (s *Session) Legend() []LegendEntry { return s.legend }

// Summary returns the stats panel values.
func (s *Session) Summary() Summary { return s.summary }

// Viewport returns the view bounds and whether they replace the configured
// default framing.
func (s *Session) Viewport() (geo.Bounds, bool) { return s.view, s.fitted }
