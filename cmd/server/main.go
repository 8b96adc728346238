package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ortemap/ortemap/internal/config"
	"github.com/ortemap/ortemap/internal/logger"
	"github.com/ortemap/ortemap/internal/metrics"
	"github.com/ortemap/ortemap/internal/render"
	"github.com/ortemap/ortemap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := &http.Client{Timeout: 15 * time.Second}

	// The session runs once; a failed load keeps the server up so the page
	// can show the failure instead of the map.
	session := render.NewSession(cfg)
	if err := session.Run(client); err != nil {
		log.Error().Err(err).Msg("Rendering session failed, serving error state")
	}

	srvCtx := server.NewServerContext(cfg, session)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/config", srvCtx.HandleConfig)
	mux.HandleFunc("/api/markers", srvCtx.HandleMarkers)
	mux.HandleFunc("/api/legend", srvCtx.HandleLegend)
	mux.HandleFunc("/api/stats", srvCtx.HandleStats)
	mux.HandleFunc("/api/viewport", srvCtx.HandleViewport)
	mux.HandleFunc("/places.geojson", srvCtx.HandleDataset)
	mux.HandleFunc("/favicon.svg", srvCtx.HandleFavicon)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("state", session.State().String()).
		Int("places", session.Summary().TotalPlaces).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
