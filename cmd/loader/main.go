package main

import (
	"crypto/tls"
	"net/http"
	"os"
	"time"

	"github.com/ortemap/ortemap/internal/logger"
	"github.com/ortemap/ortemap/internal/prepare"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Register       string        `short:"r" long:"register"        env:"PLACE_REGISTER"  description:"Path to the place register CSV export"       default:"data/register.csv"`
	Output         string        `short:"o" long:"output"          env:"DATASET_OUTPUT"  description:"Path to the GeoJSON dataset to write"        default:"data/places.geojson"`
	NameColumn     string        `long:"name-column"     env:"NAME_COLUMN"     description:"Register column holding the place name"      default:"Schreibweise Ortsregister"`
	RegionColumn   string        `long:"region-column"   env:"REGION_COLUMN"   description:"Register column holding the region"          default:"Region"`
	WikidataColumn string        `long:"wikidata-column" env:"WIKIDATA_COLUMN" description:"Register column holding the Wikidata URL"    default:"Wikidata URL"`
	Delay          time.Duration `short:"d" long:"delay" env:"QUERY_DELAY"     description:"Pause between Wikidata queries"               default:"500ms"`
	Force          bool          `short:"f" long:"force" description:"Force overwrite of existing dataset"`
}

func main() {
	// Optional .env for local runs; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	client := &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
		Timeout: 15 * time.Second,
	}

	err := prepare.ProcessRegister(client, prepare.Options{
		Register:       opts.Register,
		Output:         opts.Output,
		NameColumn:     opts.NameColumn,
		RegionColumn:   opts.RegionColumn,
		WikidataColumn: opts.WikidataColumn,
		Delay:          opts.Delay,
		Force:          opts.Force,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to process place register")
	}

	log.Info().Msg("Loader finished successfully")
}
