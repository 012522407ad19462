// main.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gewnthar/flightmapper/config"
	"github.com/gewnthar/flightmapper/maps"
	"github.com/gewnthar/flightmapper/metrics"
	"github.com/gewnthar/flightmapper/report"
	"github.com/gewnthar/flightmapper/scraper"
	"github.com/gewnthar/flightmapper/services"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: config.yaml or config/config.yaml)")
	envFile := flag.String("env", ".env", "optional .env file with FLIGHTMAPPER_* overrides")
	flag.Parse()

	log.Println("Starting flightmapper...")

	err := config.LoadConfig(*configPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		log.Println("INFO: No config.yaml found, using defaults.")
		config.UseDefaults()
	} else if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := config.ApplyEnvOverrides(*envFile); err != nil {
		log.Fatalf("Error applying environment overrides: %v", err)
	}
	cfg := config.AppConfig
	log.Printf("Configuration loaded. Airports: %s, flights: %s, output: %s, on_error: %s",
		cfg.Inputs.AirportsCSV, cfg.Inputs.FlightsLog, cfg.Output.Dir, cfg.Ingestion.OnError)

	collector := metrics.NewCollector("flightmapper")

	// Load
	timer := collector.NewTimer("load")
	airportsPath, err := scraper.DownloadAirportsCsv()
	if err != nil {
		log.Fatalf("Error fetching airport table: %v", err)
	}
	registry, err := services.LoadAirportRegistry(airportsPath)
	if err != nil {
		log.Fatalf("Error loading airports: %v", err)
	}
	collector.AirportsLoaded.Set(float64(registry.Len()))

	result, err := services.LoadFlightLog(cfg.Inputs.FlightsLog, registry, cfg.Ingestion.OnError, collector)
	if err != nil {
		log.Fatalf("Error loading flight log: %v", err)
	}
	timer.ObserveDuration()

	// Aggregate
	timer = collector.NewTimer("aggregate")
	cities, err := cfg.CityTable()
	if err != nil {
		log.Fatalf("Error building city table: %v", err)
	}
	aggregator := services.NewAggregator(result.Flights, cities)
	stats, err := report.BuildStats(aggregator)
	if err != nil {
		log.Fatalf("Error computing statistics: %v", err)
	}
	collector.RecordTotals(stats.Tally.Segments, stats.Tally.TotalDistance)
	timer.ObserveDuration()
	log.Printf("Statistics: %s", stats.Summary())

	// Maps
	var mapFiles []string
	if cfg.Maps.Enabled {
		timer = collector.NewTimer("maps")
		for _, name := range cfg.Maps.Regions {
			region, err := maps.LookupRegion(name)
			if err != nil {
				log.Fatalf("Error in maps config: %v", err)
			}
			var buf bytes.Buffer
			if err := maps.WriteRouteMap(&buf, region, result.Flights, stats.Airports); err != nil {
				log.Fatalf("Error drawing %s map: %v", name, err)
			}
			if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
				log.Fatalf("Error creating output directory: %v", err)
			}
			if err := os.WriteFile(cfg.OutputPath(region.FileName()), buf.Bytes(), 0644); err != nil {
				log.Fatalf("Error writing %s map: %v", name, err)
			}
			mapFiles = append(mapFiles, region.FileName())
		}
		timer.ObserveDuration()
	}

	// Render
	timer = collector.NewTimer("render")
	page, err := report.NewPage(stats, result.Flights, mapFiles, time.Now())
	if err != nil {
		log.Fatalf("Error laying out report: %v", err)
	}
	if err := report.WriteHTMLFile(cfg.OutputPath(cfg.Output.HTMLFile), page); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
	if cfg.Output.StatsJSON != "" {
		if err := report.WriteStatsJSONFile(cfg.OutputPath(cfg.Output.StatsJSON), stats); err != nil {
			log.Fatalf("Error writing stats: %v", err)
		}
	}
	timer.ObserveDuration()

	if cfg.Output.MetricsFile != "" {
		if err := collector.WriteTextfile(cfg.OutputPath(cfg.Output.MetricsFile)); err != nil {
			log.Printf("WARN: Failed to write metrics textfile: %v", err)
		}
	}

	if result.FailedRecords > 0 {
		log.Printf("WARN: %d flight records were skipped", result.FailedRecords)
	}
	log.Printf("Done. Report written to %s", cfg.OutputPath(cfg.Output.HTMLFile))
}
