// services/ingestion_service.go
package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gewnthar/flightmapper/config"
	"github.com/gewnthar/flightmapper/metrics"
	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/scraper"
)

// maxLogLineBytes bounds a single flight log line.
const maxLogLineBytes = 16 * 1024 * 1024

// RecordError is a rejected flight log line.
type RecordError struct {
	Line int
	Err  error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// IngestionResult summarises one pass over a flight log.
type IngestionResult struct {
	Flights           []*models.Flight
	TotalRecords      int
	SuccessfulRecords int
	FailedRecords     int
	Duration          time.Duration
	Errors            []RecordError
}

// errorType names the error class for logs and metrics labels.
func errorType(err error) string {
	var (
		dataErr    *models.DataError
		unknownErr *models.UnknownAirportError
		emptyErr   *models.EmptyRouteError
		dateErr    *models.MalformedDateError
	)
	switch {
	case errors.As(err, &unknownErr):
		return "unknown_airport"
	case errors.As(err, &emptyErr):
		return "empty_route"
	case errors.As(err, &dateErr):
		return "malformed_date"
	case errors.As(err, &dataErr):
		return "data"
	default:
		return "other"
	}
}

// IngestFlightLog reads one flight per non-blank line. With onError set to
// config.OnErrorAbort the first bad record stops ingestion and is returned;
// with config.OnErrorSkip bad records are logged, counted and left out.
// collector may be nil.
func IngestFlightLog(r io.Reader, airports AirportLookup, onError string, collector *metrics.Collector) (*IngestionResult, error) {
	start := time.Now()
	result := &IngestionResult{}

	reject := func(lineNum int, err error) error {
		result.FailedRecords++
		if collector != nil {
			collector.RecordIngestionError(errorType(err))
		}
		if onError != config.OnErrorSkip {
			return RecordError{Line: lineNum, Err: err}
		}
		log.Printf("WARN Service: Skipping flight log line %d: %v\n", lineNum, err)
		result.Errors = append(result.Errors, RecordError{Line: lineNum, Err: err})
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.TotalRecords++
		if collector != nil {
			collector.RecordsTotal.Inc()
		}

		rec, err := scraper.ParseFlightLogLine(line, lineNum)
		if err == nil {
			var flight *models.Flight
			flight, err = BuildFlight(rec, airports)
			if err == nil {
				result.Flights = append(result.Flights, flight)
				result.SuccessfulRecords++
				if collector != nil {
					collector.FlightsIngested.Inc()
				}
				if config.AppConfig.Debug() {
					log.Printf("Service: line %d: %s %s, %d segments\n", lineNum, flight.Date.Format(models.LogDateLayout), flight.Route.Raw, len(flight.Route.Segments))
				}
				continue
			}
		}
		if abortErr := reject(lineNum, err); abortErr != nil {
			result.Duration = time.Since(start)
			return result, abortErr
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read flight log: %w", err)
	}

	result.Duration = time.Since(start)
	log.Printf("Service: Ingested %d of %d flight records in %v (%d skipped)\n",
		result.SuccessfulRecords, result.TotalRecords, result.Duration, result.FailedRecords)
	return result, nil
}

// LoadFlightLog opens path and ingests it. The file is closed on every return path.
func LoadFlightLog(path string, airports AirportLookup, onError string, collector *metrics.Collector) (*IngestionResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flight log %s: %w", path, err)
	}
	defer file.Close()

	result, err := IngestFlightLog(file, airports, onError, collector)
	if err != nil {
		return result, fmt.Errorf("flight log %s: %w", path, err)
	}
	return result, nil
}
