// scraper/flight_log_parser.go
package scraper

import (
	"strings"

	"github.com/gewnthar/flightmapper/models"
)

// flightLogFields is the closed set of keys a flight log record may use.
var flightLogFields = map[string]bool{
	"route": true, "date": true, "desig": true, "mkt_cxr": true, "adm_cxr": true,
	"number": true, "type2": true, "type3": true, "manufacturer": true,
	"registration": true, "seat_type": true, "cabin": true, "seat": true,
	"msn": true, "ln": true, "first_flight": true, "num_engines": true,
	"engines": true, "std": true, "sta": true, "atd": true, "ata": true,
	"pics": true, "price": true, "notes": true, "gates": true, "runways": true,
	"fare": true, "actual_dist": true, "fleet": true, "plan": true, "config": true,
}

// ParseFlightLogLine splits one log line of comma-separated key=value pairs.
// lineNum is 1-based and only used for error reporting.
func ParseFlightLogLine(line string, lineNum int) (models.FlightRecord, error) {
	rec := models.FlightRecord{Line: lineNum, Fields: map[string]string{}}

	for _, pair := range strings.Split(strings.TrimSpace(line), ",") {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return models.FlightRecord{}, &models.DataError{
				Row: lineNum, Value: pair,
				Message: "expected key=value, got " + `"` + pair + `"`,
			}
		}
		if !flightLogFields[key] {
			return models.FlightRecord{}, &models.DataError{
				Row: lineNum, Field: key, Value: value,
				Message: "unknown flight field " + key,
			}
		}
		if _, dup := rec.Fields[key]; dup {
			return models.FlightRecord{}, &models.DataError{
				Row: lineNum, Field: key, Value: value,
				Message: "duplicate flight field " + key,
			}
		}
		rec.Fields[key] = value
	}
	return rec, nil
}
