// scraper/airport_csv_parser.go
package scraper

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"github.com/gewnthar/flightmapper/models"
	"github.com/jszwec/csvutil"
)

// ParseAirportsCsv takes an io.Reader containing the airport reference table
// and returns its rows in file order.
//
// csvutil maps the header line onto the `csv:"..."` tags of models.AirportRow.
// The code, lat and lon columns are mandatory; the others may be absent from
// the header.
func ParseAirportsCsv(reader io.Reader) ([]models.AirportRow, error) {
	var rows []models.AirportRow

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for airports: %w", err)
	}

	for _, column := range requiredAirportColumns {
		if !hasColumn(decoder.Header(), column) {
			return nil, &models.DataError{Field: column, Message: "airport table has no " + column + " column"}
		}
	}

	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode airport CSV data: %w", err)
	}

	log.Printf("Scraper: Parsed %d airport rows from CSV.\n", len(rows))
	return rows, nil
}

var requiredAirportColumns = []string{"code", "lat", "lon"}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}
