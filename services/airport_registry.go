// services/airport_registry.go
package services

import (
	"fmt"
	"log"
	"os"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/scraper"
)

// AirportLookup resolves airport codes. *AirportRegistry implements it.
type AirportLookup interface {
	Lookup(code string) (*models.Airport, error)
}

// AirportRegistry holds the airport reference table keyed by internal code.
// It is not modified after construction.
type AirportRegistry struct {
	byCode map[string]*models.Airport
	order  []*models.Airport
}

// NewAirportRegistry builds a registry from CSV rows. A row without a code,
// with unparseable coordinates or with a code seen before is a *models.DataError.
func NewAirportRegistry(rows []models.AirportRow) (*AirportRegistry, error) {
	r := &AirportRegistry{
		byCode: make(map[string]*models.Airport, len(rows)),
		order:  make([]*models.Airport, 0, len(rows)),
	}
	for i, row := range rows {
		a, err := models.AirportFromRow(row, i+1)
		if err != nil {
			return nil, err
		}
		if _, dup := r.byCode[a.Code]; dup {
			return nil, &models.DataError{Row: i + 1, Field: "code", Value: a.Code, Message: "duplicate airport code " + a.Code}
		}
		r.byCode[a.Code] = a
		r.order = append(r.order, a)
	}
	return r, nil
}

// LoadAirportRegistry reads the airport CSV at path.
func LoadAirportRegistry(path string) (*AirportRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airport table %s: %w", path, err)
	}
	defer file.Close()

	rows, err := scraper.ParseAirportsCsv(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse airport table %s: %w", path, err)
	}

	reg, err := NewAirportRegistry(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid airport table %s: %w", path, err)
	}
	log.Printf("Service: Loaded %d airports from %s\n", reg.Len(), path)
	return reg, nil
}

// Lookup returns the airport for code or a *models.UnknownAirportError.
func (r *AirportRegistry) Lookup(code string) (*models.Airport, error) {
	a, ok := r.byCode[code]
	if !ok {
		return nil, &models.UnknownAirportError{Code: code}
	}
	return a, nil
}

// Len is the number of airports.
func (r *AirportRegistry) Len() int { return len(r.order) }

// Airports returns every airport in table order.
func (r *AirportRegistry) Airports() []*models.Airport {
	return append([]*models.Airport(nil), r.order...)
}
