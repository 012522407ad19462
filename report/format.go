// report/format.go
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/utils"
)

func itoa(n int) string { return strconv.Itoa(n) }

// Miles rounds to whole statute miles, e.g. "3451 mi".
func Miles(d float64) string {
	return fmt.Sprintf("%d mi", int(math.Round(d)))
}

// MilesTenths keeps one decimal, for short segments.
func MilesTenths(d float64) string {
	return fmt.Sprintf("%.1f mi", d)
}

// Latitude formats a latitude in degrees with a true minus sign for the south.
func Latitude(lat float64) string {
	if lat < 0 {
		return fmt.Sprintf("−%.2f°", -lat)
	}
	return fmt.Sprintf("%.2f°", lat)
}

// FlightDate is the log table date, e.g. "2019 Mar 02".
func FlightDate(t time.Time) string {
	return t.Format(models.PrecisionDay.Layout())
}

// Airline is the marketing carrier, with the operator when it differs.
func Airline(f *models.Flight) string {
	if op := f.Operator(); op != "" {
		return f.MktCxr + " (operated by " + op + ")"
	}
	return f.MktCxr
}

// Airplane is "manufacturer type3 (registration)".
func Airplane(f *models.Flight) string {
	s := strings.TrimSpace(f.Manufacturer + " " + f.Type3)
	if f.Registration != "" {
		s += " (" + f.Registration + ")"
	}
	return s
}

// Seat is "seat (seat type, cabin)", dropping the parts that are missing.
func Seat(f *models.Flight) string {
	var extra []string
	for _, v := range []string{f.SeatType, f.Cabin} {
		if v != "" {
			extra = append(extra, v)
		}
	}
	if len(extra) == 0 {
		return f.Seat
	}
	return strings.TrimSpace(f.Seat + " (" + strings.Join(extra, ", ") + ")")
}

// FirstFlight returns the airplane age in whole years at now and the first
// flight date at the precision it was logged with.
func FirstFlight(f *models.Flight, now time.Time) (age string, date string, err error) {
	t, precision, err := models.ParsePartialDate("first_flight", f.FirstFlight)
	if err != nil {
		return "", "", err
	}
	years := now.Sub(t).Hours() / 24 / 365.25
	return fmt.Sprintf("%d years", int(math.Round(years))), t.Format(precision.Layout()), nil
}

// Engines expands the manufacturer abbreviation of the engines field.
func Engines(f *models.Flight) string {
	if f.Engines == "" {
		return ""
	}
	s := utils.ExpandEngines(f.Engines)
	if f.NumEngines != "" {
		s = f.NumEngines + " × " + s
	}
	return s
}

// Label shows an empty grouping value as "unknown".
func Label(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
