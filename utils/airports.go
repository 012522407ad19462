// utils/airports.go
package utils

import "strings"

// NormalizeAirportCode trims surrounding whitespace from a code taken from an
// input file. Codes are internal keys, so case is preserved.
func NormalizeAirportCode(code string) string {
	return strings.TrimSpace(code)
}

// engineManufacturers expands the abbreviations used in the engines field.
var engineManufacturers = map[string]string{
	"PW":   "Pratt & Whitney",
	"GE":   "General Electric",
	"RR":   "Rolls Royce",
	"CFMI": "CFM International",
	"IAE":  "International Aero Engines",
	"PWC":  "Pratt & Whitney Canada",
	"LY":   "Lycoming",
	"EA":   "Engine Alliance",
	"GAR":  "Garrett AiResearch",
	"CM":   "Continental Motors",
}

// ExpandEngines replaces a leading manufacturer abbreviation, so
// "CFMI CFM56-7B26" becomes "CFM International CFM56-7B26".
// Unknown prefixes are returned unchanged.
func ExpandEngines(engines string) string {
	abbr, rest, _ := strings.Cut(strings.TrimSpace(engines), " ")
	name, ok := engineManufacturers[abbr]
	if !ok {
		return engines
	}
	if rest == "" {
		return name
	}
	return name + " " + rest
}
