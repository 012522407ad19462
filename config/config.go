// config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gewnthar/flightmapper/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type InputsConfig struct {
	AirportsCSV string `yaml:"airports_csv"`
	FlightsLog  string `yaml:"flights_log"`
}

// SourcesConfig describes where the airport table can be fetched from.
// When AirportsURL is empty the local CSV is used as is.
type SourcesConfig struct {
	AirportsURL        string        `yaml:"airports_url"`
	DownloadTimeoutStr string        `yaml:"download_timeout"`
	DownloadTimeout    time.Duration `yaml:"-"` // Parsed duration
}

type OutputConfig struct {
	Dir         string `yaml:"dir"`
	HTMLFile    string `yaml:"html_file"`
	StatsJSON   string `yaml:"stats_json"`
	MetricsFile string `yaml:"metrics_file"` // empty disables the metrics textfile
}

type IngestionConfig struct {
	OnError string `yaml:"on_error"` // "abort" or "skip"
}

type MapsConfig struct {
	Enabled bool     `yaml:"enabled"`
	Regions []string `yaml:"regions"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type CityGroupConfig struct {
	Code     string   `yaml:"code"`
	Name     string   `yaml:"name"`
	Airports []string `yaml:"airports"`
}

type Config struct {
	Inputs     InputsConfig      `yaml:"inputs"`
	Sources    SourcesConfig     `yaml:"sources"`
	Output     OutputConfig      `yaml:"output"`
	Ingestion  IngestionConfig   `yaml:"ingestion"`
	Maps       MapsConfig        `yaml:"maps"`
	Logging    LoggingConfig     `yaml:"logging"`
	CityGroups []CityGroupConfig `yaml:"city_groups"` // replaces the built-in table when set
}

const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

var AppConfig Config

// ErrConfigNotFound is returned by LoadConfig when no path was given and no
// config.yaml exists in the standard locations.
var ErrConfigNotFound = errors.New("config.yaml not found in standard locations")

// DefaultConfig is the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Inputs: InputsConfig{
			AirportsCSV: "data/airports.csv",
			FlightsLog:  "flights.txt",
		},
		Sources: SourcesConfig{
			DownloadTimeoutStr: "30s",
			DownloadTimeout:    30 * time.Second,
		},
		Output: OutputConfig{
			Dir:       "site",
			HTMLFile:  "index.html",
			StatsJSON: "stats.json",
		},
		Ingestion: IngestionConfig{OnError: OnErrorAbort},
		Maps: MapsConfig{
			Enabled: true,
			Regions: []string{"america", "earth", "europe"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads configuration from file into AppConfig, on top of DefaultConfig.
// An empty configPath searches the usual locations.
func LoadConfig(configPath string) error {
	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			return ErrConfigNotFound
		}
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

// UseDefaults resets AppConfig to DefaultConfig.
func UseDefaults() {
	AppConfig = DefaultConfig()
}

// Environment variables that override the file configuration.
const (
	EnvAirportsCSV = "FLIGHTMAPPER_AIRPORTS_CSV"
	EnvFlightsLog  = "FLIGHTMAPPER_FLIGHTS_LOG"
	EnvOutputDir   = "FLIGHTMAPPER_OUTPUT_DIR"
	EnvAirportsURL = "FLIGHTMAPPER_AIRPORTS_URL"
	EnvOnError     = "FLIGHTMAPPER_ON_ERROR"
	EnvLogLevel    = "FLIGHTMAPPER_LOG_LEVEL"
)

// ApplyEnvOverrides applies overrides from the process environment and, if
// envFile exists, from that .env file. Process variables take precedence.
func ApplyEnvOverrides(envFile string) error {
	values := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			values, err = godotenv.Read(envFile)
			if err != nil {
				return fmt.Errorf("failed to read env file %s: %w", envFile, err)
			}
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	overrides := []struct {
		key    string
		target *string
	}{
		{EnvAirportsCSV, &AppConfig.Inputs.AirportsCSV},
		{EnvFlightsLog, &AppConfig.Inputs.FlightsLog},
		{EnvOutputDir, &AppConfig.Output.Dir},
		{EnvAirportsURL, &AppConfig.Sources.AirportsURL},
		{EnvOnError, &AppConfig.Ingestion.OnError},
		{EnvLogLevel, &AppConfig.Logging.Level},
	}
	for _, o := range overrides {
		if v, ok := lookup(o.key); ok {
			*o.target = v
		}
	}
	return AppConfig.finish()
}

// finish parses derived fields and validates enumerations.
func (c *Config) finish() error {
	if c.Sources.DownloadTimeoutStr != "" {
		d, err := time.ParseDuration(c.Sources.DownloadTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse download_timeout: %w", err)
		}
		c.Sources.DownloadTimeout = d
	} else {
		c.Sources.DownloadTimeout = 30 * time.Second // Default
	}

	c.Ingestion.OnError = strings.ToLower(strings.TrimSpace(c.Ingestion.OnError))
	switch c.Ingestion.OnError {
	case "":
		c.Ingestion.OnError = OnErrorAbort
	case OnErrorAbort, OnErrorSkip:
	default:
		return fmt.Errorf("ingestion.on_error must be %q or %q, got %q", OnErrorAbort, OnErrorSkip, c.Ingestion.OnError)
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// OutputPath joins a file name onto the output directory.
func (c Config) OutputPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}

// Debug reports whether debug logging is on.
func (c Config) Debug() bool {
	return c.Logging.Level == "debug"
}

// CityTable builds the city-group table: the configured groups if any, else the built-in one.
func (c Config) CityTable() (*utils.CityTable, error) {
	if len(c.CityGroups) == 0 {
		return utils.DefaultCityTable(), nil
	}
	groups := make([]utils.CityGroup, 0, len(c.CityGroups))
	for _, g := range c.CityGroups {
		groups = append(groups, utils.CityGroup{Code: g.Code, Name: g.Name, Airports: g.Airports})
	}
	t, err := utils.NewCityTable(groups)
	if err != nil {
		return nil, fmt.Errorf("invalid city_groups: %w", err)
	}
	return t, nil
}
