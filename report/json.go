// report/json.go
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// WriteStatsJSON writes stats as indented JSON.
func WriteStatsJSON(w io.Writer, stats *Stats) error {
	response, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		log.Printf("Report ERROR: Marshalling stats: %v", err)
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if _, err := w.Write(append(response, '\n')); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

// WriteStatsJSONFile writes stats to path, creating its directory.
func WriteStatsJSONFile(path string, stats *Stats) error {
	return writeFile(path, func(w io.Writer) error { return WriteStatsJSON(w, stats) })
}

// writeFile creates path and hands it to write, closing it on every return path.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := write(file); err != nil {
		return err
	}
	log.Printf("Report: Wrote %s\n", path)
	return nil
}
