// scraper/csv_downloader.go
package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gewnthar/flightmapper/config"
)

// DownloadFile downloads url and saves it to localSavePath.
// The file is written to a temporary sibling first so a failed download never
// leaves a truncated table behind.
func DownloadFile(url string, localSavePath string, timeout time.Duration) error {
	log.Printf("Scraper: Downloading %s to %s\n", url, localSavePath)

	client := http.Client{
		Timeout: timeout,
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(localSavePath)+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to copy downloaded content to %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, localSavePath); err != nil {
		return fmt.Errorf("failed to move download into place at %s: %w", localSavePath, err)
	}

	log.Printf("Scraper: Downloaded %s to %s\n", url, localSavePath)
	return nil
}

// DownloadAirportsCsv refreshes the local airport table from the configured URL.
// It returns the local path, which is unchanged when no URL is configured.
func DownloadAirportsCsv() (string, error) {
	airportsURL := config.AppConfig.Sources.AirportsURL
	localPath := config.AppConfig.Inputs.AirportsCSV

	if localPath == "" {
		return "", fmt.Errorf("local path for the airport table is not configured")
	}
	if airportsURL == "" {
		return localPath, nil
	}

	if err := DownloadFile(airportsURL, localPath, config.AppConfig.Sources.DownloadTimeout); err != nil {
		return "", fmt.Errorf("failed to download airport table: %w", err)
	}
	return localPath, nil
}
