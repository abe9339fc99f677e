package config

import (
	"errors"
	"time"
)

const (
	// MetadataURL is Bing's image archive endpoint.
	MetadataURL = "https://www.bing.com/HPImageArchive.aspx"

	// ImageOrigin is prepended to the image path returned by the archive endpoint.
	ImageOrigin = "https://www.bing.com"

	// UserAgent identifies as a desktop browser, since Bing serves
	// different content to unknown clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"

	// StatusFileName is the status document written to the base directory.
	StatusFileName = "README.md"

	// ThumbnailDirName is the subdirectory of each year directory holding thumbnails.
	ThumbnailDirName = "thumbnails"
)

// BaseDirMarkers are the files or directories that mark the project root
// when searching upward from the executable.
var BaseDirMarkers = []string{".git", "go.mod", "go.work"}

// Settings holds all configuration options.
type Settings struct {
	// Paths
	BaseDir   string // empty means discover via BaseDirMarkers
	OutputDir string // relative to BaseDir unless absolute

	// Bing
	Market      string
	MetadataURL string
	ImageOrigin string
	UserAgent   string

	// Timeouts
	MetadataTimeout time.Duration
	DownloadTimeout time.Duration

	// Thumbnail settings
	ThumbnailSize int // max edge in pixels, 0 disables
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir: "archives",

		Market:      "zh-CN",
		MetadataURL: MetadataURL,
		ImageOrigin: ImageOrigin,
		UserAgent:   UserAgent,

		MetadataTimeout: 10 * time.Second,
		DownloadTimeout: 30 * time.Second,

		ThumbnailSize: 0,
	}
}

// Validate checks that the settings can be used by the collector.
//
// Market is not checked: it is sent as the mkt query parameter verbatim,
// and an empty value lets Bing pick a market from the request.
func (s *Settings) Validate() error {
	var errs []error
	if s.OutputDir == "" {
		errs = append(errs, errors.New("output directory must not be empty"))
	}
	if s.MetadataURL == "" {
		errs = append(errs, errors.New("metadata url must not be empty"))
	}
	if s.MetadataTimeout <= 0 || s.DownloadTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}
	if s.ThumbnailSize < 0 {
		errs = append(errs, errors.New("thumbnail size must not be negative"))
	}
	return errors.Join(errs...)
}
