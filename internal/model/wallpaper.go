package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Wallpaper represents a single Bing image-of-the-day entry.
//
// Wallpaper contains everything needed to save the image and describe it:
//   - Date for year-scoped organization and the filename prefix
//   - ImageURL for downloading the image
//   - Title and Copyright for the status document
//   - Filename, computed from Date and the caption
//
// A Wallpaper is built once per run by NewWallpaper and never modified.
//
// Example:
//
//	wp, err := NewWallpaper("https://www.bing.com", "/th?id=ABC123", "Mountain View (© Example Corp)", "20240115")
//	// wp.Date     = "2024-01-15"
//	// wp.Filename = "2024-01-15_Mountain View.jpg"
//	// wp.ImageURL = "https://www.bing.com/th?id=ABC123"
type Wallpaper struct {
	// Date is the calendar date in YYYY-MM-DD form.
	Date string

	// ImageURL is the fully-qualified URL of the image.
	ImageURL string

	// Title is the human-readable caption.
	// Bing only provides a single caption string, so this is the same as Copyright.
	Title string

	// Copyright is the caption exactly as returned by Bing.
	Copyright string

	// Filename is the local file name: "{Date}_{title prefix}.jpg".
	Filename string
}

// NewWallpaper creates a Wallpaper from the raw metadata fields.
//
// Parameters:
//   - origin: Web origin prepended to urlPath (e.g. "https://www.bing.com")
//   - urlPath: Image path as returned by the API (e.g. "/th?id=...")
//   - copyright: Full caption string
//   - endDate: Date in YYYYMMDD form
//
// Returns an error if endDate is not exactly eight digits.
func NewWallpaper(origin, urlPath, copyright, endDate string) (*Wallpaper, error) {
	date, err := formatDate(endDate)
	if err != nil {
		return nil, err
	}

	return &Wallpaper{
		Date:      date,
		ImageURL:  strings.TrimRight(origin, "/") + urlPath,
		Title:     copyright,
		Copyright: copyright,
		Filename:  date + "_" + sanitizeTitle(copyright) + ".jpg",
	}, nil
}

var endDateRe = regexp.MustCompile(`^[0-9]{8}$`)

// formatDate converts YYYYMMDD to YYYY-MM-DD.
func formatDate(endDate string) (string, error) {
	if !endDateRe.MatchString(endDate) {
		return "", fmt.Errorf("invalid end date %q", endDate)
	}
	return endDate[:4] + "-" + endDate[4:6] + "-" + endDate[6:], nil
}

var invalidTitleChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// sanitizeTitle extracts the filename-safe title prefix from a caption.
//
// The caption is cut at the first "(" (which usually starts the photo credit),
// trimmed, and stripped of characters that are invalid in file names:
//
//	sanitizeTitle("Mountain View (© Example Corp)") // Returns "Mountain View"
//	sanitizeTitle("What? A: test (© X)")            // Returns "What A test"
func sanitizeTitle(caption string) string {
	prefix, _, _ := strings.Cut(caption, "(")
	prefix = strings.TrimSpace(prefix)
	return strings.TrimSpace(invalidTitleChars.ReplaceAllString(prefix, ""))
}
