// Package http provides an HTTP client configured for Bing requests.
//
// The Client in this package handles:
//   - The browser-like User-Agent header Bing expects
//   - Status checking with a short body excerpt in errors
//   - Streaming file downloads
//
// # Basic Usage
//
//	client := http.NewClient(config.UserAgent)
//
//	// Fetch JSON metadata
//	body, err := client.Get(ctx, metadataURL)
//
//	// Download the image to disk
//	n, err := client.DownloadFile(ctx, imageURL, savePath)
//
// Per-request timeouts are applied by the caller with context.WithTimeout.
package http
