package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
	"unicode/utf8"
)

// Client wraps HTTP operations with Bing-specific configuration.
//
// Client provides:
//   - A fixed browser-like User-Agent header on every request
//   - An overall timeout as a safety net (per-request deadlines come from ctx)
//   - Streaming file downloads
//
// A single Client is shared by the metadata request and the image download.
//
// Example usage:
//
//	client := NewClient(config.UserAgent)
//
//	// Fetch JSON metadata
//	body, err := client.Get(ctx, "https://www.bing.com/HPImageArchive.aspx?format=js&idx=0&n=1")
//
//	// Download the image
//	n, err := client.DownloadFile(ctx, imageURL, "/archives/2024/2024-01-15_Title.jpg")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client sending the given User-Agent.
//
// The client is configured with a 60 second overall timeout. Callers
// should bound each request more tightly using ctx.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("fetch %q: %w", url, statusCodeError(resp))
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: read body: %w", url, err)
	}
	return buf, nil
}

// DownloadFile downloads a file to the specified path and returns the
// number of bytes written.
//
// The response status is checked before destPath is touched, so an HTTP
// error never creates or truncates the destination. On success the file is
// created (or truncated if it exists) and the body is streamed directly to
// disk. A failure while copying may leave a partial file behind.
//
// Example:
//
//	n, err := client.DownloadFile(ctx, imageURL, "/archives/2024/2024-01-15_Title.jpg")
func (c *Client) DownloadFile(ctx context.Context, url, destPath string) (int64, error) {
	resp, err := c.fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return 0, fmt.Errorf("fetch %q: %w", url, statusCodeError(resp))
	}

	file, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := io.Copy(file, resp.Body)
	if err != nil {
		return n, fmt.Errorf("write %q: %w", destPath, err)
	}
	return n, file.Close()
}

func (c *Client) fetch(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", url, err)
	}
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

func statusCodeError(resp *http.Response) error {
	if buf, _ := io.ReadAll(io.LimitReader(resp.Body, 1024)); len(buf) != 0 && utf8.Valid(buf) {
		return fmt.Errorf("response status %d (body: %q)", resp.StatusCode, buf)
	}
	return fmt.Errorf("response status %d", resp.StatusCode)
}
