package bing

import (
	"errors"
	"net/url"
	"testing"
)

func TestArchiveURL(t *testing.T) {
	got, err := ArchiveURL("https://www.bing.com/HPImageArchive.aspx", "en-US")
	if err != nil {
		t.Fatalf("ArchiveURL failed: %v", err)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("invalid url %q: %v", got, err)
	}
	if u.Host != "www.bing.com" || u.Path != "/HPImageArchive.aspx" {
		t.Errorf("url = %q, want the archive endpoint", got)
	}

	want := map[string]string{"format": "js", "idx": "0", "n": "1", "mkt": "en-US"}
	for k, v := range want {
		if u.Query().Get(k) != v {
			t.Errorf("query %s = %q, want %q", k, u.Query().Get(k), v)
		}
	}
}

func TestArchiveURLEmptyMarket(t *testing.T) {
	got, err := ArchiveURL("https://www.bing.com/HPImageArchive.aspx", "")
	if err != nil {
		t.Fatalf("ArchiveURL failed: %v", err)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("invalid url %q: %v", got, err)
	}
	if v, ok := u.Query()["mkt"]; !ok || len(v) != 1 || v[0] != "" {
		t.Errorf("mkt = %v, want a single empty value", v)
	}
}

func TestParser_ParseArchive(t *testing.T) {
	body := `{
		"images": [{
			"startdate": "20240114",
			"fullstartdate": "202401141600",
			"enddate": "20240115",
			"url": "/th?id=ABC123",
			"urlbase": "/th?id=ABC",
			"copyright": "Mountain View (© Example Corp)",
			"copyrightlink": "https://www.bing.com/search?q=x",
			"title": "Info",
			"hsh": "abc"
		}],
		"tooltips": {"loading": "Loading..."}
	}`

	wp, err := NewParser("https://www.bing.com").ParseArchive([]byte(body))
	if err != nil {
		t.Fatalf("ParseArchive failed: %v", err)
	}

	if wp.Date != "2024-01-15" {
		t.Errorf("Date = %q, want %q", wp.Date, "2024-01-15")
	}
	if wp.Filename != "2024-01-15_Mountain View.jpg" {
		t.Errorf("Filename = %q, want %q", wp.Filename, "2024-01-15_Mountain View.jpg")
	}
	if wp.ImageURL != "https://www.bing.com/th?id=ABC123" {
		t.Errorf("ImageURL = %q, want %q", wp.ImageURL, "https://www.bing.com/th?id=ABC123")
	}
	if wp.Copyright != "Mountain View (© Example Corp)" {
		t.Errorf("Copyright = %q", wp.Copyright)
	}
}

func TestParser_ParseArchiveEmptyURL(t *testing.T) {
	body := `{"images": [{"url": "", "copyright": "Lake (© X)", "enddate": "20240115"}]}`

	wp, err := NewParser("https://www.bing.com").ParseArchive([]byte(body))
	if err != nil {
		t.Fatalf("ParseArchive failed: %v", err)
	}
	if wp.ImageURL != "https://www.bing.com" {
		t.Errorf("ImageURL = %q, want the bare origin", wp.ImageURL)
	}
	if wp.Filename != "2024-01-15_Lake.jpg" {
		t.Errorf("Filename = %q, want %q", wp.Filename, "2024-01-15_Lake.jpg")
	}
}

func TestParser_ParseArchiveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "not json",
			body: `<html>rate limited</html>`,
		},
		{
			name: "missing images",
			body: `{"tooltips": {}}`,
		},
		{
			name:    "empty images",
			body:    `{"images": []}`,
			wantErr: ErrNoImages,
		},
		{
			name: "images not an array",
			body: `{"images": {"url": "/th"}}`,
		},
		{
			name: "missing url",
			body: `{"images": [{"copyright": "x", "enddate": "20240115"}]}`,
		},
		{
			name: "missing copyright",
			body: `{"images": [{"url": "/th", "enddate": "20240115"}]}`,
		},
		{
			name: "missing enddate",
			body: `{"images": [{"url": "/th", "copyright": "x"}]}`,
		},
		{
			name: "malformed enddate",
			body: `{"images": [{"url": "/th", "copyright": "x", "enddate": "2024-01-15"}]}`,
		},
		{
			name: "numeric enddate",
			body: `{"images": [{"url": "/th", "copyright": "x", "enddate": 20240115}]}`,
		},
	}

	parser := NewParser("https://www.bing.com")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp, err := parser.ParseArchive([]byte(tt.body))
			if err == nil {
				t.Fatalf("expected error but got %+v", wp)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestArchiveSchemaCompiles(t *testing.T) {
	if _, err := archiveSchema(); err != nil {
		t.Fatalf("archive schema: %v", err)
	}
}
