package bing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/handiism/bing-wallpaper/internal/bing/dto"
	"github.com/handiism/bing-wallpaper/internal/model"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrNoImages is returned when the archive response has an empty images array.
var ErrNoImages = errors.New("no images in archive response")

// ArchiveURL builds the metadata request URL for the most recent image.
//
// The query selects JSON output (format=js), the latest day (idx=0), a
// single entry (n=1) and the given market:
//
//	ArchiveURL("https://www.bing.com/HPImageArchive.aspx", "en-US")
//	// "https://www.bing.com/HPImageArchive.aspx?format=js&idx=0&mkt=en-US&n=1"
func ArchiveURL(endpoint, market string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse metadata url: %w", err)
	}
	q := u.Query()
	q.Set("format", "js")
	q.Set("idx", "0")
	q.Set("n", "1")
	q.Set("mkt", market)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Parser converts archive responses into Wallpaper records.
//
// The response is validated against an embedded JSON Schema before it is
// decoded, so a missing field is reported as a schema violation naming the
// offending location rather than silently decoding to an empty string.
type Parser struct {
	origin string
}

// NewParser creates a new Parser which resolves image paths against origin
// (normally "https://www.bing.com").
func NewParser(origin string) *Parser {
	return &Parser{origin: origin}
}

// ParseArchive extracts the first image from an HPImageArchive JSON response.
//
// This method performs the following steps:
//  1. Parses the body as JSON
//  2. Validates it against the archive schema
//  3. Decodes it into the archive DTO
//  4. Builds the Wallpaper for images[0]
//
// Returns ErrNoImages if the images array is empty.
func (p *Parser) ParseArchive(body []byte) (*model.Wallpaper, error) {
	schema, err := archiveSchema()
	if err != nil {
		return nil, err
	}

	obj, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("invalid archive json: %w", err)
	}
	if err := schema.Validate(obj); err != nil {
		return nil, fmt.Errorf("invalid archive response: %w", err)
	}

	var archive dto.JSONArchive
	if err := json.Unmarshal(body, &archive); err != nil {
		return nil, fmt.Errorf("failed to parse archive JSON: %w", err)
	}
	if len(archive.Images) == 0 {
		return nil, ErrNoImages
	}

	wp, err := archive.Images[0].ToWallpaper(p.origin)
	if err != nil {
		return nil, fmt.Errorf("invalid archive image: %w", err)
	}
	return wp, nil
}

var archiveSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	obj, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(archiveSchemaJSON)))
	if err != nil {
		return nil, fmt.Errorf("unmarshal archive schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(archiveSchemaID, obj); err != nil {
		return nil, fmt.Errorf("add archive schema: %w", err)
	}
	sch, err := c.Compile(archiveSchemaID)
	if err != nil {
		return nil, fmt.Errorf("compile archive schema: %w", err)
	}
	return sch, nil
})
