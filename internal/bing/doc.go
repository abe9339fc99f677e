// Package bing decodes responses from Bing's HPImageArchive endpoint.
//
// # Request
//
// ArchiveURL builds the request for the most recent image of a market:
//
//	u, err := bing.ArchiveURL(config.MetadataURL, "zh-CN")
//
// # Parsing
//
// Parser validates the JSON body against an embedded schema and turns the
// first entry of the "images" array into a model.Wallpaper:
//
//	parser := bing.NewParser(config.ImageOrigin)
//	wp, err := parser.ParseArchive(body)
//	if errors.Is(err, bing.ErrNoImages) {
//	    // nothing published for this market
//	}
package bing
