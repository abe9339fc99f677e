// Package config provides configuration for the bing-wallpaper collector.
//
// This package handles:
//   - Default configuration values
//   - Fixed Bing endpoints and the browser User-Agent
//   - Validation of command-line overrides
//
// There is no configuration file; settings come from DefaultSettings and
// the command-line flags applied on top of it.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Saves to <base>/archives/<year>/
//	// Fetches the zh-CN market
//	// Thumbnails disabled
//
// # Overriding
//
//	settings.OutputDir = "wallpapers"
//	settings.Market = "en-US"
//	if err := settings.Validate(); err != nil {
//	    // ...
//	}
package config
