// Package collector orchestrates one wallpaper collection run.
//
// # Collector
//
// The Collector performs the whole cycle in a single sequential pass:
//
//  1. Fetch today's metadata from Bing (10s timeout)
//  2. Create the year directory under the output root
//  3. Skip the run if the image file already exists
//  4. Download the image (30s timeout)
//  5. Write an optional thumbnail
//  6. Replace README.md with the new entry
//
// # Basic Usage
//
//	settings := config.DefaultSettings()
//	c, err := collector.New(settings, logger)
//	if err != nil {
//	    return err
//	}
//	if err := c.Run(ctx); err != nil {
//	    // the image download failed
//	}
//
// # Idempotence
//
// There is no state besides the archive itself. An image file already at
// the computed path means the day was collected, so running several times a
// day only fetches metadata.
package collector
