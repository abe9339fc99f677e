// Package ioutils provides file system and image processing utilities for
// the bing-wallpaper collector.
//
// This package contains functions for:
//   - Locating the project base directory
//   - Directory creation and existence checks
//   - Atomic file replacement
//   - Thumbnail resizing
//
// # Base Directory
//
// FindBaseDir walks upward from a start path until a directory holds one of
// the markers, falling back to the parent of start:
//
//	exe, _ := os.Executable()
//	base := ioutils.FindBaseDir(exe, config.BaseDirMarkers)
//
// # File Operations
//
//	// Ensure the year directory exists
//	err := ioutils.EnsureDir("/repo/archives/2024")
//
//	// Skip work when today's image is already on disk
//	ok, err := ioutils.Exists("/repo/archives/2024/2024-01-15_Title.jpg")
//
//	// Replace README.md in one rename
//	err := ioutils.WriteFileAtomic("/repo/README.md", []byte(readme))
//
// # Image Processing
//
// The ImageService scales wallpapers down for the optional thumbnails:
//
//	svc := ioutils.NewImageService()
//
//	// Fit within 480x480, keeping the aspect ratio
//	thumb, _ := svc.ResizeImage(ctx, imageData, 480, 480)
package ioutils
