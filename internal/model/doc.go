// Package model defines the core data structures used throughout
// the bing-wallpaper collector.
//
// # Wallpaper
//
// Wallpaper represents one image-of-the-day entry with its derived filename:
//
//	wp, err := model.NewWallpaper(origin, "/th?id=...", caption, "20240115")
//	fmt.Println(wp.Filename) // "2024-01-15_<caption prefix>.jpg"
//
// The filename is prefixed with the date, so entries from different days
// never collide. The collector treats an existing file at that name as proof
// the day was already collected.
package model
