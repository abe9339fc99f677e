package dto

import "github.com/handiism/bing-wallpaper/internal/model"

// JSONArchive is the response of HPImageArchive.aspx?format=js.
type JSONArchive struct {
	Images []JSONImage `json:"images"`
}

// JSONImage is a single entry of the "images" array.
//
// Bing returns more fields than these (hsh, title, quiz, ...); only the ones
// the collector needs are decoded.
type JSONImage struct {
	StartDate     string `json:"startdate"`
	FullStartDate string `json:"fullstartdate"`
	EndDate       string `json:"enddate"`
	URL           string `json:"url"`
	URLBase       string `json:"urlbase"`
	Copyright     string `json:"copyright"`
	CopyrightLink string `json:"copyrightlink"`
	Title         string `json:"title"`
}

// ToWallpaper converts the image entry to a Wallpaper, resolving the image
// path against origin.
func (ji *JSONImage) ToWallpaper(origin string) (*model.Wallpaper, error) {
	return model.NewWallpaper(origin, ji.URL, ji.Copyright, ji.EndDate)
}
