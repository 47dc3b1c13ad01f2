package models

// Catalog is the root document written to disk
type Catalog struct {
	Playlists []Playlist `json:"playlists"`
}

// Playlist represents a named category of videos
type Playlist struct {
	Name   string  `json:"name"`
	Videos []Video `json:"videos"`
}

// Video represents a synthetic video metadata record
type Video struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Duration   string `json:"duration"`
	Views      string `json:"views"`
	UploadDate string `json:"uploadDate"`
	Thumbnail  string `json:"thumbnail"`
}

// VideoFeed is the flat document read by the browser player
type VideoFeed struct {
	Videos []Video `json:"videos"`
}

// Index represents the main index page data
type Index struct {
	Variant   string
	Playlists []Playlist
}
