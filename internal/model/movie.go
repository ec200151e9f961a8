package model

import "time"

// Movie is a catalog record. The store assigns the integer id; edits discard
// it (delete + recreate), so callers must not hold ids across an edit.
// Genres is never empty for a persisted movie.
type Movie struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"index;not null" json:"name"`
	Description  string    `json:"description"`
	Genres       []string  `gorm:"serializer:json;not null" json:"genres"`
	Trailer      string    `json:"trailer"`
	ReleaseYear  string    `gorm:"index" json:"releaseYear"`
	Quality      string    `gorm:"index" json:"quality"`
	IsNewRelease bool      `json:"isNewRelease"`
	// CoverImage holds the compressed data URI produced by the image input
	// collaborator (max 800px, JPEG 0.7). Stored verbatim.
	CoverImage string    `json:"coverImage"`
	DateAdded  time.Time `json:"dateAdded"`
	Views      int       `gorm:"not null;default:0" json:"views"`
}

func (Movie) TableName() string { return "movies" }
