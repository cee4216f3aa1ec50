package models

import "errors"

const (
	MinRating = 1
	MaxRating = 5
)

// ErrRatingOutOfRange is returned when a rating is not a whole number between MinRating and MaxRating
var ErrRatingOutOfRange = errors.New("Rating must be between 1 and 5.")

// Podcast represents a show in the catalog
type Podcast struct {
	Model
	Title    string    `json:"title" gorm:"not null"`
	Category string    `json:"category" gorm:"not null;index"`
	Rating   int       `json:"rating"` // 0 until rated, then 1-5
	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID;constraint:OnDelete:CASCADE"`
}

// Episode represents a single episode of a podcast
type Episode struct {
	Model
	PodcastID uint   `json:"podcastId" gorm:"not null;index"`
	Title     string `json:"title" gorm:"not null"`
	Category  string `json:"category"`
}

// ValidateRating checks a requested rating. Fractional values are rejected
// even when they fall inside the range.
func ValidateRating(rating float64) error {
	if rating != float64(int(rating)) || rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}
