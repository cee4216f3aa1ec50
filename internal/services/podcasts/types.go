package podcasts

import (
	"encoding/json"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/output"
)

// CreatePodcastInput holds the fields of a new podcast
type CreatePodcastInput struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// PodcastPayload is a partial podcast update. Nil fields keep their stored value.
type PodcastPayload struct {
	Title    *string  `json:"title,omitempty"`
	Category *string  `json:"category,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

type UpdatePodcastInput struct {
	ID      uint           `json:"id"`
	Payload PodcastPayload `json:"payload"`
}

type CreateEpisodeInput struct {
	PodcastID uint   `json:"-"`
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category" binding:"required"`
}

// EpisodePayload is a partial episode update
type EpisodePayload struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
}

type UpdateEpisodeInput struct {
	PodcastID uint           `json:"podcastId"`
	EpisodeID uint           `json:"episodeId"`
	Payload   EpisodePayload `json:"payload"`
}

// GetAllPodcastsOutput carries the catalog. Success always has a non-nil slice.
type GetAllPodcastsOutput struct {
	output.Output
	Podcasts []models.Podcast `json:"podcasts"`
}

// MarshalJSON drops the collection from failures
func (o GetAllPodcastsOutput) MarshalJSON() ([]byte, error) {
	if !o.OK {
		return json.Marshal(o.Output)
	}
	type plain GetAllPodcastsOutput
	return json.Marshal(plain(o))
}

type CreatePodcastOutput struct {
	output.Output
	ID uint `json:"id,omitempty"`
}

type PodcastOutput struct {
	output.Output
	Podcast *models.Podcast `json:"podcast,omitempty"`
}

// EpisodesOutput carries a podcast's episodes. Success always has a non-nil slice.
type EpisodesOutput struct {
	output.Output
	Episodes []models.Episode `json:"episodes"`
}

// MarshalJSON drops the collection from failures
func (o EpisodesOutput) MarshalJSON() ([]byte, error) {
	if !o.OK {
		return json.Marshal(o.Output)
	}
	type plain EpisodesOutput
	return json.Marshal(plain(o))
}

type CreateEpisodeOutput struct {
	output.Output
	ID uint `json:"id,omitempty"`
}

type EpisodeOutput struct {
	output.Output
	Episode *models.Episode `json:"episode,omitempty"`
}
