package podcasts

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/output"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	UpdatePodcast(ctx context.Context, podcast *models.Podcast) error
	DeletePodcast(ctx context.Context, id uint) error
}

// EpisodeRepository defines the data access interface for episodes. Episodes
// are always read through their parent podcast.
type EpisodeRepository interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	UpdateEpisode(ctx context.Context, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, id uint) error
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	GetAllPodcasts(ctx context.Context) GetAllPodcastsOutput
	CreatePodcast(ctx context.Context, input CreatePodcastInput) CreatePodcastOutput
	GetPodcast(ctx context.Context, id uint) PodcastOutput
	UpdatePodcast(ctx context.Context, input UpdatePodcastInput) output.Output
	DeletePodcast(ctx context.Context, id uint) output.Output

	GetEpisodes(ctx context.Context, podcastID uint) EpisodesOutput
	CreateEpisode(ctx context.Context, input CreateEpisodeInput) CreateEpisodeOutput
	GetEpisode(ctx context.Context, podcastID, episodeID uint) EpisodeOutput
	UpdateEpisode(ctx context.Context, input UpdateEpisodeInput) output.Output
	DeleteEpisode(ctx context.Context, podcastID, episodeID uint) output.Output
}
