package podcasts

import (
	"context"
	"errors"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/output"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

type Service struct {
	podcasts PodcastRepository
	episodes EpisodeRepository
	logger   output.Logger
}

func NewService(podcasts PodcastRepository, episodes EpisodeRepository, logger output.Logger) *Service {
	return &Service{
		podcasts: podcasts,
		episodes: episodes,
		logger:   logger,
	}
}

// GetAllPodcasts lists the whole catalog without episodes
func (s *Service) GetAllPodcasts(ctx context.Context) (out GetAllPodcastsOutput) {
	defer output.Recover(s.logger, "GetAllPodcasts", &out)

	podcasts, err := s.podcasts.ListPodcasts(ctx)
	if err != nil {
		out.Output = output.Internal(s.logger, "GetAllPodcasts", err)
		return out
	}
	if podcasts == nil {
		podcasts = []models.Podcast{}
	}

	out.Output = output.Success()
	out.Podcasts = podcasts
	return out
}

// CreatePodcast stores a new podcast with no rating
func (s *Service) CreatePodcast(ctx context.Context, input CreatePodcastInput) (out CreatePodcastOutput) {
	defer output.Recover(s.logger, "CreatePodcast", &out)

	podcast := &models.Podcast{
		Title:    input.Title,
		Category: input.Category,
	}
	if err := s.podcasts.CreatePodcast(ctx, podcast); err != nil {
		out.Output = output.Internal(s.logger, "CreatePodcast", err)
		return out
	}

	out.Output = output.Success()
	out.ID = podcast.ID
	return out
}

// GetPodcast loads a podcast and its episodes
func (s *Service) GetPodcast(ctx context.Context, id uint) (out PodcastOutput) {
	defer output.Recover(s.logger, "GetPodcast", &out)

	podcast, err := s.podcasts.GetPodcastByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		out.Output = output.NotFound("Podcast", id)
		return out
	}
	if err != nil {
		out.Output = output.Internal(s.logger, "GetPodcast", err, "podcast_id", id)
		return out
	}

	out.Output = output.Success()
	out.Podcast = podcast
	return out
}

// UpdatePodcast merges the payload onto the stored podcast. A rating outside
// 1..5 is rejected before anything is written.
func (s *Service) UpdatePodcast(ctx context.Context, input UpdatePodcastInput) (out output.Output) {
	defer output.Recover(s.logger, "UpdatePodcast", &out)

	found := s.GetPodcast(ctx, input.ID)
	if !found.OK {
		return found.Output
	}

	podcast := found.Podcast
	if input.Payload.Title != nil {
		podcast.Title = *input.Payload.Title
	}
	if input.Payload.Category != nil {
		podcast.Category = *input.Payload.Category
	}
	if input.Payload.Rating != nil {
		if err := models.ValidateRating(*input.Payload.Rating); err != nil {
			return output.Fail(apperrors.ErrCodeValidation, err.Error())
		}
		podcast.Rating = int(*input.Payload.Rating)
	}

	if err := s.podcasts.UpdatePodcast(ctx, podcast); err != nil {
		return output.Internal(s.logger, "UpdatePodcast", err, "podcast_id", input.ID)
	}
	return output.Success()
}

// DeletePodcast removes a podcast together with its episodes
func (s *Service) DeletePodcast(ctx context.Context, id uint) (out output.Output) {
	defer output.Recover(s.logger, "DeletePodcast", &out)

	found := s.GetPodcast(ctx, id)
	if !found.OK {
		return found.Output
	}

	if err := s.podcasts.DeletePodcast(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return output.NotFound("Podcast", id)
		}
		return output.Internal(s.logger, "DeletePodcast", err, "podcast_id", id)
	}
	return output.Success()
}

// GetEpisodes returns the episodes of a podcast, never nil on success
func (s *Service) GetEpisodes(ctx context.Context, podcastID uint) (out EpisodesOutput) {
	defer output.Recover(s.logger, "GetEpisodes", &out)

	found := s.GetPodcast(ctx, podcastID)
	if !found.OK {
		out.Output = found.Output
		return out
	}

	episodes := found.Podcast.Episodes
	if episodes == nil {
		episodes = []models.Episode{}
	}

	out.Output = output.Success()
	out.Episodes = episodes
	return out
}

// CreateEpisode adds an episode to an existing podcast
func (s *Service) CreateEpisode(ctx context.Context, input CreateEpisodeInput) (out CreateEpisodeOutput) {
	defer output.Recover(s.logger, "CreateEpisode", &out)

	found := s.GetPodcast(ctx, input.PodcastID)
	if !found.OK {
		out.Output = found.Output
		return out
	}

	episode := &models.Episode{
		PodcastID: found.Podcast.ID,
		Title:     input.Title,
		Category:  input.Category,
	}
	if err := s.episodes.CreateEpisode(ctx, episode); err != nil {
		out.Output = output.Internal(s.logger, "CreateEpisode", err, "podcast_id", input.PodcastID)
		return out
	}

	out.Output = output.Success()
	out.ID = episode.ID
	return out
}

// GetEpisode resolves an episode through its parent podcast
func (s *Service) GetEpisode(ctx context.Context, podcastID, episodeID uint) (out EpisodeOutput) {
	defer output.Recover(s.logger, "GetEpisode", &out)

	found := s.GetPodcast(ctx, podcastID)
	if !found.OK {
		out.Output = found.Output
		return out
	}

	for i := range found.Podcast.Episodes {
		if found.Podcast.Episodes[i].ID == episodeID {
			out.Output = output.Success()
			out.Episode = &found.Podcast.Episodes[i]
			return out
		}
	}

	out.Output = output.NotFound("Episode", episodeID)
	return out
}

// UpdateEpisode merges the payload onto an episode of the podcast
func (s *Service) UpdateEpisode(ctx context.Context, input UpdateEpisodeInput) (out output.Output) {
	defer output.Recover(s.logger, "UpdateEpisode", &out)

	found := s.GetEpisode(ctx, input.PodcastID, input.EpisodeID)
	if !found.OK {
		return found.Output
	}

	episode := found.Episode
	if input.Payload.Title != nil {
		episode.Title = *input.Payload.Title
	}
	if input.Payload.Category != nil {
		episode.Category = *input.Payload.Category
	}

	if err := s.episodes.UpdateEpisode(ctx, episode); err != nil {
		return output.Internal(s.logger, "UpdateEpisode", err, "episode_id", input.EpisodeID)
	}
	return output.Success()
}

// DeleteEpisode removes an episode of the podcast
func (s *Service) DeleteEpisode(ctx context.Context, podcastID, episodeID uint) (out output.Output) {
	defer output.Recover(s.logger, "DeleteEpisode", &out)

	found := s.GetEpisode(ctx, podcastID, episodeID)
	if !found.OK {
		return found.Output
	}

	if err := s.episodes.DeleteEpisode(ctx, episodeID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return output.NotFound("Episode", episodeID)
		}
		return output.Internal(s.logger, "DeleteEpisode", err, "episode_id", episodeID)
	}
	return output.Success()
}

var _ PodcastService = (*Service)(nil)
