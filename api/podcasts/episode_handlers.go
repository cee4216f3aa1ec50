package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	podcastService "github.com/killallgit/podcast-api/internal/services/podcasts"
)

func parseEpisodePath(c *gin.Context) (podcastID, episodeID uint, ok bool) {
	if podcastID, ok = types.ParseUintParam(c, "id"); !ok {
		return 0, 0, false
	}
	if episodeID, ok = types.ParseUintParam(c, "episodeId"); !ok {
		return 0, 0, false
	}
	return podcastID, episodeID, true
}

// CreateEpisode adds an episode to a podcast
// @Summary      Create episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        episode body podcasts.CreateEpisodeInput true "Episode fields"
// @Success      201 {object} podcasts.CreateEpisodeOutput
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id}/episodes [post]
func CreateEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input podcastService.CreateEpisodeInput
		if !types.BindJSONOrError(c, &input) {
			return
		}
		input.PodcastID = podcastID

		types.RespondCreated(c, deps.PodcastService.CreateEpisode(c.Request.Context(), input))
	}
}

// GetEpisode returns one episode of a podcast
// @Summary      Get episode
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        episodeId path int true "Episode ID" minimum(1)
// @Success      200 {object} podcasts.EpisodeOutput
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id}/episodes/{episodeId} [get]
func GetEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, episodeID, ok := parseEpisodePath(c)
		if !ok {
			return
		}
		types.Respond(c, deps.PodcastService.GetEpisode(c.Request.Context(), podcastID, episodeID))
	}
}

// UpdateEpisode applies a partial update to an episode
// @Summary      Update episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        episodeId path int true "Episode ID" minimum(1)
// @Param        payload body podcasts.EpisodePayload true "Fields to change"
// @Success      200 {object} output.Output
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id}/episodes/{episodeId} [patch]
func UpdateEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, episodeID, ok := parseEpisodePath(c)
		if !ok {
			return
		}

		var payload podcastService.EpisodePayload
		if !types.BindJSONOrError(c, &payload) {
			return
		}

		types.Respond(c, deps.PodcastService.UpdateEpisode(c.Request.Context(), podcastService.UpdateEpisodeInput{
			PodcastID: podcastID,
			EpisodeID: episodeID,
			Payload:   payload,
		}))
	}
}

// DeleteEpisode removes an episode from a podcast
// @Summary      Delete episode
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        episodeId path int true "Episode ID" minimum(1)
// @Success      200 {object} output.Output
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id}/episodes/{episodeId} [delete]
func DeleteEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, episodeID, ok := parseEpisodePath(c)
		if !ok {
			return
		}
		types.Respond(c, deps.PodcastService.DeleteEpisode(c.Request.Context(), podcastID, episodeID))
	}
}
