package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// GetEpisodes returns the episodes of a podcast
// @Summary      List episodes
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} podcasts.EpisodesOutput
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		types.Respond(c, deps.PodcastService.GetEpisodes(c.Request.Context(), id))
	}
}
