package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// GetPodcast returns a podcast with its episodes
// @Summary      Get podcast
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} podcasts.PodcastOutput
// @Failure      400 {object} types.ErrorResponse "Invalid id"
// @Failure      404 {object} types.ErrorResponse "Podcast with id {id} not found"
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		types.Respond(c, deps.PodcastService.GetPodcast(c.Request.Context(), id))
	}
}
