package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// DeletePodcast removes a podcast and its episodes
// @Summary      Delete podcast
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} output.Output
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		types.Respond(c, deps.PodcastService.DeletePodcast(c.Request.Context(), id))
	}
}
