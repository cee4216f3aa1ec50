package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// GetAllPodcasts returns the whole catalog
// @Summary      List podcasts
// @Description  Retrieve every podcast in the catalog, without episodes.
// @Tags         podcasts
// @Produce      json
// @Success      200 {object} podcasts.GetAllPodcastsOutput
// @Failure      500 {object} types.ErrorResponse "Internal server error occurred."
// @Router       /api/v1/podcasts [get]
func GetAllPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.Respond(c, deps.PodcastService.GetAllPodcasts(c.Request.Context()))
	}
}
