package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	podcastService "github.com/killallgit/podcast-api/internal/services/podcasts"
)

// CreatePodcast adds a podcast to the catalog
// @Summary      Create podcast
// @Description  Create a podcast. Requires a Host account.
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        podcast body podcasts.CreatePodcastInput true "Podcast fields"
// @Success      201 {object} podcasts.CreatePodcastOutput
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      401 {object} types.ErrorResponse
// @Failure      403 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts [post]
func CreatePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input podcastService.CreatePodcastInput
		if !types.BindJSONOrError(c, &input) {
			return
		}
		types.RespondCreated(c, deps.PodcastService.CreatePodcast(c.Request.Context(), input))
	}
}
