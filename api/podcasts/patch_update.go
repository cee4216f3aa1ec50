package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	podcastService "github.com/killallgit/podcast-api/internal/services/podcasts"
)

// UpdatePodcast applies a partial update
// @Summary      Update podcast
// @Description  Fields left out of the body keep their value. Rating must be a whole number from 1 to 5.
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        payload body podcasts.PodcastPayload true "Fields to change"
// @Success      200 {object} output.Output
// @Failure      400 {object} types.ErrorResponse "Rating must be between 1 and 5."
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [patch]
func UpdatePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var payload podcastService.PodcastPayload
		if !types.BindJSONOrError(c, &payload) {
			return
		}

		types.Respond(c, deps.PodcastService.UpdatePodcast(c.Request.Context(), podcastService.UpdatePodcastInput{
			ID:      id,
			Payload: payload,
		}))
	}
}
