package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers podcast and episode routes. writeMiddleware guards
// every mutating route.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, writeMiddleware ...gin.HandlerFunc) {
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), h)
	}

	router.GET("", GetAllPodcasts(deps))
	router.POST("", write(CreatePodcast(deps))...)
	router.GET("/:id", GetPodcast(deps))
	router.PATCH("/:id", write(UpdatePodcast(deps))...)
	router.DELETE("/:id", write(DeletePodcast(deps))...)

	router.GET("/:id/episodes", GetEpisodes(deps))
	router.POST("/:id/episodes", write(CreateEpisode(deps))...)
	router.GET("/:id/episodes/:episodeId", GetEpisode(deps))
	router.PATCH("/:id/episodes/:episodeId", write(UpdateEpisode(deps))...)
	router.DELETE("/:id/episodes/:episodeId", write(DeleteEpisode(deps))...)
}
