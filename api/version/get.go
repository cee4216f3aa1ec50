package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// Get handles version requests
// @Summary      Version
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	var build types.BuildInfo
	if deps != nil {
		build = deps.Build
	}
	if build.Version == "" {
		build.Version = "dev"
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Podcast API",
			"version":     build.Version,
			"gitCommit":   build.GitCommit,
			"buildTime":   build.BuildTime,
			"description": "API for managing podcasts, episodes and listener accounts",
			"status":      "running",
		})
	}
}
