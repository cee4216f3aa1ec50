package version

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers version routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	handler := Get(deps)
	engine.GET("/", handler)
	engine.GET("/version", handler)
}
