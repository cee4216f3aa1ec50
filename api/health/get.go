package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		response := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		db := getDatabaseStatus(deps)
		if db["connected"] == false && db["status"] != "not configured" {
			status = http.StatusServiceUnavailable
			response["status"] = "unhealthy"
		}
		response["database"] = db

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured", "connected": false}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "error", "connected": false, "error": err.Error()}
	}

	return gin.H{"status": "connected", "connected": true}
}
