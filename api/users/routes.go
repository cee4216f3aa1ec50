package users

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers account routes. authMiddleware must resolve the
// current user for the profile routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, authMiddleware gin.HandlerFunc) {
	router.POST("", CreateAccount(deps))
	router.POST("/login", Login(deps))

	router.GET("/me", authMiddleware, Me(deps))
	router.PATCH("/me", authMiddleware, EditProfile(deps))
	router.DELETE("/me", authMiddleware, DeleteAccount(deps))
	router.GET("/:id", authMiddleware, GetProfile(deps))
}
