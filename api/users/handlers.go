package users

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/auth"
	"github.com/killallgit/podcast-api/api/types"
	userService "github.com/killallgit/podcast-api/internal/services/users"
)

// CreateAccount registers a new account
// @Summary      Create account
// @Description  Role is Host or Listener and defaults to Listener.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        account body users.CreateAccountInput true "Account fields"
// @Success      201 {object} output.Output
// @Failure      400 {object} types.ErrorResponse
// @Failure      409 {object} types.ErrorResponse "There is a user with that email already"
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/users [post]
func CreateAccount(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input userService.CreateAccountInput
		if !types.BindJSONOrError(c, &input) {
			return
		}
		types.RespondCreated(c, deps.UserService.CreateAccount(c.Request.Context(), input))
	}
}

// Login exchanges credentials for a token
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body users.LoginInput true "Email and password"
// @Success      200 {object} users.LoginOutput
// @Failure      401 {object} types.ErrorResponse "Wrong password"
// @Failure      404 {object} types.ErrorResponse "User not found"
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/users/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input userService.LoginInput
		if !types.BindJSONOrError(c, &input) {
			return
		}
		types.Respond(c, deps.UserService.Login(c.Request.Context(), input))
	}
}

// Me returns the authenticated user
// @Summary      Current user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} users.UserOutput
// @Failure      401 {object} types.ErrorResponse
// @Router       /api/v1/users/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			types.SendUnauthorized(c, "Authentication required")
			return
		}
		types.Respond(c, deps.UserService.FindByID(c.Request.Context(), user.ID))
	}
}

// GetProfile returns a user by id
// @Summary      User profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID" minimum(1)
// @Success      200 {object} users.UserOutput
// @Failure      404 {object} types.ErrorResponse "User with id {id} not found"
// @Router       /api/v1/users/{id} [get]
func GetProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		types.Respond(c, deps.UserService.FindByID(c.Request.Context(), id))
	}
}

// EditProfile changes the authenticated user's email or password
// @Summary      Edit profile
// @Description  Changing the email clears the verified flag.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile body users.EditProfileInput true "Fields to change"
// @Success      200 {object} output.Output
// @Failure      409 {object} types.ErrorResponse "There is a user with that email already"
// @Router       /api/v1/users/me [patch]
func EditProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			types.SendUnauthorized(c, "Authentication required")
			return
		}

		var input userService.EditProfileInput
		if !types.BindJSONOrError(c, &input) {
			return
		}
		types.Respond(c, deps.UserService.EditProfile(c.Request.Context(), user.ID, input))
	}
}

// DeleteAccount removes the authenticated user's account
// @Summary      Delete account
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} output.Output
// @Router       /api/v1/users/me [delete]
func DeleteAccount(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			types.SendUnauthorized(c, "Authentication required")
			return
		}
		types.Respond(c, deps.UserService.DeleteAccount(c.Request.Context(), user.ID))
	}
}
