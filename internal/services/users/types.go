package users

import (
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/output"
)

type CreateAccountInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginOutput struct {
	output.Output
	Token string `json:"token,omitempty"`
}

type UserOutput struct {
	output.Output
	User *models.User `json:"user,omitempty"`
}

// EditProfileInput is a partial profile update. Nil fields are unchanged.
type EditProfileInput struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}
