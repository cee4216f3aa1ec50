package users

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/output"
)

// UserRepository defines the data access interface for accounts
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uint) error
}

// TokenIssuer signs tokens for a user id
type TokenIssuer interface {
	Sign(subjectID uint) (string, error)
}

// UserService defines the account and login operations
type UserService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) output.Output
	Login(ctx context.Context, input LoginInput) LoginOutput
	FindByID(ctx context.Context, id uint) UserOutput
	EditProfile(ctx context.Context, userID uint, input EditProfileInput) output.Output
	DeleteAccount(ctx context.Context, userID uint) output.Output
}
