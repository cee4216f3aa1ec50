package users

import (
	"context"
	"errors"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/output"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

type Service struct {
	repository UserRepository
	issuer     TokenIssuer
	logger     output.Logger
}

func NewService(repository UserRepository, issuer TokenIssuer, logger output.Logger) *Service {
	return &Service{
		repository: repository,
		issuer:     issuer,
		logger:     logger,
	}
}

// CreateAccount registers a new user unless the email is already in use.
// An empty role defaults to Listener.
func (s *Service) CreateAccount(ctx context.Context, input CreateAccountInput) (out output.Output) {
	defer output.Recover(s.logger, "CreateAccount", &out)

	role := input.Role
	if role == "" {
		role = models.RoleListener
	}
	if !role.Valid() {
		return output.Fail(apperrors.ErrCodeInvalidInput, MsgInvalidRole)
	}

	_, err := s.repository.GetUserByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return output.Fail(apperrors.ErrCodeAlreadyExists, MsgEmailTaken)
	case !errors.Is(err, ErrNotFound):
		return output.Internal(s.logger, "CreateAccount", err)
	}

	user := &models.User{
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	}
	if err := s.repository.CreateUser(ctx, user); err != nil {
		return output.Internal(s.logger, "CreateAccount", err)
	}
	return output.Success()
}

// Login checks the credentials and issues a token for the user id
func (s *Service) Login(ctx context.Context, input LoginInput) (out LoginOutput) {
	defer output.Recover(s.logger, "Login", &out)

	user, err := s.repository.GetUserByEmail(ctx, input.Email)
	if errors.Is(err, ErrNotFound) {
		out.Output = output.Fail(apperrors.ErrCodeNotFound, MsgUserNotFound)
		return out
	}
	if err != nil {
		out.Output = output.Internal(s.logger, "Login", err)
		return out
	}

	ok, err := user.CheckPassword(input.Password)
	if err != nil {
		out.Output = output.Internal(s.logger, "Login", err, "user_id", user.ID)
		return out
	}
	if !ok {
		out.Output = output.Fail(apperrors.ErrCodeUnauthorized, MsgWrongPassword)
		return out
	}

	token, err := s.issuer.Sign(user.ID)
	if err != nil {
		out.Output = output.Internal(s.logger, "Login", err, "user_id", user.ID)
		return out
	}

	out.Output = output.Success()
	out.Token = token
	return out
}

// FindByID loads a user by id
func (s *Service) FindByID(ctx context.Context, id uint) (out UserOutput) {
	defer output.Recover(s.logger, "FindByID", &out)

	user, err := s.repository.GetUserByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		out.Output = output.NotFound("User", id)
		return out
	}
	if err != nil {
		out.Output = output.Internal(s.logger, "FindByID", err, "user_id", id)
		return out
	}

	out.Output = output.Success()
	out.User = user
	return out
}

// EditProfile changes the email and/or password. A new email must be free and
// resets the verification flag.
func (s *Service) EditProfile(ctx context.Context, userID uint, input EditProfileInput) (out output.Output) {
	defer output.Recover(s.logger, "EditProfile", &out)

	found := s.FindByID(ctx, userID)
	if !found.OK {
		return found.Output
	}
	user := found.User

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.repository.GetUserByEmail(ctx, *input.Email)
		switch {
		case err == nil && existing.ID != user.ID:
			return output.Fail(apperrors.ErrCodeAlreadyExists, MsgEmailTaken)
		case err != nil && !errors.Is(err, ErrNotFound):
			return output.Internal(s.logger, "EditProfile", err, "user_id", userID)
		}
		user.Email = *input.Email
		user.Verified = false
	}
	if input.Password != nil {
		user.Password = *input.Password
	}

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return output.Internal(s.logger, "EditProfile", err, "user_id", userID)
	}
	return output.Success()
}

// DeleteAccount removes the user
func (s *Service) DeleteAccount(ctx context.Context, userID uint) (out output.Output) {
	defer output.Recover(s.logger, "DeleteAccount", &out)

	found := s.FindByID(ctx, userID)
	if !found.OK {
		return found.Output
	}

	if err := s.repository.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return output.NotFound("User", userID)
		}
		return output.Internal(s.logger, "DeleteAccount", err, "user_id", userID)
	}
	return output.Success()
}

var _ UserService = (*Service)(nil)
