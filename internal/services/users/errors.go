package users

import "errors"

// Messages returned to callers for expected failures
const (
	MsgEmailTaken    = "There is a user with that email already"
	MsgUserNotFound  = "User not found"
	MsgWrongPassword = "Wrong password"
	MsgInvalidRole   = "Role must be Host or Listener"
)

var (
	// ErrNotFound is returned by the repository when a user does not exist
	ErrNotFound = errors.New("user not found")
)
