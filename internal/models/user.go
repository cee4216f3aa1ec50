package models

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRole is the account type of a user
type UserRole string

const (
	RoleHost     UserRole = "Host"
	RoleListener UserRole = "Listener"
)

// Valid reports whether r is a known role
func (r UserRole) Valid() bool {
	return r == RoleHost || r == RoleListener
}

// BcryptCost is the work factor used when hashing passwords on save
var BcryptCost = bcrypt.DefaultCost

// User represents an account that can log in
type User struct {
	Model
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Password string   `json:"-" gorm:"not null"`
	Role     UserRole `json:"role" gorm:"not null;default:Listener"`
	Verified bool     `json:"verified" gorm:"default:false"`

	// hash as last read from or written to the database
	storedHash string
}

// AfterFind remembers the stored hash so an unchanged password is not hashed twice
func (u *User) AfterFind(tx *gorm.DB) error {
	u.storedHash = u.Password
	return nil
}

// BeforeSave hashes the password unless it is the hash loaded with the user.
// Any other value is treated as plaintext, even one shaped like a bcrypt hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" || u.Password == u.storedHash {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), BcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.Password = string(hash)
	u.storedHash = u.Password
	return nil
}

// CheckPassword compares plain against the stored hash. A mismatch is
// reported as false with a nil error.
func (u *User) CheckPassword(plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("checking password: %w", err)
}
