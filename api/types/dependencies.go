package types

import (
	"github.com/charmbracelet/log"
	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/services/auth"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	"github.com/killallgit/podcast-api/internal/services/users"
)

// TokenVerifier checks bearer tokens
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	PodcastService podcasts.PodcastService
	UserService    users.UserService
	Verifier       TokenVerifier
	Logger         *log.Logger
	Build          BuildInfo
}
