package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/internal/models"
	authService "github.com/killallgit/podcast-api/internal/services/auth"
	"github.com/killallgit/podcast-api/internal/services/output"
	"github.com/killallgit/podcast-api/internal/services/users"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsers serves FindByID from a map
type fakeUsers struct {
	users.UserService
	byID   map[uint]*models.User
	broken bool
}

func (f *fakeUsers) FindByID(ctx context.Context, id uint) users.UserOutput {
	if f.broken {
		return users.UserOutput{Output: output.Fail(apperrors.ErrCodeInternal, output.InternalErrorMessage)}
	}
	user, ok := f.byID[id]
	if !ok {
		return users.UserOutput{Output: output.NotFound("User", id)}
	}
	return users.UserOutput{Output: output.Success(), User: user}
}

func setupTestRouter(t *testing.T, svc *fakeUsers) (*gin.Engine, *authService.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := authService.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	h := NewHandler(issuer, svc)
	router := gin.New()
	router.GET("/me", h.AuthMiddleware(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.POST("/hosts-only", h.AuthMiddleware(), h.RequireRole(models.RoleHost), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, issuer
}

func newUser(id uint, role models.UserRole) *models.User {
	u := &models.User{Email: "u@example.com", Role: role}
	u.ID = id
	return u
}

func TestAuthMiddleware(t *testing.T) {
	svc := &fakeUsers{byID: map[uint]*models.User{1: newUser(1, models.RoleListener)}}
	router, issuer := setupTestRouter(t, svc)

	valid, err := issuer.Sign(1)
	require.NoError(t, err)
	orphan, err := issuer.Sign(99)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"deleted user", "Bearer " + orphan, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), "u@example.com")
			}
		})
	}
}

func TestAuthMiddleware_LookupFault(t *testing.T) {
	router, issuer := setupTestRouter(t, &fakeUsers{broken: true})

	token, err := issuer.Sign(1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), output.InternalErrorMessage)
}

func TestRequireRole(t *testing.T) {
	svc := &fakeUsers{byID: map[uint]*models.User{
		1: newUser(1, models.RoleListener),
		2: newUser(2, models.RoleHost),
	}}
	router, issuer := setupTestRouter(t, svc)

	listener, err := issuer.Sign(1)
	require.NoError(t, err)
	host, err := issuer.Sign(2)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hosts-only", nil)
	req.Header.Set("Authorization", "Bearer "+listener)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/hosts-only", nil)
	req.Header.Set("Authorization", "Bearer "+host)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	c.Set(ContextUser, newUser(3, models.RoleHost))
	user, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, uint(3), user.ID)
}
