package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/auth"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/models"
	authService "github.com/killallgit/podcast-api/internal/services/auth"
	userService "github.com/killallgit/podcast-api/internal/services/users"
	"github.com/killallgit/podcast-api/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	models.BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { models.BcryptCost = bcrypt.DefaultCost })

	db, err := database.Initialize(filepath.Join(t.TempDir(), "users.db"), false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { db.Close() })

	issuer, err := authService.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	svc := userService.NewService(userService.NewRepository(db.DB), issuer, logging.Discard())
	deps := &types.Dependencies{DB: db, UserService: svc, Verifier: issuer}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/users"), deps, auth.NewHandler(issuer, svc).AuthMiddleware())
	return router
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/v1/users/login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out userService.LoginOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.True(t, out.OK)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestAccountFlow(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/users", `{"email":"bs@email.com","password":"bs.password","role":"Host"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/v1/users", `{"email":"bs@email.com","password":"other"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"There is a user with that email already"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/v1/users/login", `{"email":"bs@email.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Wrong password"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/v1/users/login", `{"email":"nobody@email.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"User not found"}`, w.Body.String())

	token := login(t, router, "bs@email.com", "bs.password")

	w = doRequest(router, http.MethodGet, "/api/v1/users/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"bs@email.com"`)
	assert.NotContains(t, w.Body.String(), "password")

	w = doRequest(router, http.MethodGet, "/api/v1/users/1", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodGet, "/api/v1/users/5", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"User with id 5 not found"}`, w.Body.String())

	w = doRequest(router, http.MethodPatch, "/api/v1/users/me", `{"password":"changed"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
	login(t, router, "bs@email.com", "changed")

	w = doRequest(router, http.MethodDelete, "/api/v1/users/me", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/users/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRoutesRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		w := doRequest(router, method, "/api/v1/users/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, method)
	}
}

func TestCreateAccount_Validation(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/users", `{"email":"not-an-email","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/users", `{"email":"a@b.co","password":"x","role":"Admin"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Role must be Host or Listener"}`, w.Body.String())
}
