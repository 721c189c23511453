package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	"github.com/BruksfildServices01/pantry-scheduler/internal/logger"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
	"github.com/BruksfildServices01/pantry-scheduler/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(issuer *auth.TokenIssuer, store session.Store, mustSignIn bool) *gin.Engine {
	r := gin.New()
	r.Use(Authenticate(issuer, store, logger.Discard()))
	if mustSignIn {
		r.Use(RequireAuth())
	}
	r.GET("/whoami", func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"signed_in": ok, "user_id": p.UserID})
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateOptionalPrincipal(t *testing.T) {
	issuer := auth.NewTokenIssuer("k", time.Hour)
	r := newAuthEngine(issuer, session.NewMemoryStore(), false)

	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signed_in":false,"user_id":0}`, w.Body.String())

	token, _, err := issuer.Issue(&models.User{ID: 3, Email: "a@b.org"})
	require.NoError(t, err)

	w = get(r, "/whoami", token)
	assert.JSONEq(t, `{"signed_in":true,"user_id":3}`, w.Body.String())

	w = get(r, "/whoami", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsRevoked(t *testing.T) {
	issuer := auth.NewTokenIssuer("k", time.Hour)
	store := session.NewMemoryStore()
	r := newAuthEngine(issuer, store, false)

	token, p, err := issuer.Issue(&models.User{ID: 3})
	require.NoError(t, err)
	require.NoError(t, store.Revoke(context.Background(), p.TokenID, time.Hour))

	w := get(r, "/whoami", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_revoked")
}

func TestRequireAuth(t *testing.T) {
	r := newAuthEngine(auth.NewTokenIssuer("k", time.Hour), session.NewMemoryStore(), true)

	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := get(r, "/", "")
	id := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRateLimiterPerIP(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(1, 2, logger.Discard()).Handler())
	r.POST("/users/sign_in", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/users/sign_in", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	req := httptest.NewRequest(http.MethodPost, "/users/sign_in", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/api/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/clients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, HeaderRequestID, w.Header().Get("Access-Control-Expose-Headers"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSAllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://pantry.example/"}))
	r.GET("/api/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := map[string]struct{ origin, credentials string }{
		"https://pantry.example": {"https://pantry.example", "true"},
		"https://evil.example":   {"", ""},
	}
	for origin, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want.origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
		assert.Equal(t, want.credentials, w.Header().Get("Access-Control-Allow-Credentials"), origin)
	}
}
