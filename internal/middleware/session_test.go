package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pantry_chef/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/")
	authed.Use(SessionAuthMiddleware(secret))
	authed.GET("/me", func(c *gin.Context) {
		username, _ := c.Get("username")
		c.String(http.StatusOK, "%v", username)
	})
	return r
}

func TestSessionMiddlewareRedirectsWithoutCookie(t *testing.T) {
	r := newGuardedRouter("secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionMiddlewarePassesValidCookie(t *testing.T) {
	r := newGuardedRouter("secret")

	token, err := utils.GenerateSessionToken(3, "carol", "secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "carol", w.Body.String())
}
