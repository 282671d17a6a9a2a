package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter(backgroundsDir string) *gin.Engine {
	r := gin.New()
	authed := r.Group("/")
	authed.Use(asUser(1, "alice"))
	authed.GET("/news", NewsHandler())
	authed.GET("/background", BackgroundHandler(backgroundsDir))
	return r
}

func TestNewsEndpointReturnsThreeHeadlines(t *testing.T) {
	r := newContentRouter(t.TempDir())

	w := performJSON(r, http.MethodGet, "/news", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Headlines []string `json:"headlines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Headlines, 3)
}

func TestBackgroundEndpointReturnsLocalURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.jpg"), []byte("x"), 0o644))
	r := newContentRouter(dir)

	w := performJSON(r, http.MethodGet, "/background", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"/static/backgrounds/home.jpg"}`, w.Body.String())
}
