package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"pantry_chef/internal/recipes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerateRouter() *gin.Engine {
	r := gin.New()
	authed := r.Group("/")
	authed.Use(asUser(1, "alice"))
	authed.POST("/generate", GenerateHandler())
	authed.POST("/tts", TTSHandler())
	return r
}

func TestGenerateEndpointReturnsThreeRecipes(t *testing.T) {
	r := newGenerateRouter()

	w := performJSON(r, http.MethodPost, "/generate", `{"pantry":["egg",""," milk "],"diet":"vegan"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result []recipes.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 3)
	for _, rec := range result {
		assert.Contains(t, rec.Instructions, "egg,milk")
	}
}

func TestGenerateEndpointStringPantry(t *testing.T) {
	r := newGenerateRouter()

	w := performJSON(r, http.MethodPost, "/generate", `{"pantry":"rice, beans"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result []recipes.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 3)
	assert.Equal(t, "Creative Dish with rice,beans", result[0].Title)
}

func TestGenerateEndpointRejectsMalformedBody(t *testing.T) {
	r := newGenerateRouter()

	w := performJSON(r, http.MethodPost, "/generate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTTSEchoesText(t *testing.T) {
	r := newGenerateRouter()

	w := performJSON(r, http.MethodPost, "/tts", `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"hello"}`, w.Body.String())

	// An empty body echoes an empty string
	w = performJSON(r, http.MethodPost, "/tts", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":""}`, w.Body.String())
}
