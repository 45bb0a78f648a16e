package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusharnayak1515/users-data-backend/internal/middleware"
	"github.com/tusharnayak1515/users-data-backend/internal/token"
)

func newProbeRouter(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewManager("test-secret")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/probe", middleware.Auth(tokens), func(c *gin.Context) {
		userID := c.MustGet(middleware.ContextUserKey).(uint)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router, tokens
}

func TestAuth_MissingHeader(t *testing.T) {
	router, _ := newProbeRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please authenticate using a valid token", body["error"])
}

func TestAuth_InvalidToken(t *testing.T) {
	router, _ := newProbeRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("user-auth-token", "garbage-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestAuth_WrongSecret(t *testing.T) {
	router, _ := newProbeRouter(t)

	foreign, err := token.NewManager("other-secret")
	require.NoError(t, err)
	signed, err := foreign.Issue(3)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("user-auth-token", signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	router, tokens := newProbeRouter(t)

	signed, err := tokens.Issue(42)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("user-auth-token", signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuth_HeaderNameIsCaseInsensitive(t *testing.T) {
	router, tokens := newProbeRouter(t)

	signed, err := tokens.Issue(8)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("User-Auth-Token", signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"user_id":%d`, 8))
}
