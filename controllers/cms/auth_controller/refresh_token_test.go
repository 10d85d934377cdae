package auth_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefreshRouter(upstreamToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/auth/refresh", func(c *gin.Context) {
		c.Set("upstreamToken", upstreamToken)
	}, RefreshToken)
	return r
}

func TestRefreshTokenRelaysToBackend(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)
		assert.Equal(t, "Bearer old-tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"user":{"id":"u1","email":"admin@fletushka.mk"},"token":"new-tok"},"message":"Token refreshed"}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	newRefreshRouter("old-tok").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string          `json:"message"`
		Data    models.AuthData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Token refreshed", resp.Message)
	assert.Equal(t, "new-tok", resp.Data.Token)
	assert.Equal(t, "admin@fletushka.mk", resp.Data.User.Email)
}

func TestRefreshTokenRelaysBackendRejection(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	newRefreshRouter("stale-tok").ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "Token expired", resp.Message)
}
