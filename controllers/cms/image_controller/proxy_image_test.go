package image_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/images/*path", ProxyImage)
	return r
}

func TestProxyImageServesUpstreamBytes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads/flyers/cover.png", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer upstream.Close()

	config.BackendURL = upstream.URL
	defer func() { config.BackendURL = "" }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/images/uploads/flyers/cover.png", nil)
	newProxyRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000", w.Header().Get("Cache-Control"))
}

func TestProxyImageDefaultsContentTypeToJPEG(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No Content-Type at all.
		w.Header()["Content-Type"] = nil
		w.Write([]byte("raw"))
	}))
	defer upstream.Close()

	config.BackendURL = upstream.URL
	defer func() { config.BackendURL = "" }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/images/uploads/a.bin", nil)
	newProxyRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
}

func TestProxyImageWithoutBackendURL(t *testing.T) {
	config.BackendURL = ""

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/images/uploads/a.jpg", nil)
	newProxyRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Backend URL not configured", w.Body.String())
}

func TestProxyImageUpstreamFailureIs404(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	config.BackendURL = upstream.URL
	defer func() { config.BackendURL = "" }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/images/uploads/missing.jpg", nil)
	newProxyRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Image not found", w.Body.String())
}

func TestProxyImageTransportErrorIs500(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	config.BackendURL = upstream.URL
	defer func() { config.BackendURL = "" }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/images/uploads/a.jpg", nil)
	newProxyRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error fetching image", w.Body.String())
}
