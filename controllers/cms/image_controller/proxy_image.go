package image_controller

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/gin-gonic/gin"
)

// The proxy keeps its own client: image fetches may be slower than API
// calls and must not share the relay's timeout.
var proxyClient = &http.Client{Timeout: 30 * time.Second}

// ProxyImage godoc
// @Summary Relay an image from the backend store
// @Description Fetch image bytes from the backend origin and serve them same-origin so the browser avoids CORS. Responses are cacheable for a year.
// @Tags Images
// @Produce octet-stream
// @Param path path string true "Image path on the backend"
// @Success 200 {file} binary
// @Failure 404 {string} string "Image not found"
// @Failure 500 {string} string "Backend URL not configured"
// @Router /api/images/{path} [get]
func ProxyImage(c *gin.Context) {
	imagePath := strings.TrimPrefix(c.Param("path"), "/")

	if config.BackendURL == "" {
		c.String(http.StatusInternalServerError, "Backend URL not configured")
		return
	}

	upstreamURL := strings.TrimRight(config.BackendURL, "/") + "/" + imagePath

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, upstreamURL, nil)
	if err != nil {
		log.Printf("[images] bad upstream URL %q: %v", upstreamURL, err)
		c.String(http.StatusInternalServerError, "Error fetching image")
		return
	}

	resp, err := proxyClient.Do(req)
	if err != nil {
		log.Printf("[images] error fetching %s: %v", imagePath, err)
		c.String(http.StatusInternalServerError, "Error fetching image")
		return
	}
	defer resp.Body.Close()

	// Any upstream failure collapses to a plain 404; the original status
	// is not interesting to an <img> tag.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.String(http.StatusNotFound, "Image not found")
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[images] error reading %s: %v", imagePath, err)
		c.String(http.StatusInternalServerError, "Error fetching image")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, contentType, body)
}
