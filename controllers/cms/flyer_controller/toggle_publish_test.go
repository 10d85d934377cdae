package flyer_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlyerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/v1/product-flyers/:id/publish", TogglePublish)
	return r
}

func patchPublish(t *testing.T, router *gin.Engine, id string, isPublished bool) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"isPublished": isPublished})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/product-flyers/"+id+"/publish", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTogglePublishRefusesIneligibleFlyer(t *testing.T) {
	var patchCalls atomic.Int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patchCalls.Add(1)
			w.Write([]byte(`{"data":{"flyer":{"id":"f1","isPublished":true}}}`))
			return
		}
		// Fresh snapshot: active but empty, so products block first.
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isActive":true,"totalProducts":0,"coverImage":""}}}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := patchPublish(t, newFlyerRouter(), "f1", true)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, patchCalls.Load(), "ineligible flyer must never reach the backend")

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "Flyer must have products to publish", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "eligibility")
	checklist, ok := data["checklist"].([]any)
	require.True(t, ok)
	assert.Len(t, checklist, 3)
}

func TestTogglePublishRelaysEligibleFlyer(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.Write([]byte(`{"data":{"flyer":{"id":"f1","isPublished":true,"coverImage":"uploads/cover.jpg"}},"message":"Flyer published"}`))
			return
		}
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isActive":true,"totalProducts":3,"coverImage":"uploads/cover.jpg"}}}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := patchPublish(t, newFlyerRouter(), "f1", true)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string           `json:"message"`
		Data    models.FlyerData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Flyer published", resp.Message)
	assert.True(t, resp.Data.Flyer.IsPublished)
	// Image paths leave the gateway through the proxy route.
	assert.Equal(t, "/api/images/uploads/cover.jpg", resp.Data.Flyer.CoverImage)
}

func TestTogglePublishUnpublishSkipsTheGate(t *testing.T) {
	var getCalls atomic.Int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			getCalls.Add(1)
		}
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isPublished":false}},"message":"Flyer unpublished"}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := patchPublish(t, newFlyerRouter(), "f1", false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, getCalls.Load(), "unpublishing must not fetch a snapshot")
}

func TestTogglePublishCoalescesConcurrentSubmissions(t *testing.T) {
	var patchCalls atomic.Int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		patchCalls.Add(1)
		// Hold the toggle open long enough for the duplicates to pile up.
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isPublished":false}}}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))
	router := newFlyerRouter()

	const submissions = 5
	codes := make([]int, submissions)

	var start, done sync.WaitGroup
	start.Add(1)
	for i := 0; i < submissions; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			w := patchPublish(t, router, "f1", false)
			codes[i] = w.Code
		}(i)
	}
	start.Done()
	done.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.LessOrEqual(t, patchCalls.Load(), int32(2), "duplicate submissions should share one upstream call")
}

func TestTogglePublishRejectsMissingFlag(t *testing.T) {
	require.NoError(t, services.InitUpstreamClient("http://backend.invalid"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/product-flyers/f1/publish", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	newFlyerRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
