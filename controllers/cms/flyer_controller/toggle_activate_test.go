package flyer_controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/v1/product-flyers/:id/activate", ToggleActivate)
	return r
}

func patchActivate(t *testing.T, router *gin.Engine, id string, isActive bool) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"isActive": isActive})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/product-flyers/"+id+"/activate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestToggleActivateRelaysTargetState(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/product-flyers/f1/activate", r.URL.Path)
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"isActive":false}`, string(payload))
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isActive":false}},"message":"Flyer deactivated"}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := patchActivate(t, newActivateRouter(), "f1", false)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestToggleActivateOppositeDirectionsDoNotCoalesce(t *testing.T) {
	var patchCalls atomic.Int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		patchCalls.Add(1)
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isActive":true}}}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))
	router := newActivateRouter()

	var start, done sync.WaitGroup
	start.Add(1)
	codes := make([]int, 2)
	for i, target := range []bool{true, false} {
		done.Add(1)
		go func(i int, target bool) {
			defer done.Done()
			start.Wait()
			w := patchActivate(t, router, "f1", target)
			codes[i] = w.Code
		}(i, target)
	}
	start.Done()
	done.Wait()

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	// Each direction must make its own upstream call.
	assert.Equal(t, int32(2), patchCalls.Load())
}
