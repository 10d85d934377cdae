package flyer_controller

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

func newFlyerProductsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/product-flyers/:id/products", GetFlyerProducts)
	r.GET("/api/v1/product-flyers/:id/products/page/:page", GetFlyerProductByPage)
	return r
}

func TestGetFlyerProductsSortsByPageNumber(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/product-flyers/f1/products", r.URL.Path)
		w.Write([]byte(`{"data":{"products":[
			{"id":"p3","pageNumber":3},
			{"id":"p1","pageNumber":1},
			{"id":"p2","pageNumber":2}
		]}}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/product-flyers/f1/products", nil)
	newFlyerProductsRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "p1", resp.Data[0].ID)
	assert.Equal(t, "p2", resp.Data[1].ID)
	assert.Equal(t, "p3", resp.Data[2].ID)
}

func TestGetFlyerProductByPageUpstreamPath(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The backend has no /page/ segment on this lookup.
		assert.Equal(t, "/api/product-flyers/f1/products/3", r.URL.Path)
		w.Write([]byte(`{"data":{"product":{"id":"p3","pageNumber":3,"image":"uploads/p3.jpg"}}}`))
	}))
	defer upstream.Close()

	require.NoError(t, services.InitUpstreamClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/product-flyers/f1/products/page/3", nil)
	newFlyerProductsRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.ProductData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "p3", resp.Data.Product.ID)
	assert.Equal(t, "/api/images/uploads/p3.jpg", resp.Data.Product.Image)
}
