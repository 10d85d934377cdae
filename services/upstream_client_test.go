package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONDecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/product-flyers/f1", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","title":"Weekly deals","isActive":true,"totalProducts":4}},"message":"ok"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	var data models.FlyerData
	err := client.GetJSON(context.Background(), "/product-flyers/f1", nil, "tok-123", &data)
	require.NoError(t, err)

	assert.Equal(t, "f1", data.Flyer.ID)
	assert.Equal(t, "Weekly deals", data.Flyer.Title)
	assert.True(t, data.Flyer.IsActive)
	assert.Equal(t, 4, data.Flyer.TotalProducts)
}

func TestGetJSONRelaysQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":{"flyers":[]}}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("limit", "10")

	var data models.FlyerListData
	err := client.GetJSON(context.Background(), "/product-flyers", query, "", &data)
	require.NoError(t, err)
	assert.Empty(t, data.Flyers)
}

func TestSendJSONReturnsBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"flyer":{"id":"f1","isPublished":true}},"message":"Flyer published"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	var data models.FlyerData
	message, err := client.SendJSON(context.Background(), http.MethodPatch, "/product-flyers/f1/publish", "tok", map[string]bool{"isPublished": true}, &data)
	require.NoError(t, err)

	assert.Equal(t, "Flyer published", message)
	assert.True(t, data.Flyer.IsPublished)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	err := client.GetJSON(context.Background(), "/auth/profile", nil, "stale", &models.UserData{})
	require.Error(t, err)

	assert.True(t, errors.Is(err, models.ErrUnauthorized))

	var ue *models.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusUnauthorized, ue.Status)
	assert.Equal(t, "Token expired", ue.Message)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Validation failed","details":[{"field":"title","message":"Title is required"}]}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	_, err := client.SendJSON(context.Background(), http.MethodPost, "/product-flyers", "tok", map[string]string{}, nil)
	require.Error(t, err)

	var ue *models.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusBadRequest, ue.Status)
	assert.Equal(t, "Validation failed", ue.Message)
	require.Len(t, ue.Details, 1)
	assert.Equal(t, "title", ue.Details[0].Field)
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	err := client.GetJSON(context.Background(), "/categories", nil, "", &models.CategoryListData{})
	require.Error(t, err)

	var ue *models.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), ue.Message)
}

func TestSuccessWithoutDataIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok but no data"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	err := client.GetJSON(context.Background(), "/product-flyers/f1", nil, "", &models.FlyerData{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrMalformedResponse))
}

func TestSuccessWithNonJSONBodyIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not the API</html>`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	err := client.GetJSON(context.Background(), "/product-flyers/f1", nil, "", &models.FlyerData{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrMalformedResponse))
}

func TestTransportErrorIsNotUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewUpstreamClient(server.URL)

	err := client.GetJSON(context.Background(), "/product-flyers", nil, "", &models.FlyerListData{})
	require.Error(t, err)

	var ue *models.UpstreamError
	assert.False(t, errors.As(err, &ue))
	assert.False(t, errors.Is(err, models.ErrUnauthorized))
}

func TestSendJSONWithNilOutSkipsDataDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Logout-style reply: message only, no data field.
		w.Write([]byte(`{"message":"Logged out"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL)

	message, err := client.SendJSON(context.Background(), http.MethodPost, "/auth/logout", "tok", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Logged out", message)
}
