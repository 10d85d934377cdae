package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
)

// UpstreamClient relays dashboard calls to the catalog backend's REST
// API. It is the single place that understands the backend's envelope:
// successes arrive as {data: {...}, message}, failures as
// {message, details: [{field, message, value}]}. Anything else on a 2xx
// is a shape error and fails loudly.
type UpstreamClient struct {
	baseURL string
	http    *http.Client
}

var upstreamClient *UpstreamClient

// InitUpstreamClient wires the global client against the configured
// backend origin.
func InitUpstreamClient(backendURL string) error {
	if backendURL == "" {
		return errors.New("backend URL cannot be empty")
	}
	upstreamClient = NewUpstreamClient(backendURL)
	return nil
}

// GetUpstreamClient returns the global client instance.
func GetUpstreamClient() *UpstreamClient {
	return upstreamClient
}

// NewUpstreamClient builds a client for the given backend origin. The
// backend mounts its API under /api.
func NewUpstreamClient(backendURL string) *UpstreamClient {
	return &UpstreamClient{
		baseURL: strings.TrimRight(backendURL, "/") + "/api",
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type upstreamEnvelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Details []models.FieldError `json:"details"`
}

// GetJSON fetches path with the optional query and decodes the envelope's
// data into out.
func (uc *UpstreamClient) GetJSON(ctx context.Context, path string, query url.Values, token string, out any) error {
	env, err := uc.do(ctx, http.MethodGet, path, query, token, nil, "")
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

// SendJSON relays a JSON mutation and decodes the returned entity into
// out (which may be nil for fire-and-forget calls like logout). The
// backend's success message is returned for the dashboard to display.
func (uc *UpstreamClient) SendJSON(ctx context.Context, method, path, token string, body, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	env, err := uc.do(ctx, method, path, nil, token, reader, "application/json")
	if err != nil {
		return "", err
	}
	if out != nil {
		if err := decodeData(env, out); err != nil {
			return "", err
		}
	}
	return env.Message, nil
}

// SendRaw relays a pre-built body (multipart upload bodies) unchanged.
func (uc *UpstreamClient) SendRaw(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) (string, error) {
	env, err := uc.do(ctx, method, path, nil, token, body, contentType)
	if err != nil {
		return "", err
	}
	if out != nil {
		if err := decodeData(env, out); err != nil {
			return "", err
		}
	}
	return env.Message, nil
}

func (uc *UpstreamClient) do(ctx context.Context, method, path string, query url.Values, token string, body io.Reader, contentType string) (*upstreamEnvelope, error) {
	target := uc.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	if contentType != "" && body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := uc.http.Do(req)
	if err != nil {
		log.Printf("[upstream] %s %s transport error: %v", method, path, err)
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	var env upstreamEnvelope
	if len(raw) > 0 {
		// Tolerate an unreadable body only on failures, where the
		// status code alone is still actionable.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 400 {
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
		}
	}

	if resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &models.UpstreamError{
			Status:  resp.StatusCode,
			Message: msg,
			Details: env.Details,
		}
	}

	return &env, nil
}

func decodeData(env *upstreamEnvelope, out any) error {
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: missing data field", models.ErrMalformedResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}
	return nil
}
