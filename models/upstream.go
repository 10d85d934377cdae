package models

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/gin-gonic/gin"
)

// Sentinel errors for the two upstream failure classes that controllers
// branch on. Everything else arrives as a *UpstreamError.
var (
	// ErrUnauthorized means the backend rejected the bearer token. The
	// session is unrecoverable in place: clear it and make the dashboard
	// log in again.
	ErrUnauthorized = errors.New("upstream rejected credentials")

	// ErrMalformedResponse means a 2xx reply did not carry the canonical
	// {data: ...} envelope. The relay fails loudly instead of guessing at
	// alternate shapes.
	ErrMalformedResponse = errors.New("unexpected backend response shape")
)

// FieldError mirrors one entry of the backend's validation detail list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// UpstreamError is a non-2xx reply from the catalog backend, carrying the
// backend's own message verbatim so the dashboard can surface it.
type UpstreamError struct {
	Status  int
	Message string
	Details []FieldError
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) work for 401 replies.
func (e *UpstreamError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// UpstreamFailure converts a relay error into the status and envelope to
// send back. A 401 also clears the session cookie so the dashboard
// redirects to login; upstream messages pass through verbatim, transport
// and shape problems collapse to a 502.
func UpstreamFailure(c *gin.Context, err error) (int, ApiResponse) {
	if errors.Is(err, ErrUnauthorized) {
		clearSessionCookie(c)
		msg := "Session expired, please log in again"
		var ue *UpstreamError
		if errors.As(err, &ue) && ue.Message != "" {
			msg = ue.Message
		}
		return http.StatusUnauthorized, ErrorResponse(c, msg)
	}

	var ue *UpstreamError
	if errors.As(err, &ue) {
		resp := ErrorResponse(c, ue.Message)
		if len(ue.Details) > 0 {
			resp.Data = gin.H{"details": ue.Details}
		}
		return ue.Status, resp
	}

	if errors.Is(err, ErrMalformedResponse) {
		return http.StatusBadGateway, ErrorResponse(c, "Unexpected backend response")
	}

	return http.StatusBadGateway, ErrorResponse(c, "Backend unreachable")
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", false, true)
}
