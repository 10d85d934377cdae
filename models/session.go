package models

import "time"

// Session is the gateway's redis-backed record of a logged-in admin:
// the upstream bearer token plus the profile the dashboard shows. The
// token never reaches the browser; the cookie only carries the session id.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	Token     string    `json:"token"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
