package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Gateway configuration, loaded once at startup from the environment.
// BACKEND_URL is the single upstream origin used both by the REST relay
// and the image proxy.
var (
	BackendURL string

	Port string

	// JWTSecret signs the session cookie.
	JWTSecret string

	// MaxUploadMB caps accepted image uploads, in mebibytes.
	MaxUploadMB int64

	// SessionTTL is how long a gateway session stays valid in redis.
	SessionTTL = 24 * time.Hour
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "fg_session"

func InitConfig() {
	BackendURL = os.Getenv("BACKEND_URL")
	if BackendURL == "" {
		log.Println("⚠️ BACKEND_URL not set")
	}

	Port = getEnv("PORT", "8081")
	JWTSecret = os.Getenv("JWT_SECRET")

	maxMB, err := strconv.ParseInt(getEnv("MAX_UPLOAD_MB", "5"), 10, 64)
	if err != nil || maxMB < 1 {
		maxMB = 5
	}
	MaxUploadMB = maxMB
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
