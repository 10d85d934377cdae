package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound means the cookie referenced a session that expired
// or was cleared.
var ErrSessionNotFound = errors.New("session not found")

// SessionService stores admin sessions in redis. Each record pairs the
// upstream bearer token with the admin profile; redis TTL handles expiry
// so there is no cleanup job.
type SessionService struct{}

// NewSessionService creates a new session service
func NewSessionService() *SessionService {
	return &SessionService{}
}

func sessionKey(id string) string {
	return "session:" + id
}

// CreateSession stores a new session after a successful upstream login.
func (s *SessionService) CreateSession(
	ctx context.Context,
	user models.User,
	upstreamToken string,
	ipAddress string,
	userAgent string,
) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.Must(uuid.NewV7()).String(),
		User:      user,
		Token:     upstreamToken,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(config.SessionTTL),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	if err := config.RedisClient.Set(ctx, sessionKey(session.ID), payload, config.SessionTTL).Err(); err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for %s", session.ID, user.Email)
	return session, nil
}

// GetSession loads a session by id.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	payload, err := config.RedisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		log.Printf("[session] failed to load session %s: %v", id, err)
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// RefreshSession swaps in a freshly issued upstream token and restarts
// the TTL, so an active admin is never logged out mid-session.
func (s *SessionService) RefreshSession(ctx context.Context, id, upstreamToken string) (*models.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Token = upstreamToken
	session.ExpiresAt = time.Now().Add(config.SessionTTL)

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	if err := config.RedisClient.Set(ctx, sessionKey(id), payload, config.SessionTTL).Err(); err != nil {
		log.Printf("[session] failed to refresh session %s: %v", id, err)
		return nil, err
	}

	log.Printf("[session] refreshed session %s", id)
	return session, nil
}

// DeleteSession removes a session (logout, or upstream 401).
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	if err := config.RedisClient.Del(ctx, sessionKey(id)).Err(); err != nil {
		log.Printf("[session] failed to delete session %s: %v", id, err)
		return err
	}

	log.Printf("[session] deleted session %s", id)
	return nil
}

// Global instance
var sessionService *SessionService

// GetSessionService returns the global session service instance
func GetSessionService() *SessionService {
	if sessionService == nil {
		sessionService = NewSessionService()
	}
	return sessionService
}
