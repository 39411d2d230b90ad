package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"servana/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "bookingDraft:"

// DraftTTL is how long an untouched draft survives between flow steps.
// Every save refreshes it.
const DraftTTL = 30 * time.Minute

// DraftStore persists in-progress booking drafts between flow steps.
type DraftStore interface {
	Save(sessionID string, draft *models.BookingDraft) error
	// Get returns ErrDraftNotFound when the session is missing or expired.
	Get(sessionID string) (*models.BookingDraft, error)
	Delete(sessionID string) error
}

// RedisDraftStore implements DraftStore on a dedicated Redis DB.
type RedisDraftStore struct {
	Client *redis.Client
}

// NewRedisDraftStore creates a DraftStore backed by the given Redis client.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client}
}

// Save marshals the draft and stores it under its session ID with the TTL.
func (s *RedisDraftStore) Save(sessionID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, draftKeyPrefix+sessionID, data, DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

// Get retrieves and unmarshals the draft for a session.
func (s *RedisDraftStore) Get(sessionID string) (*models.BookingDraft, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, draftKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

// Delete removes the draft for a session.
func (s *RedisDraftStore) Delete(sessionID string) error {
	ctx := context.Background()
	if err := s.Client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}
