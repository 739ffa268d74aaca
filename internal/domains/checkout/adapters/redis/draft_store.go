package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexashop/storefront/internal/domains/checkout/domain"
	"github.com/nexashop/storefront/internal/domains/checkout/ports"
)

var _ ports.DraftStore = (*DraftStore)(nil)

// DraftStore keeps shipping drafts in Redis. Drafts are short-lived working
// state, so they expire on their own if the visitor abandons checkout.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client, ttl: 24 * time.Hour}
}

func (s *DraftStore) Get(ctx context.Context, visitorID string) (*domain.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	var draft domain.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft failed: %w", err)
	}
	return &draft, nil
}

func (s *DraftStore) Save(ctx context.Context, visitorID string, draft *domain.Draft) error {
	blob, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft failed: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(visitorID), blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *DraftStore) Delete(ctx context.Context, visitorID string) error {
	if err := s.client.Del(ctx, draftKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func draftKey(visitorID string) string {
	return "checkout:draft:" + visitorID
}
