package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"palmera/models"

	"github.com/go-redis/redis/v8"
)

// DraftRepository persists the in-progress booking draft between wizard
// steps. The draft is stored as an opaque JSON blob; the backend is an
// injected dependency so the engine stays a pure function of its inputs.
type DraftRepository interface {
	Load(ctx context.Context, draftID string) (*models.BookingDraft, error)
	Save(ctx context.Context, draft *models.BookingDraft) error
	Clear(ctx context.Context, draftID string) error
}

// RedisDraftRepository stores drafts in Redis with a sliding TTL, so an
// abandoned wizard session expires on its own.
type RedisDraftRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func draftKey(draftID string) string {
	return "draft:" + draftID
}

func (r *RedisDraftRepository) Load(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	data, err := r.Client.Get(ctx, draftKey(draftID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (r *RedisDraftRepository) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := r.Client.Set(ctx, draftKey(draft.DraftID), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (r *RedisDraftRepository) Clear(ctx context.Context, draftID string) error {
	if err := r.Client.Del(ctx, draftKey(draftID)).Err(); err != nil {
		return fmt.Errorf("failed to clear booking draft: %w", err)
	}
	return nil
}
