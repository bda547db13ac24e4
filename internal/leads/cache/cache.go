// Package cache provides a short-TTL redis snapshot cache for origin fetch
// results. It keeps rapid filter changes from fanning out to the origin
// endpoints on every keystroke. Cache failures are never fatal: a miss or a
// redis error simply falls through to a live fetch.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "leaddesk:snapshot:"

// Snapshot caches normalized per-origin lead collections.
type Snapshot struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New creates a snapshot cache. A nil redis client disables caching, which
// keeps the composition root free of conditionals.
func New(client *redis.Client, ttl time.Duration, log *logger.Logger) *Snapshot {
	return &Snapshot{client: client, ttl: ttl, log: log}
}

// Get returns the cached collection for key, if present.
func (s *Snapshot) Get(ctx context.Context, key string) ([]domain.Lead, bool) {
	if s.client == nil {
		return nil, false
	}

	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("snapshot cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var leads []domain.Lead
	if err := json.Unmarshal(raw, &leads); err != nil {
		s.log.Warn("snapshot cache payload corrupt", "key", key, "error", err)
		return nil, false
	}
	return leads, true
}

// Set stores a collection under key with the configured TTL.
func (s *Snapshot) Set(ctx context.Context, key string, leads []domain.Lead) {
	if s.client == nil {
		return
	}

	raw, err := json.Marshal(leads)
	if err != nil {
		return
	}

	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		s.log.Warn("snapshot cache write failed", "key", key, "error", err)
	}
}

// InvalidateAll drops every cached snapshot. Called after a status mutation
// so the coupled refresh re-reads the authoritative records.
func (s *Snapshot) InvalidateAll(ctx context.Context) {
	if s.client == nil {
		return
	}

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Warn("snapshot cache invalidation failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("snapshot cache scan failed", "error", err)
	}
}
