package wall

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DigestCache records wall digests in Redis so parallel self-play workers
// sharing a seed space can verify two processes derived the same wall
// without re-running the shuffle, per spec §9's replay-verification note.
// Adapted from the teacher's common/cache/redis.go connection-pool pattern,
// repurposed from session/presence storage to a small write-once digest
// ledger keyed by seed+salt.
type DigestCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDigestCache wraps an already-configured client; dialing is the CLI
// driver's concern.
func NewDigestCache(client *redis.Client, ttl time.Duration) *DigestCache {
	return &DigestCache{client: client, ttl: ttl}
}

func digestKey(seed int64, salt string) string {
	return "mahjongcore:wall_digest:" + strconv.FormatInt(seed, 10) + ":" + salt
}

// Record stores w's digest, first-write-wins: if a digest is already present
// under this seed+salt it is left untouched and matched reports whether the
// newly computed digest matched it (a mismatch means two workers built
// different walls from the same seed, a reproducibility violation).
func (c *DigestCache) Record(ctx context.Context, w *Wall) (matched bool, err error) {
	key := digestKey(w.Seed(), w.Salt())
	digest := w.Digest()
	set, err := c.client.SetNX(ctx, key, digest, c.ttl).Result()
	if err != nil {
		return false, err
	}
	if set {
		return true, nil
	}
	existing, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return existing == digest, nil
}
