package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// journalTTL caps how long a pending entry can linger. The reconciler should
// clear entries long before this; the TTL only guards against journal leaks.
const journalTTL = 24 * time.Hour

// Journal records in-flight dual-store writes in Redis.
// Key format: saga:<op>:<account_id>, value: begin time in RFC3339.
type Journal struct {
	client *redis.Client
}

// NewJournal creates a Journal wrapping the given Redis client.
func NewJournal(client *redis.Client) *Journal {
	return &Journal{client: client}
}

func (j *Journal) Begin(ctx context.Context, op, accountID string) error {
	key := j.key(op, accountID)
	if err := j.client.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), journalTTL).Err(); err != nil {
		return fmt.Errorf("journal begin: %w", err)
	}
	return nil
}

func (j *Journal) Clear(ctx context.Context, op, accountID string) error {
	if err := j.client.Del(ctx, j.key(op, accountID)).Err(); err != nil {
		return fmt.Errorf("journal clear: %w", err)
	}
	return nil
}

// Pending scans for entries of op begun before cutoff. Entries with a value
// that does not parse as a timestamp are treated as old, not skipped: losing
// a broken entry forever is worse than one extra reconciliation look.
func (j *Journal) Pending(ctx context.Context, op string, cutoff time.Time) ([]string, error) {
	pattern := fmt.Sprintf("saga:%s:*", op)
	prefix := fmt.Sprintf("saga:%s:", op)

	var ids []string
	iter := j.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := j.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue // cleared between scan and get
			}
			return nil, fmt.Errorf("journal read: %w", err)
		}
		begun, perr := time.Parse(time.RFC3339, val)
		if perr == nil && !begun.Before(cutoff) {
			continue
		}
		ids = append(ids, strings.TrimPrefix(key, prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("journal scan: %w", err)
	}
	return ids, nil
}

func (j *Journal) key(op, accountID string) string {
	return fmt.Sprintf("saga:%s:%s", op, accountID)
}

var _ ports.DualWriteJournal = (*Journal)(nil)
