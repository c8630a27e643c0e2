package dashcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/courtside/training-booking-backend/capacity"
)

const (
	capacityKeyPrefix = "capacity:"
	statsKeyPrefix    = "stats:"
	mirrorTTL         = 10 * time.Minute
)

// Cache mirrors capacity documents into Redis for a read-heavy dashboard and
// keeps coarse aggregate counters. It is never the source of truth: every
// method is fire-and-forget, and a nil *Cache (Redis not configured) is a
// no-op.
type Cache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func New(rdb *redis.Client) *Cache {
	return &Cache{
		rdb:    rdb,
		logger: slog.Default().With("component", "dashcache"),
	}
}

// Mirror writes the document through to Redis. Failures never reach the
// caller; the dashboard tolerates a stale or missing mirror.
func (c *Cache) Mirror(ctx context.Context, eventID string, doc capacity.CapacityDocument) {
	if c == nil || c.rdb == nil {
		return
	}

	payload, err := json.Marshal(doc)

	if err != nil {
		c.logger.Warn("failed to encode capacity mirror", "eventId", eventID, "err", err)
		return
	}

	if err := c.rdb.Set(ctx, capacityKeyPrefix+eventID, payload, mirrorTTL).Err(); err != nil {
		c.logger.Warn("failed to mirror capacity document", "eventId", eventID, "err", err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, eventID string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, capacityKeyPrefix+eventID).Err(); err != nil {
		c.logger.Warn("failed to invalidate capacity mirror", "eventId", eventID, "err", err)
	}
}

// RecordSale bumps the all-time and current-month revenue/registration
// counters. INCRBY is atomic per counter but the counters are not updated
// together transactionally; these are dashboard figures, not books of record.
func (c *Cache) RecordSale(ctx context.Context, amountPaid int64, playerCount int, when time.Time) {
	if c == nil || c.rdb == nil {
		return
	}

	month := monthKey(when)

	c.incr(ctx, statsKeyPrefix+"alltime:revenue", amountPaid)
	c.incr(ctx, statsKeyPrefix+"alltime:registrations", int64(playerCount))
	c.incr(ctx, statsKeyPrefix+month+":revenue", amountPaid)
	c.incr(ctx, statsKeyPrefix+month+":registrations", int64(playerCount))
}

func (c *Cache) incr(ctx context.Context, key string, delta int64) {
	if err := c.rdb.IncrBy(ctx, key, delta).Err(); err != nil {
		c.logger.Warn("failed to bump counter", "key", key, "err", err)
	}
}

func monthKey(when time.Time) string {
	return when.UTC().Format("2006-01")
}
