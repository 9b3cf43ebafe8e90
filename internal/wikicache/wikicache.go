// Package wikicache looks up a cached Wikipedia background-image URL for a
// named entry, per spec.md §6.4: two GETs against a Redis-compatible
// key/value store, never surfacing a storage error to the caller.
package wikicache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Client wraps a pooled Redis connection. The underlying client is safe for
// concurrent use from multiple request goroutines without extra locking.
type Client struct {
	rdb *redis.Client
	log *slog.Logger
}

// New builds a Client from host/port/password/database settings.
func New(addr, password string, db int, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		log: log,
	}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error { return c.rdb.Close() }

// Background resolves the cached background-image URL for name. Any Redis
// error is logged and yields (nil, nil) — this is the "storage" error kind
// from spec.md §7: logged, surfaced as bg=null, never returned as an error
// to the HTTP layer. A cache miss (redis.Nil) also yields (nil, nil) but is
// not logged.
func (c *Client) Background(ctx context.Context, name string) (*string, error) {
	pageIDKey := fmt.Sprintf("cache:search:wiki:zh:%s", name)
	pageID, err := c.rdb.Get(ctx, pageIDKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("wiki cache lookup failed", "key", pageIDKey, "error", err)
		}
		return nil, nil
	}

	imgKey := fmt.Sprintf("img:wiki:zh:%s", pageID)
	bg, err := c.rdb.Get(ctx, imgKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("wiki cache lookup failed", "key", imgKey, "error", err)
		}
		return nil, nil
	}

	return &bg, nil
}
