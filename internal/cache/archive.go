// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// archive.go caches built ZIP archives in Valkey so repeated downloads of
// the same website skip packaging and minification. Keys carry the website
// fingerprint as well as its id, so a reused id never serves an older
// archive. Entries only expire by TTL.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// archiveKeyPrefix is the Valkey key prefix for cached archives.
	archiveKeyPrefix = "archive:"

	// DefaultArchiveTTL is how long a built archive stays cached.
	DefaultArchiveTTL = 1 * time.Hour
)

// ArchiveCache stores ZIP archives keyed by website id and fingerprint.
type ArchiveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewArchiveCache creates a new archive cache backed by the given Valkey client.
func NewArchiveCache(client *redis.Client, ttl time.Duration) *ArchiveCache {
	if ttl == 0 {
		ttl = DefaultArchiveTTL
	}
	return &ArchiveCache{client: client, ttl: ttl}
}

// ArchiveKey returns the cache key of a website archive, for example
// "archive:42:3f9a0c1b2d4e:min". Minified archives get their own key.
func ArchiveKey(id int64, fingerprint string, minified bool) string {
	key := archiveKeyPrefix + strconv.FormatInt(id, 10) + ":" + fingerprint
	if minified {
		key += ":min"
	}
	return key
}

// Get returns the cached archive. Errors are logged and reported as a miss.
func (ac *ArchiveCache) Get(ctx context.Context, id int64, fingerprint string, minified bool) ([]byte, bool) {
	key := ArchiveKey(id, fingerprint, minified)
	val, err := ac.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("archive cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("archive cache hit", "key", key)
	return val, true
}

// Set stores an archive with the configured TTL. Errors are logged only.
func (ac *ArchiveCache) Set(ctx context.Context, id int64, fingerprint string, minified bool, data []byte) {
	key := ArchiveKey(id, fingerprint, minified)
	if err := ac.client.Set(ctx, key, data, ac.ttl).Err(); err != nil {
		slog.Warn("archive cache set error", "key", key, "error", err)
	}
}
