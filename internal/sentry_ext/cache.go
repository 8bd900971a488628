package sentry_ext

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	recentDuration   = 5 * time.Minute
	defaultCacheSize = 100
)

// cache remembers when each message was last sent.
type cache struct {
	*lru.Cache
	now func() time.Time
}

func newCache(size int) (*cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &cache{Cache: c, now: time.Now}, nil
}

// shouldCapture reports whether msg was not sent within recentDuration,
// and records it as sent if so.
func (c *cache) shouldCapture(msg string) bool {
	sum := md5.Sum([]byte(msg))
	key := hex.EncodeToString(sum[:])

	now := c.now()
	if last, ok := c.Get(key); ok && now.Sub(last.(time.Time)) < recentDuration {
		return false
	}
	c.Add(key, now)
	return true
}
