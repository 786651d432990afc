// Package cache stores JSON-encoded query results with a TTL.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// Cache is a JSON value cache. A miss returns (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Key builds a stable key from prefix and params regardless of map order.
func Key(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}

	sum := md5.Sum([]byte(b.String()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
