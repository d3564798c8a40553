// Package cache provides preview memoization for the CLI. Rendered layout
// previews are pure functions of the layout parameters, so repeated
// invocations with the same flags can reuse the stored frame.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores rendered previews keyed by their parameters.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PreviewKey derives the cache key for a rendered preview from everything
// that affects its output. Any parameter change produces a different key.
func PreviewKey(layoutName string, windows, width, height int, params ...any) string {
	return hashKey("preview", append([]any{layoutName, windows, width, height}, params...)...)
}

// hashKey generates a cache key of the form prefix:hash(parts...).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
