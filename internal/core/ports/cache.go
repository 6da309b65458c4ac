package ports

import (
	"context"
	"time"
)

// ResponseCache memoizes computed response payloads under normalized keys.
// Implementations must be safe for concurrent use by in-flight requests.
// An entry is never served past its expiry; expired entries read as absent.
type ResponseCache interface {
	// Get unmarshals the cached payload for key into dest and reports
	// whether a live entry was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key, overwriting any existing entry, with
	// expiry now + ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
