package cache

import "time"

// CacheService is the key/value store shared by the session store and the
// read-through caches of the usecases.
type CacheService interface {
	// Get returns the value and true, or nil and false when absent or expired
	Get(key string) (interface{}, bool)

	// Set stores a value for duration
	Set(key string, value interface{}, duration time.Duration)

	// ItemCount reports stored items, expired ones included until the janitor runs
	ItemCount() int
}
