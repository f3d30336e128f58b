package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/karlseguin/ccache/v2"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/ratepulse/internal/obs"
)

// Default TTLs by data kind. Site access and property metadata rarely
// change; rate quotes are time-sensitive pricing.
const (
	SitesTTL = 24 * time.Hour
	RatesTTL = 30 * time.Minute
)

// Well-known keys for the single-resource lookups.
const (
	SiteAccessKey   = "siteAccess"
	PropertyInfoKey = "propertyInfo"
)

// Cache is a process-wide TTL cache bounding upstream API calls.
// Expiry is lazy: an expired entry is treated as a miss on read.
// Concurrent callers on the same cold key are collapsed into a single
// fetch; failed fetches are never cached, so the next call retries.
type Cache struct {
	store  *ccache.Cache
	flight singleflight.Group
}

// New creates a Cache. maxEntries bounds memory; the working set here
// is tiny (a handful of site lists and rate windows) so the default of
// 1000 is generous.
func New(maxEntries int64) *Cache {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &Cache{store: ccache.New(ccache.Configure().MaxSize(maxEntries))}
}

// GetOrFetch returns the cached value for key when present and
// unexpired, without invoking fetch. On a miss it invokes fetch, caches
// the result with the given TTL on success, and returns it. Fetch
// errors are returned uncached.
func (c *Cache) GetOrFetch(key string, ttl time.Duration, fetch func() (any, error)) (any, error) {
	if item := c.store.Get(key); item != nil && !item.Expired() {
		obs.CacheHits.WithLabelValues(kind(key)).Inc()
		return item.Value(), nil
	}
	obs.CacheMisses.WithLabelValues(kind(key)).Inc()

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// A collapsed caller may arrive after the winning flight has
		// already stored the value.
		if item := c.store.Get(key); item != nil && !item.Expired() {
			return item.Value(), nil
		}
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		c.store.Set(key, v, ttl)
		return v, nil
	})
	return v, err
}

// Delete removes a key, forcing the next GetOrFetch to refetch.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Fetch is the typed convenience wrapper over Cache.GetOrFetch.
func Fetch[T any](c *Cache, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	v, err := c.GetOrFetch(key, ttl, func() (any, error) { return fetch() })
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// RatesKey builds the cache key for a rate-quote fetch from its full
// parameterization. Site IDs are sorted first so identical sets
// requested in different orders share an entry.
func RatesKey(siteIDs []int, windowDays int, start time.Time) string {
	ids := make([]int, len(siteIDs))
	copy(ids, siteIDs)
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("rates:%s:days_%d:date_%s",
		strings.Join(parts, "_"), windowDays, start.Format("2006-01-02"))
}

// kind maps a key to its metrics label: the segment before the first
// ':' for parameterized keys, the key itself otherwise.
func kind(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
