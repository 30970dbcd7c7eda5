package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedDirectory memoizes found profiles for a bounded time. Profiles without a
// display name are returned but not cached, so a failed enrichment is retried.
type CachedDirectory struct {
	next  Directory
	cache *lru.LRU[uuid.UUID, Profile]
}

// NewCachedDirectory wraps next with an expiring LRU of the given size
func NewCachedDirectory(next Directory, size int, ttl time.Duration) *CachedDirectory {
	if size < 1 {
		size = 1
	}
	return &CachedDirectory{
		next:  next,
		cache: lru.NewLRU[uuid.UUID, Profile](size, nil, ttl),
	}
}

// Lookup implements Directory, only asking next for users not cached
func (d *CachedDirectory) Lookup(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]Profile, error) {
	out := make(map[uuid.UUID]Profile, len(userIDs))
	var missing []uuid.UUID
	for _, id := range uniqueIDs(userIDs) {
		if p, ok := d.cache.Get(id); ok {
			out[id] = p
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := d.next.Lookup(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, p := range fetched {
		if p.FullName != "" {
			d.cache.Add(id, p)
		}
		out[id] = p
	}
	return out, nil
}
