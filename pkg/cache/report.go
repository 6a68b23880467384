package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/licensefinder/pkg/license"
	"github.com/matzehuels/licensefinder/pkg/observability"
)

// keyTypeReport labels report entries in cache hooks.
const keyTypeReport = "report"

// Reports stores package lists in a Cache.
type Reports struct {
	Cache Cache
	TTL   time.Duration
}

// NewReports creates a report store over c. A nil c disables caching.
func NewReports(c Cache, ttl time.Duration) *Reports {
	if c == nil {
		c = NewNullCache()
	}
	return &Reports{Cache: c, TTL: ttl}
}

// Load returns the packages stored under key. An entry that no longer
// decodes is removed and reported as a miss.
func (r *Reports) Load(ctx context.Context, key string) ([]license.Package, bool, error) {
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
		return nil, false, nil
	}

	var pkgs []license.Package
	if err := json.Unmarshal(data, &pkgs); err != nil {
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, keyTypeReport)
	return pkgs, true, nil
}

// Store saves pkgs under key.
func (r *Reports) Store(ctx context.Context, key string, pkgs []license.Package) error {
	if pkgs == nil {
		pkgs = []license.Package{}
	}
	data, err := json.Marshal(pkgs)
	if err != nil {
		return err
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyTypeReport, len(data))
	return nil
}
