package testsupport

import (
	"context"
	"testing"
	"time"

	"hoarder/internal/config"
	"hoarder/internal/lookupcache"
)

// MustOpenCache opens the lookup cache configured in cfg and registers
// cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config, opts ...lookupcache.Option) *lookupcache.Store {
	t.Helper()

	ttl := time.Duration(cfg.LookupCache.TTLHours) * time.Hour
	store, err := lookupcache.Open(context.Background(), cfg.LookupCache.Path, ttl, opts...)
	if err != nil {
		t.Fatalf("lookupcache.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
