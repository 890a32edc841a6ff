// pkg/brands/memory.go
package brands

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

type memStore struct {
	log         *zap.SugaredLogger
	bySubdomain map[string]Brand
	byDomain    map[string]Brand
}

// NewMemoryStoreFromEnv builds an in-memory brand store for demo deployments
// without a database. BRAND_SEED_JSON may carry extra builders; the default
// brand is always resolvable under its own subdomain.
func NewMemoryStoreFromEnv(fallback Brand, log *zap.SugaredLogger) Store {
	m := &memStore{log: log, bySubdomain: map[string]Brand{}, byDomain: map[string]Brand{}}
	m.add(fallback.withDefaults())
	if seed := os.Getenv("BRAND_SEED_JSON"); seed != "" {
		// An omitted show_powered_by must default to true, so the seed
		// entry carries a pointer the way SeedFromEnv does.
		var entries []struct {
			Brand
			ShowPoweredBy *bool `json:"show_powered_by"`
		}
		if err := json.Unmarshal([]byte(seed), &entries); err != nil {
			log.Warnw("BRAND_SEED_JSON parse failed", "err", err)
		}
		for _, e := range entries {
			b := e.Brand
			b.ShowPoweredBy = e.ShowPoweredBy == nil || *e.ShowPoweredBy
			b.Tier = ParseTier(string(b.Tier))
			m.add(b.withDefaults())
		}
	}
	return m
}

func (m *memStore) add(b Brand) {
	if b.Subdomain == "" {
		return
	}
	m.bySubdomain[b.Subdomain] = b
	if b.CustomDomainActive() {
		m.byDomain[b.CustomDomain] = b
	}
}

func (m *memStore) Lookup(ctx context.Context, key string) Lookup {
	if b, ok := m.bySubdomain[key]; ok {
		return Found(b)
	}
	if b, ok := m.byDomain[key]; ok {
		return Found(b)
	}
	return NotFound()
}
