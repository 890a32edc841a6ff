// pkg/brands/store.go
package brands

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Outcome tags a store lookup so the miss and the infrastructure-fault cases
// stay distinguishable in logs and metrics, even though callers see the same
// fallback brand for both.
type Outcome string

const (
	OutcomeFound       Outcome = "found"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeUnreachable Outcome = "unreachable"
)

// Lookup is the tagged result of a single store query.
type Lookup struct {
	Outcome Outcome
	Brand   Brand // valid only when Outcome == OutcomeFound
	Cause   error // valid only when Outcome == OutcomeUnreachable
}

func Found(b Brand) Lookup      { return Lookup{Outcome: OutcomeFound, Brand: b} }
func NotFound() Lookup          { return Lookup{Outcome: OutcomeNotFound} }
func Unreachable(err error) Lookup {
	return Lookup{Outcome: OutcomeUnreachable, Cause: err}
}

// Store answers brand lookups by normalized subdomain or custom-domain key.
type Store interface {
	Lookup(ctx context.Context, key string) Lookup
}

// ErrNoBackend marks lookups attempted without a configured backing store.
var ErrNoBackend = errors.New("brand store: no backend configured")

// Service resolves brand lookups with guaranteed non-failure: any miss or
// backend fault degrades to the configured default brand. The default is an
// explicit value handed in at construction, not a package global, so tests can
// substitute it.
type Service struct {
	store    Store
	resolver Resolver
	fallback Brand
	timeout  time.Duration
	log      *zap.SugaredLogger
	devEnv   bool
}

func NewService(store Store, resolver Resolver, fallback Brand, timeout time.Duration, env string, log *zap.SugaredLogger) *Service {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Service{
		store:    store,
		resolver: resolver,
		fallback: fallback.withDefaults(),
		timeout:  timeout,
		log:      log,
		devEnv:   env != "prod",
	}
}

// Default returns the fallback brand served when no builder record resolves.
func (s *Service) Default() Brand { return s.fallback }

// Resolve maps a subdomain (or custom-domain key) to a Brand. It never fails:
// repeated calls with the same input and unchanged backing data return equal
// brands, and the only side effect is logging/metrics.
func (s *Service) Resolve(ctx context.Context, key string) Brand {
	slug := s.resolver.Normalize(key)
	if slug == "" {
		slug = s.resolver.DefaultSlug
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.store.Lookup(ctx, slug)
	lookupTotal.WithLabelValues(string(res.Outcome)).Inc()
	switch res.Outcome {
	case OutcomeFound:
		return res.Brand.withDefaults()
	case OutcomeNotFound:
		s.log.Warnw("no builder for subdomain, serving default brand", "subdomain", slug)
	case OutcomeUnreachable:
		// Infrastructure fault. Keep production logs quiet: this is the
		// expected state of demo deployments with no database.
		if s.devEnv {
			s.log.Warnw("brand store unreachable, serving default brand", "subdomain", slug, "err", res.Cause)
		}
	}
	return s.fallback
}
