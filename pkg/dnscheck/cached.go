package dnscheck

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/valkit/pkg/logger"
)

const (
	defaultTTL         = 10 * time.Minute
	defaultNegativeTTL = time.Minute
)

// Cached memoizes another Checker's answers in a Store. Only definitive
// answers are cached; lookup errors always reach the caller. A failing Store
// degrades to uncached lookups.
type Cached struct {
	next        Checker
	store       Store
	ttl         time.Duration
	negativeTTL time.Duration
	logger      *slog.Logger
}

// CachedOption configures a Cached checker.
type CachedOption func(*Cached)

// WithTTL sets how long positive answers are kept.
func WithTTL(ttl time.Duration) CachedOption {
	return func(c *Cached) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithNegativeTTL sets how long "no such record" answers are kept.
func WithNegativeTTL(ttl time.Duration) CachedOption {
	return func(c *Cached) {
		if ttl > 0 {
			c.negativeTTL = ttl
		}
	}
}

func WithLogger(l *slog.Logger) CachedOption {
	return func(c *Cached) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCached wraps next. A nil store gets a default MemoryStore.
func NewCached(next Checker, store Store, opts ...CachedOption) *Cached {
	if store == nil {
		store = NewMemoryStore(0)
	}
	c := &Cached{
		next:        next,
		store:       store,
		ttl:         defaultTTL,
		negativeTTL: defaultNegativeTTL,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Cached) HasRecord(ctx context.Context, domain, recordType string) (bool, error) {
	key := cacheKey(domain, recordType)

	found, hit, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "dns cache read failed",
			logger.Domain(domain),
			logger.RecordType(recordType),
			logger.Error(err),
		)
	} else if hit {
		return found, nil
	}

	found, err = c.next.HasRecord(ctx, domain, recordType)
	if err != nil {
		return false, err
	}

	ttl := c.ttl
	if !found {
		ttl = c.negativeTTL
	}
	if err := c.store.Set(ctx, key, found, ttl); err != nil {
		c.logger.WarnContext(ctx, "dns cache write failed",
			logger.Domain(domain),
			logger.RecordType(recordType),
			logger.Error(err),
		)
	}
	return found, nil
}

func cacheKey(domain, recordType string) string {
	domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	return domain + "|" + strings.ToUpper(recordType)
}
