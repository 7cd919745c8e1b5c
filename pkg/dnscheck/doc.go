// Package dnscheck answers "does this domain have a record of type X" for
// validators that verify mail and web hosts.
//
// Resolver performs live lookups through *net.Resolver (MX, A, AAAA, CNAME,
// TXT and NS). A name that does not exist is a definitive "no", reported as
// (false, nil); network trouble is an error wrapping ErrLookupFailed so the
// caller can choose its own failure policy.
//
// Cached decorates any Checker with a Store:
//
//	checker := dnscheck.NewCached(
//	    dnscheck.NewResolver(),
//	    dnscheck.NewMemoryStore(4096),
//	    dnscheck.WithTTL(15*time.Minute),
//	)
//
// Processes that share a Redis instance can share answers too:
//
//	cfg, err := dnscheck.LoadRedisConfig() // REDIS_URL, REDIS_RETRY_ATTEMPTS, ...
//	if err != nil {
//	    return err
//	}
//	client, err := dnscheck.ConnectRedis(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	checker := dnscheck.NewCached(dnscheck.NewResolver(), dnscheck.NewRedisStore(client))
//
// Static and Failing are deterministic Checkers for tests and offline use.
package dnscheck
