package dnscheck

import "errors"

var (
	ErrEmptyDomain           = errors.New("dnscheck: empty domain")
	ErrUnsupportedRecordType = errors.New("dnscheck: unsupported record type")
	ErrLookupFailed          = errors.New("dnscheck: lookup failed")
	ErrStoreUnavailable      = errors.New("dnscheck: cache store unavailable")

	ErrEmptyConnectionURL           = errors.New("dnscheck: empty redis connection URL")
	ErrFailedToParseRedisConnString = errors.New("dnscheck: failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("dnscheck: redis did not become ready within the given time period")
)
