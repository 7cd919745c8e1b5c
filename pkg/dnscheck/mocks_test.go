package dnscheck_test

import (
	"context"
	"net"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLookupAPI is a mock implementation of dnscheck.LookupAPI.
type MockLookupAPI struct {
	mock.Mock
}

func (m *MockLookupAPI) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*net.MX), args.Error(1)
}

func (m *MockLookupAPI) LookupIP(ctx context.Context, network, host string) ([]net.IP, error) {
	args := m.Called(ctx, network, host)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]net.IP), args.Error(1)
}

func (m *MockLookupAPI) LookupCNAME(ctx context.Context, host string) (string, error) {
	args := m.Called(ctx, host)
	return args.String(0), args.Error(1)
}

func (m *MockLookupAPI) LookupTXT(ctx context.Context, name string) ([]string, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLookupAPI) LookupNS(ctx context.Context, name string) ([]*net.NS, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*net.NS), args.Error(1)
}

// MockChecker is a mock implementation of dnscheck.Checker.
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) HasRecord(ctx context.Context, domain, recordType string) (bool, error) {
	args := m.Called(ctx, domain, recordType)
	return args.Bool(0), args.Error(1)
}

// MockStore is a mock implementation of dnscheck.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (bool, bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key string, found bool, ttl time.Duration) error {
	args := m.Called(ctx, key, found, ttl)
	return args.Error(0)
}
