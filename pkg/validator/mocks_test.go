package validator_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRecordChecker is a mock implementation of validator.RecordChecker.
type MockRecordChecker struct {
	mock.Mock
}

func (m *MockRecordChecker) HasRecord(ctx context.Context, domain, recordType string) (bool, error) {
	args := m.Called(ctx, domain, recordType)
	return args.Bool(0), args.Error(1)
}

// MockDisposableSource is a mock implementation of validator.DisposableSource.
type MockDisposableSource struct {
	mock.Mock
}

func (m *MockDisposableSource) IsDisposable(domain string) bool {
	args := m.Called(domain)
	return args.Bool(0)
}
