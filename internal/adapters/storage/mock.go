package storage

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBlobStore is a mock implementation of BlobStore
type MockBlobStore struct {
	mock.Mock
}

// NewMockBlobStore creates a new MockBlobStore
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

func (m *MockBlobStore) Save(ctx context.Context, storedName string, content io.Reader) (int64, error) {
	args := m.Called(ctx, storedName, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlobStore) Open(ctx context.Context, storedName string) (io.ReadSeekCloser, time.Time, error) {
	args := m.Called(ctx, storedName)
	var rc io.ReadSeekCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadSeekCloser)
	}
	return rc, args.Get(1).(time.Time), args.Error(2)
}

func (m *MockBlobStore) Delete(ctx context.Context, storedName string) (bool, error) {
	args := m.Called(ctx, storedName)
	return args.Bool(0), args.Error(1)
}
