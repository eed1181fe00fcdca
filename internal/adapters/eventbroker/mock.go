package eventbroker

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

// NewMockPublisher creates a new MockPublisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.AssetEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
