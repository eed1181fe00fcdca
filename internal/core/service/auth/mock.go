package auth

import (
	"context"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, username, password string, roles []string) (*domain.User, error) {
	args := m.Called(ctx, username, password, roles)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) Verify(tokenString string) (string, []string, error) {
	args := m.Called(tokenString)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]string), args.Error(2)
}
