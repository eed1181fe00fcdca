package thumbnail

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockThumbnailer is a mock implementation of Thumbnailer
type MockThumbnailer struct {
	mock.Mock
}

// NewMockThumbnailer creates a new MockThumbnailer
func NewMockThumbnailer() *MockThumbnailer {
	return &MockThumbnailer{}
}

func (m *MockThumbnailer) Extract(ctx context.Context, video io.Reader, storedFileName string) (string, io.ReadCloser, error) {
	args := m.Called(ctx, video, storedFileName)
	var rc io.ReadCloser
	if v := args.Get(1); v != nil {
		rc = v.(io.ReadCloser)
	}
	return args.String(0), rc, args.Error(2)
}
