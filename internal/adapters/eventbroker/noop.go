package eventbroker

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// NoopPublisher drops every event. It is wired when event publishing is
// disabled so the asset service never has to check for a nil publisher.
type NoopPublisher struct{}

// NewNoopPublisher creates a NoopPublisher
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, domain.AssetEvent) error {
	return nil
}
