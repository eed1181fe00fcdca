package port

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// EventPublisher broadcasts asset lifecycle events. Implementations must be
// safe to call from request handlers; the asset service treats every publish
// as best-effort and only logs failures.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AssetEvent) error
}
