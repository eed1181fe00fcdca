package catalog

import (
	"context"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// CreateActor inserts a new actor
func (s *catalogService) CreateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	if strings.TrimSpace(actor.FullName) == "" {
		return nil, domain.NewValidationError([]domain.FieldError{
			{Field: "fullName", Message: "fullName is required"},
		})
	}

	if err := s.uow.ActorRepo().Create(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// GetActor returns one actor
func (s *catalogService) GetActor(ctx context.Context, id int64) (*domain.Actor, error) {
	return s.uow.ActorRepo().FindByID(ctx, id)
}

// ListActors returns every actor
func (s *catalogService) ListActors(ctx context.Context) ([]domain.Actor, error) {
	return s.uow.ActorRepo().FindAll(ctx)
}

// UpdateActor overwrites an actor
func (s *catalogService) UpdateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	if strings.TrimSpace(actor.FullName) == "" {
		return nil, domain.NewValidationError([]domain.FieldError{
			{Field: "fullName", Message: "fullName is required"},
		})
	}

	if err := s.uow.ActorRepo().Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// DeleteActor removes an actor and its movie links
func (s *catalogService) DeleteActor(ctx context.Context, id int64) error {
	return s.uow.ActorRepo().Delete(ctx, id)
}
