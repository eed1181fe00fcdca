package port

import "context"

// UnitOfWork groups the repositories behind one transactional boundary.
// Execute runs fn against a transaction-backed UnitOfWork and commits when fn
// returns nil.
type UnitOfWork interface {
	AssetRepo() AssetRepository
	MovieRepo() MovieRepository
	ActorRepo() ActorRepository
	StudioRepo() StudioRepository
	MovieActorRepo() MovieActorRepository
	UserRepo() UserRepository
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
