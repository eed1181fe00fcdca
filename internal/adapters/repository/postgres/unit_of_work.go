package postgres

import (
	"context"
	"database/sql"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork creates a UnitOfWork over a pooled database handle
func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) querier() SQLQuerier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *sqlUnitOfWork) AssetRepo() port.AssetRepository {
	return NewSQLAssetRepository(u.querier())
}

func (u *sqlUnitOfWork) MovieRepo() port.MovieRepository {
	return NewSQLMovieRepository(u.querier())
}

func (u *sqlUnitOfWork) ActorRepo() port.ActorRepository {
	return NewSQLActorRepository(u.querier())
}

func (u *sqlUnitOfWork) StudioRepo() port.StudioRepository {
	return NewSQLStudioRepository(u.querier())
}

func (u *sqlUnitOfWork) MovieActorRepo() port.MovieActorRepository {
	return NewSQLMovieActorRepository(u.querier())
}

func (u *sqlUnitOfWork) UserRepo() port.UserRepository {
	return NewSQLUserRepository(u.querier())
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
