package postgres_test

import (
	"context"
	"testing"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/repository/postgres"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestSQLCatalogRepositories(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	movies := postgres.NewSQLMovieRepository(dbConnection)
	actors := postgres.NewSQLActorRepository(dbConnection)
	studios := postgres.NewSQLStudioRepository(dbConnection)
	links := postgres.NewSQLMovieActorRepository(dbConnection)

	newStudio := func(t *testing.T, name string) *domain.Studio {
		t.Helper()
		studio := &domain.Studio{Name: name}
		require.NoError(t, studios.Create(ctx, studio))
		return studio
	}

	newMovie := func(t *testing.T, title string, studioID int64) *domain.Movie {
		t.Helper()
		movie := &domain.Movie{Title: title, Genre: "Sci-Fi", StudioID: studioID}
		require.NoError(t, movies.Create(ctx, movie))
		return movie
	}

	t.Run("Movie Create - Success", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "Warner Bros")

		// Act
		movie := &domain.Movie{Title: "Inception", StudioID: studio.ID}
		err := movies.Create(ctx, movie)

		// Assert
		require.NoError(t, err)
		require.NotZero(t, movie.ID)
		require.False(t, movie.DateAdded.IsZero())
	})

	t.Run("Movie Create - Unknown Studio", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		err := movies.Create(ctx, &domain.Movie{Title: "Orphan", StudioID: 999})

		// Assert
		require.ErrorIs(t, err, domain.ErrStudioNotFound)
	})

	t.Run("Movie FindByID - Joins Studio And Actors", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "A24")
		movie := newMovie(t, "Ex Machina", studio.ID)

		actor := &domain.Actor{FullName: "Alicia Vikander"}
		require.NoError(t, actors.Create(ctx, actor))
		require.NoError(t, links.Link(ctx, movie.ID, actor.ID))

		// Act
		details, err := movies.FindByID(ctx, movie.ID)

		// Assert
		require.NoError(t, err)
		require.Equal(t, "A24", details.StudioName)
		require.Equal(t, []string{"Alicia Vikander"}, details.ActorNames)
	})

	t.Run("Movie FindByID - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		details, err := movies.FindByID(ctx, 999)

		// Assert
		require.Nil(t, details)
		require.ErrorIs(t, err, domain.ErrMovieNotFound)
	})

	t.Run("Movie FindAll - Filter And Sort By Title", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "Legendary")
		newMovie(t, "Dune", studio.ID)
		newMovie(t, "Dune Part Two", studio.ID)
		newMovie(t, "Godzilla", studio.ID)

		// Act
		filter := domain.MovieFilter{FilterOn: "title", FilterQuery: "Dune", SortBy: "title", Ascending: false}
		found, err := movies.FindAll(ctx, filter, 0, 10)

		// Assert
		require.NoError(t, err)
		require.Len(t, found, 2)
		require.Equal(t, "Dune Part Two", found[0].Title)
		require.Equal(t, "Dune", found[1].Title)
	})

	t.Run("Movie Update - Success", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "Pixar")
		movie := newMovie(t, "Up", studio.ID)

		rating := 9
		movie.IsWatched = true
		movie.Rating = &rating

		// Act
		err := movies.Update(ctx, movie)

		// Assert
		require.NoError(t, err)
		details, err := movies.FindByID(ctx, movie.ID)
		require.NoError(t, err)
		require.True(t, details.IsWatched)
		require.NotNil(t, details.Rating)
		require.Equal(t, 9, *details.Rating)
	})

	t.Run("Movie Delete - Cascades Links", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "MGM")
		movie := newMovie(t, "Rocky", studio.ID)
		actor := &domain.Actor{FullName: "Sylvester Stallone"}
		require.NoError(t, actors.Create(ctx, actor))
		require.NoError(t, links.Link(ctx, movie.ID, actor.ID))

		// Act
		err := movies.Delete(ctx, movie.ID)

		// Assert
		require.NoError(t, err)
		_, err = movies.FindByID(ctx, movie.ID)
		require.ErrorIs(t, err, domain.ErrMovieNotFound)
		linked, err := links.FindActorsByMovie(ctx, movie.ID)
		require.NoError(t, err)
		require.Empty(t, linked)
	})

	t.Run("Studio Create - Duplicate Name", func(t *testing.T) {
		// Arrange
		truncate()
		newStudio(t, "Ghibli")

		// Act
		err := studios.Create(ctx, &domain.Studio{Name: "Ghibli"})

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("Studio Delete - Still Referenced", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "Universal")
		newMovie(t, "Jaws", studio.ID)

		// Act
		err := studios.Delete(ctx, studio.ID)

		// Assert
		require.ErrorIs(t, err, domain.ErrStudioInUse)
	})

	t.Run("Link - Duplicate Pair", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "Fox")
		movie := newMovie(t, "Alien", studio.ID)
		actor := &domain.Actor{FullName: "Sigourney Weaver"}
		require.NoError(t, actors.Create(ctx, actor))
		require.NoError(t, links.Link(ctx, movie.ID, actor.ID))

		// Act
		err := links.Link(ctx, movie.ID, actor.ID)

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("Unlink - Not Linked", func(t *testing.T) {
		// Arrange
		truncate()
		studio := newStudio(t, "Sony")
		movie := newMovie(t, "Spider-Man", studio.ID)

		// Act
		err := links.Unlink(ctx, movie.ID, 999)

		// Assert
		require.ErrorIs(t, err, domain.ErrActorNotFound)
	})

	t.Run("Actor Update And Delete", func(t *testing.T) {
		// Arrange
		truncate()
		actor := &domain.Actor{FullName: "Keanu Reves"}
		require.NoError(t, actors.Create(ctx, actor))

		// Act
		actor.FullName = "Keanu Reeves"
		err := actors.Update(ctx, actor)

		// Assert
		require.NoError(t, err)
		found, err := actors.FindByID(ctx, actor.ID)
		require.NoError(t, err)
		require.Equal(t, "Keanu Reeves", found.FullName)

		require.NoError(t, actors.Delete(ctx, actor.ID))
		_, err = actors.FindByID(ctx, actor.ID)
		require.ErrorIs(t, err, domain.ErrActorNotFound)
	})
}

func TestSQLUserRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSQLUserRepository(dbConnection)

	t.Run("Create - Success", func(t *testing.T) {
		// Arrange
		truncate()
		user := &domain.User{Username: "alice", PasswordHash: "hash", Roles: []string{"admin"}}

		// Act
		err := repo.Create(ctx, user)

		// Assert
		require.NoError(t, err)
		require.NotZero(t, user.ID)

		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, []string{"admin"}, found.Roles)
	})

	t.Run("Create - Duplicate Username", func(t *testing.T) {
		// Arrange
		truncate()
		require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h"}))

		// Act
		err := repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h2"})

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("FindByUsername - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		user, err := repo.FindByUsername(ctx, "ghost")

		// Assert
		require.Nil(t, user)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
