package domain

import "time"

// Movie is a catalog entry. StudioID is required; actors are linked through
// the movie_actors join table.
type Movie struct {
	ID          int64
	Title       string
	Description string
	IsWatched   bool
	DateWatched *time.Time
	Rating      *int
	Genre       string
	PosterURL   string
	DateAdded   time.Time
	StudioID    int64
}

// MovieDetails is a movie joined with its studio name and actor names.
type MovieDetails struct {
	Movie
	StudioName string
	ActorNames []string
}

// MovieFilter narrows and orders a movie listing. FilterOn and SortBy
// currently only support "title"; anything else sorts by id.
type MovieFilter struct {
	FilterOn    string
	FilterQuery string
	SortBy      string
	Ascending   bool
}

// Actor is a person appearing in movies.
type Actor struct {
	ID       int64
	FullName string
}

// Studio produces movies.
type Studio struct {
	ID   int64
	Name string
}
