package model

import "context"

// MetadataProvider looks up movies in an external catalogue.
type MetadataProvider interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
	Fetch(ctx context.Context, externalID int64) (MovieDetails, error)
}

// Candidate is a single search result.
type Candidate struct {
	ExternalID int64
	Title      string
	Year       int
	PosterURL  string
}

// MovieDetails is the full metadata of an external movie.
type MovieDetails struct {
	ExternalID  int64
	Title       string
	Year        int
	Description string
	PosterURL   string
}
