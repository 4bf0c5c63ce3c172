package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MovieStore defines persistence operations for movies.
// Every method is scoped to a single owner.
type MovieStore interface {
	Create(ctx context.Context, movie Movie) (Movie, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Movie, error)
	GetByTitle(ctx context.Context, ownerID uuid.UUID, title string) (Movie, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Movie, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update MovieUpdate) (Movie, error)
	SetRankings(ctx context.Context, ownerID uuid.UUID, updates []RankUpdate) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Movie represents a title on a user's watchlist.
type Movie struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	ExternalID  int64
	Title       string
	Year        int
	Description string
	Rating      float64
	Ranking     int
	Review      string
	ImgURL      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MovieUpdate holds the user editable fields of a movie.
type MovieUpdate struct {
	Rating float64
	Review string
}

// RankUpdate is a single ranking change produced by the ranking pass.
type RankUpdate struct {
	ID      uuid.UUID
	Ranking int
}

const (
	// MinRating is the lowest rating a user may assign.
	MinRating = 0.0
	// MaxRating is the highest rating a user may assign.
	MaxRating = 10.0
	// DefaultRating is assigned to newly added movies.
	DefaultRating = 1.0
	// DefaultRanking is assigned to newly added movies until the next list view.
	DefaultRanking = 1
	// PlaceholderReview is stored until the user writes a review.
	PlaceholderReview = " "
)
