package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
	"github.com/dtroode/watchlist-server/internal/ranking"
)

// Catalog manages a user's watchlist. Every operation takes the caller
// identity and only ever touches movies owned by it.
type Catalog struct {
	movies   model.MovieStore
	metadata model.MetadataProvider
	posters  *Posters
	logger   *logger.Logger
	now      func() time.Time
}

// NewCatalog creates the catalog service. posters may be nil.
func NewCatalog(
	movies model.MovieStore,
	metadata model.MetadataProvider,
	posters *Posters,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		movies:   movies,
		metadata: metadata,
		posters:  posters,
		logger:   logger,
		now:      time.Now,
	}
}

func owner(identity model.Identity) (uuid.UUID, error) {
	if identity.IsZero() {
		return uuid.Nil, fmt.Errorf("%w: no authenticated user", model.ErrUnauthorized)
	}
	return identity.UserID, nil
}

// List returns the caller's movies in ranking order, recomputing rankings
// and persisting the ones that moved.
func (c *Catalog) List(ctx context.Context, identity model.Identity) ([]model.Movie, error) {
	ownerID, err := owner(identity)
	if err != nil {
		return nil, err
	}

	movies, err := c.movies.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	updates := ranking.Assign(movies)
	if len(updates) > 0 {
		if err := c.movies.SetRankings(ctx, ownerID, updates); err != nil {
			c.logger.Error("Catalog service: failed to persist rankings",
				"user_id", ownerID,
				"changed", len(updates),
				"error", err.Error())
			return nil, fmt.Errorf("failed to set rankings: %w", err)
		}
		c.logger.Debug("Catalog service: rankings updated",
			"user_id", ownerID,
			"changed", len(updates))
	}

	return movies, nil
}

func (c *Catalog) Get(ctx context.Context, identity model.Identity, id uuid.UUID) (model.Movie, error) {
	ownerID, err := owner(identity)
	if err != nil {
		return model.Movie{}, err
	}

	movie, err := c.movies.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

// Search looks titles up in the external catalogue.
func (c *Catalog) Search(ctx context.Context, identity model.Identity, query string) ([]model.Candidate, error) {
	if _, err := owner(identity); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}

	candidates, err := c.metadata.Search(ctx, query)
	if err != nil {
		c.logger.Error("Catalog service: movie search failed",
			"query", query,
			"error", err.Error())
		return nil, err
	}

	return candidates, nil
}

// AddFromExternal puts an external movie on the caller's list. When the list
// already has a movie with the same title, that movie is returned instead.
func (c *Catalog) AddFromExternal(ctx context.Context, identity model.Identity, externalID int64) (model.Movie, error) {
	ownerID, err := owner(identity)
	if err != nil {
		return model.Movie{}, err
	}
	if externalID <= 0 {
		return model.Movie{}, fmt.Errorf("%w: bad movie id %d", model.ErrInvalidInput, externalID)
	}

	details, err := c.metadata.Fetch(ctx, externalID)
	if err != nil {
		c.logger.Error("Catalog service: failed to fetch movie details",
			"external_id", externalID,
			"error", err.Error())
		return model.Movie{}, err
	}
	if details.Title == "" {
		return model.Movie{}, fmt.Errorf("%w: movie %d has no title", model.ErrUpstream, externalID)
	}

	existing, err := c.movies.GetByTitle(ctx, ownerID, details.Title)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Movie{}, fmt.Errorf("failed to get movie by title: %w", err)
	}

	now := c.now()
	movie := model.Movie{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ExternalID:  externalID,
		Title:       details.Title,
		Year:        details.Year,
		Description: details.Description,
		Rating:      model.DefaultRating,
		Ranking:     model.DefaultRanking,
		Review:      model.PlaceholderReview,
		ImgURL:      details.PosterURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	movie.ImgURL = c.posters.Cache(ctx, movie)

	created, err := c.movies.Create(ctx, movie)
	if err != nil {
		c.posters.Remove(ctx, ownerID, movie.ID)
		if errors.Is(err, model.ErrAlreadyExists) {
			// lost a race with a concurrent add of the same title
			return c.movies.GetByTitle(ctx, ownerID, details.Title)
		}
		return model.Movie{}, fmt.Errorf("failed to create movie: %w", err)
	}

	c.logger.Info("Catalog service: movie added",
		"user_id", ownerID,
		"movie_id", created.ID,
		"external_id", externalID)

	return created, nil
}

// Edit changes rating and review of one of the caller's movies.
func (c *Catalog) Edit(ctx context.Context, identity model.Identity, id uuid.UUID, rating float64, review string) (model.Movie, error) {
	ownerID, err := owner(identity)
	if err != nil {
		return model.Movie{}, err
	}

	if math.IsNaN(rating) || rating < model.MinRating || rating > model.MaxRating {
		return model.Movie{}, fmt.Errorf("%w: rating must be between %g and %g",
			model.ErrInvalidInput, model.MinRating, model.MaxRating)
	}
	if strings.TrimSpace(review) == "" {
		review = model.PlaceholderReview
	}

	movie, err := c.movies.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to get movie: %w", err)
	}

	movie, err = c.movies.Update(ctx, ownerID, movie.ID, model.MovieUpdate{
		Rating: rating,
		Review: review,
	})
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to update movie: %w", err)
	}

	c.logger.Info("Catalog service: movie updated",
		"user_id", ownerID,
		"movie_id", movie.ID)

	return movie, nil
}

// Delete removes one of the caller's movies. Missing and foreign movies
// both yield model.ErrNotFound and change nothing.
func (c *Catalog) Delete(ctx context.Context, identity model.Identity, id uuid.UUID) error {
	ownerID, err := owner(identity)
	if err != nil {
		return err
	}

	if err := c.movies.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	c.posters.Remove(ctx, ownerID, id)

	c.logger.Info("Catalog service: movie deleted",
		"user_id", ownerID,
		"movie_id", id)

	return nil
}
