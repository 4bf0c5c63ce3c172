package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// PosterPathPrefix is the URL path under which cached posters are served.
const PosterPathPrefix = "/posters/"

// Posters keeps copies of poster images in object storage. A nil *Posters
// or one without storage is a disabled cache: it keeps the remote URLs.
type Posters struct {
	storage    model.Storage
	httpClient *http.Client
	logger     *logger.Logger
}

func NewPosters(storage model.Storage, httpClient *http.Client, logger *logger.Logger) *Posters {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Posters{
		storage:    storage,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (p *Posters) enabled() bool {
	return p != nil && p.storage != nil
}

func posterKey(ownerID, movieID uuid.UUID) string {
	return fmt.Sprintf("posters/%s/%s", ownerID, movieID)
}

// Cache copies the movie poster into storage and returns the URL the movie
// should link to. On any failure the original URL is kept.
func (p *Posters) Cache(ctx context.Context, movie model.Movie) string {
	if !p.enabled() || movie.ImgURL == "" {
		return movie.ImgURL
	}

	if err := p.fetch(ctx, posterKey(movie.OwnerID, movie.ID), movie.ImgURL); err != nil {
		p.logger.Warn("Posters service: failed to cache poster",
			"movie_id", movie.ID,
			"url", movie.ImgURL,
			"error", err.Error())
		return movie.ImgURL
	}

	return PosterPathPrefix + movie.ID.String()
}

func (p *Posters) fetch(ctx context.Context, key, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download poster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("poster download returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return p.storage.Upload(ctx, key, resp.Body, resp.ContentLength, contentType)
}

// Open streams the cached poster of one of the caller's movies.
func (p *Posters) Open(ctx context.Context, identity model.Identity, movieID uuid.UUID) (io.ReadCloser, error) {
	ownerID, err := owner(identity)
	if err != nil {
		return nil, err
	}
	if !p.enabled() {
		return nil, model.ErrNotFound
	}

	rc, err := p.storage.Download(ctx, posterKey(ownerID, movieID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to download poster: %w", err)
	}
	return rc, nil
}

// Remove deletes a cached poster. Failures are logged only.
func (p *Posters) Remove(ctx context.Context, ownerID, movieID uuid.UUID) {
	if !p.enabled() {
		return
	}

	if err := p.storage.Delete(ctx, posterKey(ownerID, movieID)); err != nil {
		p.logger.Warn("Posters service: failed to delete poster",
			"movie_id", movieID,
			"error", err.Error())
	}
}
