// Package tmdb is a client for The Movie Database REST API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dtroode/watchlist-server/internal/model"
)

var _ model.MetadataProvider = (*Client)(nil)

// Client talks to TMDb with a v3 API key.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
}

// NewClient creates a TMDb client. baseURL and imageBaseURL must not have a trailing slash.
func NewClient(apiKey, baseURL, imageBaseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type searchResponse struct {
	Results []movieResult `json:"results"`
}

type movieResult struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	Overview      string `json:"overview"`
	ReleaseDate   string `json:"release_date"`
	PosterPath    string `json:"poster_path"`
}

// Search finds movies whose title matches query.
func (c *Client) Search(ctx context.Context, query string) ([]model.Candidate, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	candidates := make([]model.Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, model.Candidate{
			ExternalID: r.ID,
			Title:      r.displayTitle(),
			Year:       parseYear(r.ReleaseDate),
			PosterURL:  c.posterURL(r.PosterPath),
		})
	}

	return candidates, nil
}

// Fetch returns the details of a single movie.
func (c *Client) Fetch(ctx context.Context, externalID int64) (model.MovieDetails, error) {
	params := url.Values{}
	params.Set("language", "en-US")

	var resp movieResult
	path := "/movie/" + strconv.FormatInt(externalID, 10)
	if err := c.get(ctx, path, params, &resp); err != nil {
		return model.MovieDetails{}, fmt.Errorf("failed to fetch movie %d: %w", externalID, err)
	}

	return model.MovieDetails{
		ExternalID:  externalID,
		Title:       resp.displayTitle(),
		Year:        parseYear(resp.ReleaseDate),
		Description: resp.Overview,
		PosterURL:   c.posterURL(resp.PosterPath),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	params.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the error text contains the url with the api key
		return fmt.Errorf("%w: request to %s failed", model.ErrUpstream, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", model.ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", model.ErrUpstream, err)
	}

	return nil
}

func (r movieResult) displayTitle() string {
	if r.OriginalTitle != "" {
		return r.OriginalTitle
	}
	return r.Title
}

func (c *Client) posterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + path
}

// parseYear takes the year out of a YYYY-MM-DD date. It returns 0 when the
// date is missing or malformed.
func parseYear(date string) int {
	year, _, _ := strings.Cut(date, "-")
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return y
}
