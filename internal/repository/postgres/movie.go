package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/watchlist-server/internal/model"
)

var _ model.MovieStore = (*MovieRepository)(nil)

const movieColumns = `id, owner_id, external_id, title, year, description, rating, ranking, review, img_url, created_at, updated_at`

// MovieRepository stores watchlist entries. Every query is filtered by owner_id.
type MovieRepository struct {
	db *Connection
}

func NewMovieRepository(db *Connection) *MovieRepository {
	return &MovieRepository{
		db: db,
	}
}

func (r *MovieRepository) Create(ctx context.Context, movie model.Movie) (model.Movie, error) {
	query := `INSERT INTO movies (id, owner_id, external_id, title, year, description, rating, ranking, review, img_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING ` + movieColumns

	saved, err := scanMovie(r.db.QueryRow(ctx, query,
		movie.ID, movie.OwnerID, movie.ExternalID, movie.Title, movie.Year, movie.Description,
		movie.Rating, movie.Ranking, movie.Review, movie.ImgURL, movie.CreatedAt, movie.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Movie{}, fmt.Errorf("movie %q: %w", movie.Title, model.ErrAlreadyExists)
		}
		return model.Movie{}, fmt.Errorf("failed to create movie: %w", err)
	}

	return saved, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE owner_id = $1 AND id = $2`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to get movie by id: %w", err)
	}

	return movie, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, ownerID uuid.UUID, title string) (model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE owner_id = $1 AND title = $2`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, ownerID, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to get movie by title: %w", err)
	}

	return movie, nil
}

// ListByOwner returns the owner's movies, best rated first.
func (r *MovieRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies
			  WHERE owner_id = $1
			  ORDER BY rating DESC, created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	var movies []model.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return movies, nil
}

// Update changes rating and review only.
func (r *MovieRepository) Update(ctx context.Context, ownerID, id uuid.UUID, update model.MovieUpdate) (model.Movie, error) {
	query := `UPDATE movies SET rating = $3, review = $4, updated_at = NOW()
			  WHERE owner_id = $1 AND id = $2
			  RETURNING ` + movieColumns

	movie, err := scanMovie(r.db.QueryRow(ctx, query, ownerID, id, update.Rating, update.Review))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to update movie: %w", err)
	}

	return movie, nil
}

// SetRankings applies ranking changes in a single batch round trip.
func (r *MovieRepository) SetRankings(ctx context.Context, ownerID uuid.UUID, updates []model.RankUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	const query = `UPDATE movies SET ranking = $3 WHERE owner_id = $1 AND id = $2`

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(query, ownerID, u.ID, u.Ranking)
	}

	results := r.db.SendBatch(ctx, batch)
	for range updates {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to update ranking: %w", err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to update rankings: %w", err)
	}

	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM movies WHERE owner_id = $1 AND id = $2`

	cmd, err := r.db.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanMovie(row pgx.Row) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.ExternalID, &m.Title, &m.Year, &m.Description,
		&m.Rating, &m.Ranking, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
