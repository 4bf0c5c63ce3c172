// Package ranking computes watchlist positions from ratings.
package ranking

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/dtroode/watchlist-server/internal/model"
)

// Compare orders movies by rating descending. Ties go to the movie added
// first, then to the lower ID, so the order is total and deterministic.
func Compare(a, b model.Movie) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// Assign sorts movies in place by Compare and sets Ranking to the 1-based
// position of each movie. It returns the movies whose ranking changed, in
// ranking order, so the caller only persists what moved.
func Assign(movies []model.Movie) []model.RankUpdate {
	slices.SortStableFunc(movies, Compare)

	var changed []model.RankUpdate
	for i := range movies {
		rank := i + 1
		if movies[i].Ranking == rank {
			continue
		}
		movies[i].Ranking = rank
		changed = append(changed, model.RankUpdate{ID: movies[i].ID, Ranking: rank})
	}

	return changed
}
