package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/watchlist-server/internal/mocks"
	"github.com/dtroode/watchlist-server/internal/model"
	"github.com/dtroode/watchlist-server/internal/testutil"
)

func newTestCatalog(t *testing.T) (*Catalog, *servermocks.MovieStore, *servermocks.MetadataProvider) {
	t.Helper()
	movies := servermocks.NewMovieStore(t)
	metadata := servermocks.NewMetadataProvider(t)
	return NewCatalog(movies, metadata, nil, testutil.MakeNoopLogger()), movies, metadata
}

func aliceIdentity() model.Identity {
	return model.Identity{UserID: uuid.New(), Username: "alice", SessionID: uuid.New()}
}

func TestCatalog_RejectsAnonymous(t *testing.T) {
	c, _, _ := newTestCatalog(t)
	ctx := context.Background()
	anon := model.Identity{}

	_, err := c.List(ctx, anon)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = c.Get(ctx, anon, uuid.New())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = c.Search(ctx, anon, "Inception")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = c.AddFromExternal(ctx, anon, 1)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = c.Edit(ctx, anon, uuid.New(), 5, "ok")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.ErrorIs(t, c.Delete(ctx, anon, uuid.New()), model.ErrUnauthorized)
}

func TestCatalog_List(t *testing.T) {
	me := aliceIdentity()
	base := time.Now().Add(-time.Hour)
	a := model.Movie{ID: uuid.New(), OwnerID: me.UserID, Title: "A", Rating: 7, Ranking: 1, CreatedAt: base}
	b := model.Movie{ID: uuid.New(), OwnerID: me.UserID, Title: "B", Rating: 9, Ranking: 2, CreatedAt: base.Add(time.Minute)}
	c3 := model.Movie{ID: uuid.New(), OwnerID: me.UserID, Title: "C", Rating: 8, Ranking: 3, CreatedAt: base.Add(2 * time.Minute)}

	t.Run("persists changed rankings", func(t *testing.T) {
		c, movies, _ := newTestCatalog(t)
		movies.On("ListByOwner", mock.Anything, me.UserID).Return([]model.Movie{a, b, c3}, nil).Once()
		movies.On("SetRankings", mock.Anything, me.UserID, []model.RankUpdate{
			{ID: b.ID, Ranking: 1},
			{ID: c3.ID, Ranking: 2},
			{ID: a.ID, Ranking: 3},
		}).Return(nil).Once()

		got, err := c.List(context.Background(), me)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"B", "C", "A"}, []string{got[0].Title, got[1].Title, got[2].Title})
		for i, m := range got {
			assert.Equal(t, i+1, m.Ranking)
		}
	})

	t.Run("no write when rankings are current", func(t *testing.T) {
		c, movies, _ := newTestCatalog(t)
		current := []model.Movie{
			{ID: uuid.New(), OwnerID: me.UserID, Rating: 9, Ranking: 1, CreatedAt: base},
			{ID: uuid.New(), OwnerID: me.UserID, Rating: 2, Ranking: 2, CreatedAt: base},
		}
		movies.On("ListByOwner", mock.Anything, me.UserID).Return(current, nil).Once()

		got, err := c.List(context.Background(), me)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty list", func(t *testing.T) {
		c, movies, _ := newTestCatalog(t)
		movies.On("ListByOwner", mock.Anything, me.UserID).Return(nil, nil).Once()

		got, err := c.List(context.Background(), me)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ranking write failure", func(t *testing.T) {
		c, movies, _ := newTestCatalog(t)
		movies.On("ListByOwner", mock.Anything, me.UserID).Return([]model.Movie{a, b}, nil).Once()
		movies.On("SetRankings", mock.Anything, me.UserID, mock.Anything).Return(assert.AnError).Once()

		_, err := c.List(context.Background(), me)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCatalog_Search(t *testing.T) {
	me := aliceIdentity()

	t.Run("success", func(t *testing.T) {
		c, _, metadata := newTestCatalog(t)
		want := []model.Candidate{{ExternalID: 27205, Title: "Inception", Year: 2010}}
		metadata.On("Search", mock.Anything, "Inception").Return(want, nil).Once()

		got, err := c.Search(context.Background(), me, "  Inception ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty query", func(t *testing.T) {
		c, _, _ := newTestCatalog(t)
		_, err := c.Search(context.Background(), me, "   ")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("upstream failure", func(t *testing.T) {
		c, _, metadata := newTestCatalog(t)
		metadata.On("Search", mock.Anything, "x").Return(nil, model.ErrUpstream).Once()

		_, err := c.Search(context.Background(), me, "x")
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}

func TestCatalog_AddFromExternal(t *testing.T) {
	me := aliceIdentity()
	details := model.MovieDetails{
		ExternalID:  27205,
		Title:       "Inception",
		Year:        2010,
		Description: "Dreams.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/inc.jpg",
	}

	t.Run("creates with defaults", func(t *testing.T) {
		c, movies, metadata := newTestCatalog(t)
		metadata.On("Fetch", mock.Anything, int64(27205)).Return(details, nil).Once()
		movies.On("GetByTitle", mock.Anything, me.UserID, "Inception").Return(model.Movie{}, model.ErrNotFound).Once()
		movies.On("Create", mock.Anything, mock.Anything).
			Return(func(_ context.Context, m model.Movie) (model.Movie, error) { return m, nil }).Once()

		got, err := c.AddFromExternal(context.Background(), me, 27205)
		require.NoError(t, err)
		assert.Equal(t, me.UserID, got.OwnerID)
		assert.Equal(t, "Inception", got.Title)
		assert.Equal(t, 2010, got.Year)
		assert.Equal(t, model.DefaultRating, got.Rating)
		assert.Equal(t, model.DefaultRanking, got.Ranking)
		assert.Equal(t, " ", got.Review)
		assert.Equal(t, details.PosterURL, got.ImgURL)
	})

	t.Run("returns existing title", func(t *testing.T) {
		c, movies, metadata := newTestCatalog(t)
		existing := model.Movie{ID: uuid.New(), OwnerID: me.UserID, Title: "Inception", Rating: 9.5}
		metadata.On("Fetch", mock.Anything, int64(27205)).Return(details, nil).Once()
		movies.On("GetByTitle", mock.Anything, me.UserID, "Inception").Return(existing, nil).Once()

		got, err := c.AddFromExternal(context.Background(), me, 27205)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("lost race returns winner", func(t *testing.T) {
		c, movies, metadata := newTestCatalog(t)
		winner := model.Movie{ID: uuid.New(), OwnerID: me.UserID, Title: "Inception"}
		metadata.On("Fetch", mock.Anything, int64(27205)).Return(details, nil).Once()
		movies.On("GetByTitle", mock.Anything, me.UserID, "Inception").Return(model.Movie{}, model.ErrNotFound).Once()
		movies.On("Create", mock.Anything, mock.Anything).Return(model.Movie{}, model.ErrAlreadyExists).Once()
		movies.On("GetByTitle", mock.Anything, me.UserID, "Inception").Return(winner, nil).Once()

		got, err := c.AddFromExternal(context.Background(), me, 27205)
		require.NoError(t, err)
		assert.Equal(t, winner.ID, got.ID)
	})

	t.Run("upstream failure", func(t *testing.T) {
		c, _, metadata := newTestCatalog(t)
		metadata.On("Fetch", mock.Anything, int64(27205)).Return(model.MovieDetails{}, model.ErrUpstream).Once()

		_, err := c.AddFromExternal(context.Background(), me, 27205)
		assert.ErrorIs(t, err, model.ErrUpstream)
	})

	t.Run("bad id", func(t *testing.T) {
		c, _, _ := newTestCatalog(t)
		_, err := c.AddFromExternal(context.Background(), me, 0)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestCatalog_Edit(t *testing.T) {
	me := aliceIdentity()
	id := uuid.New()
	stored := model.Movie{ID: id, OwnerID: me.UserID, Title: "Inception", Rating: 1, Review: " "}

	tests := []struct {
		name    string
		rating  float64
		review  string
		setup   func(m *servermocks.MovieStore)
		wantErr error
	}{
		{
			name:   "updates rating and review",
			rating: 9.5,
			review: "Great",
			setup: func(m *servermocks.MovieStore) {
				m.On("GetByID", mock.Anything, me.UserID, id).Return(stored, nil).Once()
				m.On("Update", mock.Anything, me.UserID, id, model.MovieUpdate{Rating: 9.5, Review: "Great"}).
					Return(model.Movie{ID: id, OwnerID: me.UserID, Title: "Inception", Rating: 9.5, Review: "Great"}, nil).Once()
			},
		},
		{
			name:   "blank review keeps placeholder",
			rating: 0,
			review: "",
			setup: func(m *servermocks.MovieStore) {
				m.On("GetByID", mock.Anything, me.UserID, id).Return(stored, nil).Once()
				m.On("Update", mock.Anything, me.UserID, id, model.MovieUpdate{Rating: 0, Review: " "}).
					Return(stored, nil).Once()
			},
		},
		{name: "rating above range", rating: 10.5, review: "x", wantErr: model.ErrInvalidInput},
		{name: "rating below range", rating: -1, review: "x", wantErr: model.ErrInvalidInput},
		{name: "rating NaN", rating: math.NaN(), review: "x", wantErr: model.ErrInvalidInput},
		{
			name:   "not owned",
			rating: 5,
			review: "x",
			setup: func(m *servermocks.MovieStore) {
				m.On("GetByID", mock.Anything, me.UserID, id).Return(model.Movie{}, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, movies, _ := newTestCatalog(t)
			if tt.setup != nil {
				tt.setup(movies)
			}

			got, err := c.Edit(context.Background(), me, id, tt.rating, tt.review)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}

func TestCatalog_Delete(t *testing.T) {
	me := aliceIdentity()
	id := uuid.New()

	t.Run("own movie", func(t *testing.T) {
		c, movies, _ := newTestCatalog(t)
		movies.On("Delete", mock.Anything, me.UserID, id).Return(nil).Once()
		assert.NoError(t, c.Delete(context.Background(), me, id))
	})

	t.Run("foreign movie is scoped to caller", func(t *testing.T) {
		c, movies, _ := newTestCatalog(t)
		movies.On("Delete", mock.Anything, me.UserID, id).Return(model.ErrNotFound).Once()
		assert.ErrorIs(t, c.Delete(context.Background(), me, id), model.ErrNotFound)
	})
}
