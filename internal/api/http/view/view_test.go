package view

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/watchlist-server/internal/model"
)

func TestRenderer_Pages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	movie := model.Movie{ID: uuid.New(), Title: "Inception", Year: 2010, Rating: 9.5, Ranking: 1, Review: "Great"}

	tests := []struct {
		name     string
		data     any
		contains []string
	}{
		{
			name:     PageIndex,
			data:     IndexPage{Page: Page{Username: "alice"}, Movies: []model.Movie{movie}},
			contains: []string{"Inception", "9.5 / 10", "/edit/" + movie.ID.String(), "/delete/" + movie.ID.String(), "alice"},
		},
		{name: PageAdd, data: Page{Title: "Add"}, contains: []string{`name="movie_title"`}},
		{
			name:     PageSelect,
			data:     SelectPage{Query: "Inception", Candidates: []model.Candidate{{ExternalID: 27205, Title: "Inception", Year: 2010}}},
			contains: []string{"/get_movie_data/27205", "Inception - 2010"},
		},
		{name: PageEdit, data: EditPage{Movie: movie}, contains: []string{`value="9.5"`, `value="Great"`}},
		{name: PageSignIn, data: SignInPage{BadPassword: true, Login: "alice"}, contains: []string{"Wrong username or password", `value="alice"`}},
		{name: PageSignUp, data: SignUpPage{Exists: true, Form: SignUpForm{Username: "bob"}}, contains: []string{"already registered", `value="bob"`}},
		{name: PageForgotPassword, data: Page{}, contains: []string{`name="old_password"`, `name="new_password"`}},
		{name: PageError, data: ErrorPage{Page: Page{Message: "not found"}, Status: 404}, contains: []string{"404", "not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, r.Render(rec, http.StatusOK, tt.name, tt.data))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestRenderer_EscapesUserInput(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	movie := model.Movie{ID: uuid.New(), Title: "<script>alert(1)</script>"}
	require.NoError(t, r.Render(rec, http.StatusOK, PageIndex, IndexPage{Movies: []model.Movie{movie}}))

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	assert.Error(t, r.Render(rec, http.StatusOK, "missing.html", nil))
	assert.Empty(t, rec.Body.String())
}

func TestStatic(t *testing.T) {
	data, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
