package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// Movie handles the watchlist pages.
type Movie struct {
	responder
	catalog CatalogService
}

// NewMovie creates a new Movie handler.
func NewMovie(
	catalog CatalogService,
	renderer Renderer,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Movie {
	return &Movie{
		responder: responder{
			renderer:       renderer,
			contextManager: contextManager,
			logger:         logger,
		},
		catalog: catalog,
	}
}

// Index shows the ranked list.
func (h *Movie) Index(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalog.List(r.Context(), h.identity(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageIndex, view.IndexPage{
		Page:   h.page(r, ""),
		Movies: movies,
	})
}

func (h *Movie) AddForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageAdd, h.page(r, "Add movie"))
}

// Search shows external candidates for the submitted title.
func (h *Movie) Search(w http.ResponseWriter, r *http.Request) {
	query := r.PostFormValue("movie_title")

	candidates, err := h.catalog.Search(r.Context(), h.identity(r), query)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			page := h.page(r, "Add movie")
			page.Message = inputMessage(err)
			h.render(w, r, http.StatusBadRequest, view.PageAdd, page)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageSelect, view.SelectPage{
		Page:       h.page(r, "Select movie"),
		Query:      strings.TrimSpace(query),
		Candidates: candidates,
	})
}

// Select adds the chosen external movie and opens its edit page.
func (h *Movie) Select(w http.ResponseWriter, r *http.Request) {
	externalID, err := strconv.ParseInt(chi.URLParam(r, "external_id"), 10, 64)
	if err != nil {
		h.handleError(w, r, model.ErrInvalidInput)
		return
	}

	movie, err := h.catalog.AddFromExternal(r.Context(), h.identity(r), externalID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/edit/"+movie.ID.String(), http.StatusSeeOther)
}

func (h *Movie) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, model.ErrNotFound)
		return
	}

	movie, err := h.catalog.Get(r.Context(), h.identity(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageEdit, view.EditPage{
		Page:  h.page(r, "Edit "+movie.Title),
		Movie: movie,
	})
}

func (h *Movie) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, model.ErrNotFound)
		return
	}

	identity := h.identity(r)
	review := r.PostFormValue("review")

	rating, err := strconv.ParseFloat(strings.TrimSpace(r.PostFormValue("rating")), 64)
	if err == nil {
		_, err = h.catalog.Edit(r.Context(), identity, id, rating, review)
		if err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if !errors.Is(err, model.ErrInvalidInput) {
			h.handleError(w, r, err)
			return
		}
	}

	// re-render the form with the reason
	movie, getErr := h.catalog.Get(r.Context(), identity, id)
	if getErr != nil {
		h.handleError(w, r, getErr)
		return
	}

	page := h.page(r, "Edit "+movie.Title)
	page.Message = "Rating must be a number between 0 and 10."
	movie.Review = review
	h.render(w, r, http.StatusBadRequest, view.PageEdit, view.EditPage{Page: page, Movie: movie})
}

// Delete removes the movie and returns to the list. Unknown and foreign
// movies are ignored.
func (h *Movie) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err == nil {
		err = h.catalog.Delete(r.Context(), h.identity(r), id)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			h.handleError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
