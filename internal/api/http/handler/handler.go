// Package handler implements the HTML endpoints of the watchlist.
package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// AuthService defines account and session operations.
type AuthService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (model.User, error)
	SignIn(ctx context.Context, username, password string) (model.IssuedSession, error)
	SignOut(ctx context.Context, identity model.Identity) error
	ResetPassword(ctx context.Context, params model.ResetPasswordParams) error
}

// CatalogService defines watchlist operations on behalf of a caller.
type CatalogService interface {
	List(ctx context.Context, identity model.Identity) ([]model.Movie, error)
	Get(ctx context.Context, identity model.Identity, id uuid.UUID) (model.Movie, error)
	Search(ctx context.Context, identity model.Identity, query string) ([]model.Candidate, error)
	AddFromExternal(ctx context.Context, identity model.Identity, externalID int64) (model.Movie, error)
	Edit(ctx context.Context, identity model.Identity, id uuid.UUID, rating float64, review string) (model.Movie, error)
	Delete(ctx context.Context, identity model.Identity, id uuid.UUID) error
}

// PosterService streams cached posters.
type PosterService interface {
	Open(ctx context.Context, identity model.Identity, movieID uuid.UUID) (io.ReadCloser, error)
}

// Renderer writes HTML pages.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// responder is shared by all handlers for rendering and error mapping.
type responder struct {
	renderer       Renderer
	contextManager model.ContextManager
	logger         *logger.Logger
}

func (h *responder) identity(r *http.Request) model.Identity {
	identity, _ := h.contextManager.GetIdentityFromContext(r.Context())
	return identity
}

func (h *responder) page(r *http.Request, title string) view.Page {
	return view.Page{Title: title, Username: h.identity(r).Username}
}

func (h *responder) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		h.logger.Error("Handler: failed to render page",
			"page", name,
			"path", r.URL.Path,
			"error", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
