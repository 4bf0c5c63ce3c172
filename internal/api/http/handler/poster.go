package handler

import (
	"bufio"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// Poster serves cached poster images.
type Poster struct {
	responder
	posters PosterService
}

// NewPoster creates a new Poster handler.
func NewPoster(posters PosterService, renderer Renderer, contextManager model.ContextManager, logger *logger.Logger) *Poster {
	return &Poster{
		responder: responder{
			renderer:       renderer,
			contextManager: contextManager,
			logger:         logger,
		},
		posters: posters,
	}
}

func (h *Poster) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, model.ErrNotFound)
		return
	}

	rc, err := h.posters.Open(r.Context(), h.identity(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, sniffLen)
	head, _ := br.Peek(sniffLen)

	w.Header().Set("Content-Type", http.DetectContentType(head))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, br); err != nil {
		h.logger.Warn("Poster handler: failed to stream poster",
			"movie_id", id,
			"error", err.Error())
	}
}
