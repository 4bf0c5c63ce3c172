package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dtroode/watchlist-server/internal/api/http/middleware"
	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/model"
)

// handleError maps service errors to a response.
func (h *responder) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Something went wrong."

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		http.Redirect(w, r, middleware.SignInPath, http.StatusSeeOther)
		return
	case errors.Is(err, model.ErrNotFound):
		status, message = http.StatusNotFound, "Movie not found."
	case errors.Is(err, model.ErrInvalidInput):
		status, message = http.StatusBadRequest, inputMessage(err)
	case errors.Is(err, model.ErrUpstream):
		status, message = http.StatusBadGateway, "The movie database is unavailable. Try again later."
	default:
		h.logger.Error("Handler: request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}

	page := h.page(r, http.StatusText(status))
	page.Message = message
	h.render(w, r, status, view.PageError, view.ErrorPage{Page: page, Status: status})
}

// inputMessage returns the reason part of an ErrInvalidInput error.
func inputMessage(err error) string {
	msg := err.Error()
	if _, reason, ok := strings.Cut(msg, model.ErrInvalidInput.Error()+": "); ok {
		return reason
	}
	return msg
}
