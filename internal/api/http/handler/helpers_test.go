package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/watchlist-server/internal/api/http/context"
	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/model"
)

var alice = model.Identity{UserID: uuid.New(), Username: "alice", SessionID: uuid.New()}

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.NewRenderer()
	require.NoError(t, err)
	return r
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withIdentity(req *http.Request, identity model.Identity) *http.Request {
	ctx := apicontext.NewManager().SetIdentityToContext(req.Context(), identity)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
