package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/watchlist-server/internal/api/http/context"
	"github.com/dtroode/watchlist-server/internal/api/http/handler"
	"github.com/dtroode/watchlist-server/internal/api/http/middleware"
	"github.com/dtroode/watchlist-server/internal/mocks"
	"github.com/dtroode/watchlist-server/internal/model"
	"github.com/dtroode/watchlist-server/internal/testutil"
)

func newAuthHandler(t *testing.T, svc *mocks.AuthService) *handler.Auth {
	return handler.NewAuth(svc, newRenderer(t), apicontext.NewManager(), testutil.MakeNoopLogger(), true)
}

func TestAuth_SignUp(t *testing.T) {
	form := url.Values{"username": {"alice"}, "email": {"alice@example.com"}, "password": {"Secr3t!"}}
	params := model.SignUpParams{Username: "alice", Email: "alice@example.com", Password: "Secr3t!"}

	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "success", wantStatus: http.StatusSeeOther, wantLocation: "/user/signin"},
		{name: "duplicate", err: model.ErrAlreadyExists, wantStatus: http.StatusConflict, wantBody: "already registered"},
		{
			name:       "invalid",
			err:        fmt.Errorf("%w: password must be at least 6 characters", model.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   "password must be at least 6 characters",
		},
		{name: "internal", err: assert.AnError, wantStatus: http.StatusInternalServerError, wantBody: "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewAuthService(t)
			svc.On("SignUp", mock.Anything, params).Return(model.User{Username: "alice"}, tt.err).Once()

			rec := httptest.NewRecorder()
			newAuthHandler(t, svc).SignUp(rec, formRequest(http.MethodPost, "/user/signup", form))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuth_SignIn(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"Secr3t!"}}

	t.Run("sets cookie and redirects home", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		expires := time.Now().Add(time.Hour)
		svc.On("SignIn", mock.Anything, "alice", "Secr3t!").
			Return(model.IssuedSession{Token: "tok", ExpiresAt: expires}, nil).Once()

		rec := httptest.NewRecorder()
		newAuthHandler(t, svc).SignIn(rec, formRequest(http.MethodPost, "/user/signin", form))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("SignIn", mock.Anything, "alice", "Secr3t!").
			Return(model.IssuedSession{}, model.ErrInvalidCredentials).Once()

		rec := httptest.NewRecorder()
		newAuthHandler(t, svc).SignIn(rec, formRequest(http.MethodPost, "/user/signin", form))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Wrong username or password")
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuth_Forms(t *testing.T) {
	h := newAuthHandler(t, mocks.NewAuthService(t))

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{name: "sign up", handler: h.SignUpForm, want: `action="/user/signup"`},
		{name: "sign in", handler: h.SignInForm, want: `action="/user/signin"`},
		{name: "forgot password", handler: h.ForgotPasswordForm, want: `action="/forgot_password"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestAuth_Logout(t *testing.T) {
	svc := mocks.NewAuthService(t)
	svc.On("SignOut", mock.Anything, alice).Return(nil).Once()

	rec := httptest.NewRecorder()
	req := withIdentity(httptest.NewRequest(http.MethodGet, "/logout", nil), alice)
	newAuthHandler(t, svc).Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/user/signin", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestAuth_ForgotPassword(t *testing.T) {
	form := url.Values{"username": {"alice"}, "old_password": {"Secr3t!"}, "new_password": {"N3wSecret"}}
	params := model.ResetPasswordParams{Username: "alice", OldPassword: "Secr3t!", NewPassword: "N3wSecret"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "success", wantStatus: http.StatusSeeOther},
		{name: "wrong password", err: model.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantBody: "Wrong username or password"},
		{name: "weak password", err: fmt.Errorf("%w: newpassword must be at least 6 characters", model.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantBody: "at least 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewAuthService(t)
			svc.On("ResetPassword", mock.Anything, params).Return(tt.err).Once()

			rec := httptest.NewRecorder()
			newAuthHandler(t, svc).ForgotPassword(rec, formRequest(http.MethodPost, "/forgot_password", form))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
