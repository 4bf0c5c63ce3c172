package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/watchlist-server/internal/api/http/middleware"
	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// Auth handles sign up, sign in, sign out and password reset.
type Auth struct {
	responder
	authService   AuthService
	secureCookies bool
}

// NewAuth creates a new Auth handler. secureCookies marks the token cookie
// Secure and should be set when serving over HTTPS.
func NewAuth(
	authService AuthService,
	renderer Renderer,
	contextManager model.ContextManager,
	logger *logger.Logger,
	secureCookies bool,
) *Auth {
	return &Auth{
		responder: responder{
			renderer:       renderer,
			contextManager: contextManager,
			logger:         logger,
		},
		authService:   authService,
		secureCookies: secureCookies,
	}
}

func (h *Auth) SignUpForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageSignUp, view.SignUpPage{Page: h.page(r, "Sign up")})
}

func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	params := model.SignUpParams{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	data := view.SignUpPage{
		Page: h.page(r, "Sign up"),
		Form: view.SignUpForm{Username: params.Username, Email: params.Email},
	}

	_, err := h.authService.SignUp(r.Context(), params)
	switch {
	case err == nil:
		h.logger.Info("Auth handler: user registered", "username", params.Username)
		http.Redirect(w, r, middleware.SignInPath, http.StatusSeeOther)
	case errors.Is(err, model.ErrAlreadyExists):
		data.Exists = true
		h.render(w, r, http.StatusConflict, view.PageSignUp, data)
	case errors.Is(err, model.ErrInvalidInput):
		data.Message = inputMessage(err)
		h.render(w, r, http.StatusBadRequest, view.PageSignUp, data)
	default:
		h.handleError(w, r, err)
	}
}

func (h *Auth) SignInForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageSignIn, view.SignInPage{Page: h.page(r, "Sign in")})
}

func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")

	session, err := h.authService.SignIn(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			h.render(w, r, http.StatusUnauthorized, view.PageSignIn, view.SignInPage{
				Page:        h.page(r, "Sign in"),
				BadPassword: true,
				Login:       username,
			})
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context(), h.identity(r)); err != nil {
		h.logger.Error("Auth handler: failed to sign out",
			"error", err.Error())
	}

	middleware.ClearTokenCookie(w, h.secureCookies)
	http.Redirect(w, r, middleware.SignInPath, http.StatusSeeOther)
}

func (h *Auth) ForgotPasswordForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageForgotPassword, h.page(r, "Reset password"))
}

func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	params := model.ResetPasswordParams{
		Username:    r.PostFormValue("username"),
		OldPassword: r.PostFormValue("old_password"),
		NewPassword: r.PostFormValue("new_password"),
	}

	err := h.authService.ResetPassword(r.Context(), params)
	if err == nil {
		middleware.ClearTokenCookie(w, h.secureCookies)
		http.Redirect(w, r, middleware.SignInPath, http.StatusSeeOther)
		return
	}

	page := h.page(r, "Reset password")
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		page.Message = "Wrong username or password."
		h.render(w, r, http.StatusUnauthorized, view.PageForgotPassword, page)
	case errors.Is(err, model.ErrInvalidInput):
		page.Message = inputMessage(err)
		h.render(w, r, http.StatusBadRequest, view.PageForgotPassword, page)
	default:
		h.handleError(w, r, err)
	}
}
