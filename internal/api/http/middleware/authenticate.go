package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// TokenCookieName is the cookie that carries the access token.
const TokenCookieName = "access-token"

// SignInPath is where unauthenticated requests are sent.
const SignInPath = "/user/signin"

// Authenticator resolves an access token into the caller identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates access tokens and injects the identity into the
// request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle redirects requests without a valid session to the sign in page.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)

		identity, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil || identity.IsZero() {
			if token != "" {
				m.logger.Debug("Authenticate middleware: rejected token",
					"path", r.URL.Path,
					"error", errString(err))
				ClearTokenCookie(w, r.TLS != nil)
			}
			http.Redirect(w, r, SignInPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetIdentityToContext(r.Context(), identity)))
	})
}

// TokenFromRequest returns the bearer token from the Authorization header,
// falling back to the token cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// ClearTokenCookie expires the token cookie in the client.
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func errString(err error) string {
	if err == nil {
		return "empty identity"
	}
	return err.Error()
}
