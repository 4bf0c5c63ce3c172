package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/watchlist-server/internal/api/http/handler"
	"github.com/dtroode/watchlist-server/internal/api/http/middleware"
	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// AuthService is the account service together with token validation.
type AuthService interface {
	handler.AuthService
	middleware.Authenticator
}

// Router wires HTTP handlers and middleware for the watchlist.
type Router struct {
	authService    AuthService
	catalog        handler.CatalogService
	posters        handler.PosterService
	db             handler.Pinger
	renderer       handler.Renderer
	contextManager model.ContextManager
	logger         *logger.Logger
	secureCookies  bool
}

// New creates new HTTP Router instance. secureCookies should be set when the
// server runs behind TLS.
func New(
	authService AuthService,
	catalog handler.CatalogService,
	posters handler.PosterService,
	db handler.Pinger,
	renderer handler.Renderer,
	contextManager model.ContextManager,
	logger *logger.Logger,
	secureCookies bool,
) *Router {
	return &Router{
		authService:    authService,
		catalog:        catalog,
		posters:        posters,
		db:             db,
		renderer:       renderer,
		contextManager: contextManager,
		logger:         logger,
		secureCookies:  secureCookies,
	}
}

// Register builds the route tree. Everything except sign up, sign in,
// password reset, health and static assets requires a valid session.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.renderer, r.contextManager, r.logger, r.secureCookies)
	movieHandler := handler.NewMovie(r.catalog, r.renderer, r.contextManager, r.logger)
	posterHandler := handler.NewPoster(r.posters, r.renderer, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.db, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)

	mux.Get("/healthz", healthHandler.Check)
	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	mux.Route("/user", func(ur chi.Router) {
		ur.Get("/signup", authHandler.SignUpForm)
		ur.Post("/signup", authHandler.SignUp)
		ur.Get("/signin", authHandler.SignInForm)
		ur.Post("/signin", authHandler.SignIn)
	})
	mux.Get("/forgot_password", authHandler.ForgotPasswordForm)
	mux.Post("/forgot_password", authHandler.ForgotPassword)

	mux.Group(func(pr chi.Router) {
		pr.Use(authenticate.Handle)

		pr.Get("/", movieHandler.Index)
		pr.Get("/logout", authHandler.Logout)
		pr.Get("/add", movieHandler.AddForm)
		pr.Post("/add", movieHandler.Search)
		pr.Get("/get_movie_data/{external_id}", movieHandler.Select)
		pr.Get("/edit/{id}", movieHandler.EditForm)
		pr.Post("/edit/{id}", movieHandler.Edit)
		pr.Get("/delete/{id}", movieHandler.Delete)
		pr.Get("/posters/{id}", posterHandler.Get)
	})

	return mux
}
