package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	apicontext "github.com/dtroode/watchlist-server/internal/api/http/context"
	"github.com/dtroode/watchlist-server/internal/api/http/router"
	httpserver "github.com/dtroode/watchlist-server/internal/api/http/server"
	"github.com/dtroode/watchlist-server/internal/api/http/view"
	"github.com/dtroode/watchlist-server/internal/config"
	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/metadata/tmdb"
	"github.com/dtroode/watchlist-server/internal/model"
	"github.com/dtroode/watchlist-server/internal/password"
	"github.com/dtroode/watchlist-server/internal/repository/postgres"
	"github.com/dtroode/watchlist-server/internal/service"
	storage "github.com/dtroode/watchlist-server/internal/storage/minio"
	"github.com/dtroode/watchlist-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	hasher := password.NewBcrypt(cfg.Password.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	metadata := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.ImageBaseURL, cfg.TMDB.Timeout)

	var posterStorage model.Storage
	if cfg.Storage.Enabled {
		client, err := storage.Dial(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize poster storage", "error", err)
		}
		posterStorage = client
	}
	posters := service.NewPosters(posterStorage, &http.Client{Timeout: cfg.TMDB.Timeout}, logger)

	authService := service.NewAuth(userRepo, sessionRepo, hasher, tokenManager, logger)
	catalogService := service.NewCatalog(movieRepo, metadata, posters, logger)
	service.StartSessionCleaner(ctx, sessionRepo, cfg.Session.CleanupInterval, logger)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal("failed to parse templates", "error", err)
	}

	r := router.New(
		authService,
		catalogService,
		posters,
		db,
		renderer,
		apicontext.NewManager(),
		logger,
		cfg.HTTP.EnableHTTPS,
	)
	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = httpserver.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpserver.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
