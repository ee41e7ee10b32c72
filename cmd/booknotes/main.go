package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/application/auth"
	"github.com/Rydon32/Book-Notes/internal/application/catalog"
	"github.com/Rydon32/Book-Notes/internal/config"
	"github.com/Rydon32/Book-Notes/internal/domain"
	httprouter "github.com/Rydon32/Book-Notes/internal/infrastructure/http"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/handlers"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/persistence/postgres"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/search"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/security"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/session"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	redisOpt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("parse REDIS_URL")
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("ping redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	verifyLocalUC := auth.NewVerifyLocal(userRepo, hasher)
	resolveOAuthUC := auth.NewResolveOAuth(userRepo)
	strategies := auth.NewRegistry(
		auth.NewLocalAuthenticator(verifyLocalUC),
		auth.NewProviderAuthenticator(domain.ProviderGoogle, resolveOAuthUC),
		auth.NewProviderAuthenticator(domain.ProviderFacebook, resolveOAuthUC),
	)
	handlers.InitOAuthProviders(cfg.OAuth.CallbackBaseURL, cfg.OAuth.StateSecret,
		handlers.OAuthProviderConfig{ClientID: cfg.OAuth.Google.ClientID, ClientSecret: cfg.OAuth.Google.ClientSecret},
		handlers.OAuthProviderConfig{ClientID: cfg.OAuth.Facebook.ClientID, ClientSecret: cfg.OAuth.Facebook.ClientSecret},
	)

	fetchCatalogUC := catalog.NewFetchCatalog(catalogRepo)
	createEntryUC := catalog.NewCreateEntry(catalogRepo)
	searcher := search.NewOpenLibraryClient()

	authHandler := handlers.NewAuthHandler(strategies, sessions, cfg.Session.TTL, cfg.Session.SecureCookie, log)
	catalogHandler := handlers.NewCatalogHandler(fetchCatalogUC, log)
	entryHandler := handlers.NewEntryHandler(createEntryUC, log)
	searchHandler := handlers.NewSearchHandler(searcher, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	requireSession := middleware.NewSessionAuth(sessions, log).Handler
	loginLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.LoginPerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create login rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:    authHandler,
		CatalogHandler: catalogHandler,
		EntryHandler:   entryHandler,
		SearchHandler:  searchHandler,
		HealthHandler:  healthHandler,
		RequireSession: requireSession,
		Log:            log,
		Secure:         secureMiddleware,
		LoginRateLimit: loginLimit,
		Metrics:        true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
