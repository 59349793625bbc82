// Package recipecatalog собирает приложение каталога рецептов:
// подключение к базе, миграции, кеш, сервисы и HTTP-сервер.
package recipecatalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/recipe-catalog/internal/cache"
	"github.com/magabrotheeeer/recipe-catalog/internal/config"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/recipe-catalog/internal/migrations"
	authservice "github.com/magabrotheeeer/recipe-catalog/internal/services/auth"
	recipeservice "github.com/magabrotheeeer/recipe-catalog/internal/services/recipe"
	tagservice "github.com/magabrotheeeer/recipe-catalog/internal/services/tag"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.WaitForReady(ctx, cfg.StorageConnectionString, 10, 2*time.Second)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker)
	recipeService := recipeservice.New(db, cacheRedis, logger)
	tagService := tagservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker, db, authService, recipeService, tagService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
