// Package recipecatalog предоставляет маршруты для основного приложения.
package recipecatalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/recipe-catalog/docs"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/health"
	recipecreate "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/recipe/create"
	recipelist "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/recipe/list"
	reciperead "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/recipe/read"
	reciperemove "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/recipe/remove"
	recipeupdate "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/recipe/update"
	taglist "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/tag/list"
	tagremove "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/tag/remove"
	tagupdate "github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/tag/update"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/user/me"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/handlers/user/token"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/recipe-catalog/internal/services/auth"
	recipeservice "github.com/magabrotheeeer/recipe-catalog/internal/services/recipe"
	tagservice "github.com/magabrotheeeer/recipe-catalog/internal/services/tag"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	db *repository.Storage, authService *authservice.Service,
	recipeService *recipeservice.Service, tagService *tagservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/user/create/", register.New(logger, authService).ServeHTTP)
		r.Post("/user/token/", token.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/user/me/", me.NewGet(logger, authService).ServeHTTP)
			r.Put("/user/me/", me.NewUpdate(logger, authService).ServeHTTP)
			r.Patch("/user/me/", me.NewUpdate(logger, authService).ServeHTTP)

			r.Post("/recipe/recipes/", recipecreate.New(logger, recipeService).ServeHTTP)
			r.Get("/recipe/recipes/", recipelist.New(logger, recipeService).ServeHTTP)
			r.Get("/recipe/recipes/{id}/", reciperead.New(logger, recipeService).ServeHTTP)
			r.Put("/recipe/recipes/{id}/", recipeupdate.New(logger, recipeService).ServeHTTP)
			r.Patch("/recipe/recipes/{id}/", recipeupdate.New(logger, recipeService).ServeHTTP)
			r.Delete("/recipe/recipes/{id}/", reciperemove.New(logger, recipeService).ServeHTTP)

			r.Get("/recipe/tags/", taglist.New(logger, tagService).ServeHTTP)
			r.Put("/recipe/tags/{id}/", tagupdate.New(logger, tagService).ServeHTTP)
			r.Patch("/recipe/tags/{id}/", tagupdate.New(logger, tagService).ServeHTTP)
			r.Delete("/recipe/tags/{id}/", tagremove.New(logger, tagService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
