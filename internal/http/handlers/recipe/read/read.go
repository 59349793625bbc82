// Package read реализует HTTP-обработчик получения одного рецепта пользователя.
//
// Handler извлекает ID из URL и UID пользователя из контекста и возвращает
// полное представление рецепта. Чужой или несуществующий ID дает 404 —
// различить эти случаи по ответу нельзя.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/response"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на чтение одного рецепта.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики рецептов
}

// Service описывает интерфейс бизнес-логики чтения рецепта.
type Service interface {
	Read(ctx context.Context, userUID string, id int64) (*models.Recipe, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить рецепт по ID
// @Description Возвращает полное представление рецепта текущего пользователя, включая описание и теги.
// @Tags Recipes
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID рецепта"
// @Success 200 {object} response.Response "Рецепт"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipe/recipes/{id}/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	result, err := h.service.Read(r.Context(), userUID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("recipe not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to read recipe", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read recipe"))
		return
	}

	render.JSON(w, r, response.OKWithData(result.Detail()))
}
