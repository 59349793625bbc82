// Package list реализует HTTP-обработчик получения списка рецептов пользователя.
//
// Handler возвращает рецепты текущего пользователя в сокращённом представлении
// (без описания), новые первыми, с пагинацией через query-параметры limit и offset.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/response"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// Handler управляет HTTP-запросами на получение списка рецептов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики рецептов
}

// Service описывает интерфейс бизнес-логики получения списка рецептов.
type Service interface {
	List(ctx context.Context, userUID string, limit, offset int) ([]models.RecipeSummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить список рецептов
// @Description Возвращает рецепты текущего пользователя в сокращённом представлении, без описания, новые первыми.
// @Tags Recipes
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Максимум записей (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} response.Response "Список рецептов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipe/recipes/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	offsetStr := r.URL.Query().Get("offset")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), userUID, limit, offset)
	if err != nil {
		log.Error("failed to list recipes", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list recipes"))
		return
	}

	log.Info("list recipes", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(res),
		"recipes":    res,
	}))
}
