// Package list реализует HTTP-обработчик получения списка тегов пользователя.
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

// Handler управляет HTTP-запросами на получение списка тегов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики тегов
}

// Service описывает интерфейс бизнес-логики списка тегов.
type Service interface {
	List(ctx context.Context, userUID string, limit, offset int) ([]models.Tag, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить список тегов
// @Description Возвращает теги текущего пользователя, отсортированные по имени.
// @Tags Tags
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Максимальное количество записей" default(10)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} response.Response "Список тегов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipe/tags/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tag.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	tags, err := h.service.List(r.Context(), userUID, limit, offset)
	if err != nil {
		log.Error("failed to list tags", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list tags"))
		return
	}

	log.Info("found tags", slog.Int("count", len(tags)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(tags),
		"tags":       tags,
	}))
}
