// Package update реализует HTTP-обработчик переименования тега пользователя.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/response"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на переименование тегов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики тегов
	validate *validator.Validate // Валидатор входящих данных
}

// Service описывает интерфейс бизнес-логики переименования тега.
type Service interface {
	Update(ctx context.Context, userUID string, id int64, req models.DummyUpdateTag) (*models.Tag, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Переименовать тег
// @Description Переименовывает тег текущего пользователя. Привязки к рецептам сохраняются.
// @Tags Tags
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID тега"
// @Param tag body models.DummyUpdateTag true "Новое имя тега"
// @Success 200 {object} response.Response "Обновленный тег"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Тег не найден"
// @Failure 422 {object} response.ErrorResponse "Имя уже занято другим тегом"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipe/tags/{id}/ [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tag.update"
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

	var req models.DummyUpdateTag
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	tag, err := h.service.Update(r.Context(), userUID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("tag not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("tag not found"))
		case errors.Is(err, repository.ErrTagExists):
			log.Error("tag name already taken", slog.String("name", req.Name))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("tag with this name already exists"))
		default:
			log.Error("failed to update tag", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update tag"))
		}
		return
	}

	log.Info("updated tag", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithData(tag))
}
