// Package update реализует HTTP-обработчик частичного или полного обновления рецепта.
//
// Handler принимает JSON-запрос с любым подмножеством полей рецепта.
// Если в запросе присутствует ключ tags (даже пустым списком), набор связей
// с тегами заменяется целиком; отсутствующий ключ оставляет связи нетронутыми.
// Все изменения применяются атомарно.
package update

import (
	"context"
	"encoding/json"
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
	"github.com/magabrotheeeer/recipe-catalog/internal/services/recipe"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на обновление рецептов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики рецептов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики обновления рецепта.
type Service interface {
	Update(ctx context.Context, userUID string, id int64, req models.DummyUpdateRecipe) (*models.Recipe, error)
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
// @Summary Обновить рецепт
// @Description Частично или полностью обновляет рецепт текущего пользователя. Ключ tags заменяет набор тегов целиком, пустой список снимает все теги.
// @Tags Recipes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID рецепта"
// @Param request body models.DummyUpdateRecipe true "Изменяемые поля рецепта"
// @Success 200 {object} response.Response "Обновлённый рецепт"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, ID или цена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipe/recipes/{id}/ [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.update"
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

	var req models.DummyUpdateRecipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
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

	result, err := h.service.Update(r.Context(), userUID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("recipe not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
		case errors.Is(err, recipe.ErrInvalidPrice):
			log.Error("invalid price")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid price"))
		default:
			log.Error("failed to update recipe", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update recipe"))
		}
		return
	}

	log.Info("updated recipe", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithData(result.Detail()))
}
