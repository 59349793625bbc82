// Package create реализует HTTP-обработчик для создания новых рецептов пользователя.
//
// Handler принимает JSON-запрос с данными рецепта и списком тегов, валидирует их,
// извлекает UID пользователя из контекста, вызывает бизнес-логику создания рецепта
// через сервис и возвращает полное представление созданной записи в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/http/response"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/services/recipe"
)

// Handler управляет HTTP-запросами на создание новых рецептов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания рецептов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания рецепта.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyRecipe) (*models.Recipe, error)
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
// @Summary Создать новый рецепт
// @Description Создает рецепт текущего пользователя вместе с тегами: существующие теги переиспользуются, новые создаются. Возвращает полное представление.
// @Tags Recipes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyRecipe true "Данные нового рецепта"
// @Success 201 {object} response.Response "Созданный рецепт"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или цена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании рецепта"
// @Router /recipe/recipes/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRecipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

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

	result, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		if errors.Is(err, recipe.ErrInvalidPrice) {
			log.Error("invalid price", slog.String("price", req.Price))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid price"))
			return
		}
		log.Error("failed to create recipe", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create recipe"))
		return
	}

	log.Info("created new recipe", slog.Int64("id", result.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(result.Detail()))
}
