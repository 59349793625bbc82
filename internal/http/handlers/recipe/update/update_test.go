package update

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/services/recipe"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, userUID string, id int64, req models.DummyUpdateRecipe) (*models.Recipe, error) {
	args := m.Called(ctx, userUID, id, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		rawID          string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "частичное обновление заголовка",
			rawID:   "5",
			body:    `{"title":"New title"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1", int64(5),
					mock.MatchedBy(func(req models.DummyUpdateRecipe) bool {
						return req.Title != nil && *req.Title == "New title" && req.Tags == nil
					})).Return(&models.Recipe{
					ID:    5,
					Title: "New title",
					Price: decimal.RequireFromString("5.50"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"New title"`,
		},
		{
			name:    "пустой список тегов снимает связи",
			rawID:   "5",
			body:    `{"tags":[]}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1", int64(5),
					mock.MatchedBy(func(req models.DummyUpdateRecipe) bool {
						return req.Tags != nil && len(req.Tags) == 0
					})).Return(&models.Recipe{ID: 5, Title: "Kept"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"tags":[]`,
		},
		{
			name:           "некорректный id в URL",
			rawID:          "abc",
			body:           `{"title":"New title"}`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"failed to decode id from url"`,
		},
		{
			name:    "чужой рецепт неотличим от несуществующего",
			rawID:   "7",
			body:    `{"title":"New title"}`,
			userUID: "uid-2",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-2", int64(7), mock.Anything).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"recipe not found"`,
		},
		{
			name:    "некорректная цена",
			rawID:   "5",
			body:    `{"price":"-3"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1", int64(5), mock.Anything).
					Return(nil, fmt.Errorf("%w: -3", recipe.ErrInvalidPrice))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid price"`,
		},
		{
			name:           "слишком длинное название",
			rawID:          "5",
			body:           `{"title":"` + strings.Repeat("x", 256) + `"}`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Title is too long`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/recipe/recipes/"+tt.rawID+"/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.rawID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
