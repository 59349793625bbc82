package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/recipe-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userUID string, limit, offset int) ([]models.RecipeSummary, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]models.RecipeSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	summaries := []models.RecipeSummary{
		{ID: 2, Title: "Second", Price: decimal.RequireFromString("3.25"), Tags: []models.Tag{}},
		{ID: 1, Title: "First", Price: decimal.RequireFromString("5.50"), Tags: []models.Tag{{ID: 1, Name: "Vegan"}}},
	}

	tests := []struct {
		name           string
		url            string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное получение списка",
			url:     "/recipe/recipes/",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "uid-1", 10, 0).Return(summaries, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":2`,
		},
		{
			name:    "пагинация из query-параметров",
			url:     "/recipe/recipes/?limit=5&offset=20",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "uid-1", 5, 20).
					Return([]models.RecipeSummary{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":0`,
		},
		{
			name:    "некорректные параметры заменяются значениями по умолчанию",
			url:     "/recipe/recipes/?limit=abc&offset=-5",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "uid-1", 10, 0).
					Return([]models.RecipeSummary{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":0`,
		},
		{
			name:    "ошибка сервиса",
			url:     "/recipe/recipes/",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "uid-1", 10, 0).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not list recipes"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
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
