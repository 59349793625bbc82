package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, rawPassword, name string) (*models.User, error) {
	args := m.Called(ctx, email, rawPassword, name)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"email":"test@example.com","password":"testpass123","name":"Test Name"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "test@example.com", "testpass123", "Test Name").
					Return(&models.User{UID: "uid-1", Email: "test@example.com", Name: "Test Name"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"email":"test@example.com"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "слишком короткий пароль",
			body:           `{"email":"test@example.com","password":"pw","name":"Test Name"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name:           "некорректная почта",
			body:           `{"email":"not-an-email","password":"testpass123","name":"Test Name"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name: "почта уже занята",
			body: `{"email":"taken@example.com","password":"testpass123","name":"Test Name"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "taken@example.com", "testpass123", "Test Name").
					Return(nil, repository.ErrEmailTaken)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"email already registered"`,
		},
		{
			name: "ошибка сервиса",
			body: `{"email":"test@example.com","password":"testpass123","name":"Test Name"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "test@example.com", "testpass123", "Test Name").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/user/create/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
