// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/recipe-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/recipe-catalog/internal/lib/password"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// ErrInvalidCredentials неверная пара email/пароль. Наружу отдается одно
// сообщение без уточнения, какое именно поле не подошло.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по почте или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateUser частично обновляет имя и/или хэш пароля.
	UpdateUser(ctx context.Context, userUID string, name, passwordHash *string) (*models.User, error)
}

// Service отвечает за регистрацию, выдачу токенов и работу с профилем.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// NormalizeEmail приводит доменную часть адреса к нижнему регистру.
// Локальная часть сохраняется как есть: "Test2@EXAMPLe.com" -> "Test2@example.com".
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// Register создает нового пользователя с нормализованной почтой и хэшированным паролем.
func (s *Service) Register(ctx context.Context, email, rawPassword, name string) (*models.User, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: hashed,
		IsActive:     true,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT.
// Неизвестная почта, неверный пароль и неактивная учётная запись
// дают одинаковую ошибку.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if !user.IsActive {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, user.UID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Profile возвращает пользователя по его UID.
func (s *Service) Profile(ctx context.Context, userUID string) (*models.User, error) {
	return s.users.GetUser(ctx, userUID)
}

// UpdateProfile частично обновляет имя и/или пароль пользователя.
// Новый пароль хэшируется перед сохранением.
func (s *Service) UpdateProfile(ctx context.Context, userUID string, req models.DummyUpdateUser) (*models.User, error) {
	const op = "auth.UpdateProfile"

	var passwordHash *string
	if req.Password != nil {
		hashed, err := password.GetHash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		passwordHash = &hashed
	}
	return s.users.UpdateUser(ctx, userUID, req.Name, passwordHash)
}
