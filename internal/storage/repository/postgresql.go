// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, рецептами и тегами. Все операции над
// рецептами и тегами ограничены строками владельца: чужой идентификатор
// неотличим от несуществующего.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Сентинельные ошибки хранилища. Обработчики транслируют их в HTTP-статусы.
var (
	// ErrNotFound строка не существует либо принадлежит другому пользователю.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken пользователь с такой почтой уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrTagExists у пользователя уже есть тег с таким именем.
	ErrTagExists = errors.New("tag already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, рецептами и тегами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// WaitForReady ждёт готовности базы данных, опрашивая её с заданной задержкой.
// Используется на старте приложения: контейнер базы может принимать
// TCP-соединения раньше, чем начинает обслуживать запросы.
func WaitForReady(ctx context.Context, storageConnectionString string, attempts int, delay time.Duration) (*Storage, error) {
	const op = "storage.WaitForReady"

	var lastErr error
	for range attempts {
		storage, err := New(storageConnectionString)
		if err == nil {
			return storage, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("%s: database unavailable: %w", op, lastErr)
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'recipes'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table recipes missing or query error: %w", err)
	}
	return nil
}
