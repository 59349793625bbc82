// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и служебные флаги.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Name         string    // Отображаемое имя пользователя
	PasswordHash string    // Хэш пароля пользователя
	IsActive     bool      // Активна ли учётная запись
	IsStaff      bool      // Флаг сотрудника
	IsSuperuser  bool      // Флаг суперпользователя
	CreatedAt    time.Time // Дата создания учётной записи
}

// DummyRegisterUser используется для приёма данных из JSON-запроса регистрации.
type DummyRegisterUser struct {
	Email    string `json:"email" validate:"required,email"`    // Электронная почта
	Password string `json:"password" validate:"required,min=5"` // Пароль, минимум 5 символов
	Name     string `json:"name" validate:"required,max=255"`   // Отображаемое имя
}

// DummyLoginUser используется для приёма данных из JSON-запроса получения токена.
type DummyLoginUser struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Password string `json:"password" validate:"required"`    // Пароль
}

// DummyUpdateUser используется для частичного обновления профиля.
// Отсутствующие в JSON поля остаются nil и не изменяются.
type DummyUpdateUser struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`   // Новое имя
	Password *string `json:"password" validate:"omitempty,min=5"` // Новый пароль
}

// UserProfile представление пользователя в ответах API, пароль не отдаётся.
type UserProfile struct {
	Email string `json:"email"` // Электронная почта
	Name  string `json:"name"`  // Отображаемое имя
}

// Profile возвращает представление пользователя для ответа API.
func (u *User) Profile() UserProfile {
	return UserProfile{
		Email: u.Email,
		Name:  u.Name,
	}
}
