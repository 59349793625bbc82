// Package models содержит доменные структуры рецептов и тегов,
// а также вспомогательные типы для работы с данными из JSON-запросов.
package models

import "github.com/shopspring/decimal"

// Recipe представляет собой основную модель рецепта,
// используемую в бизнес-логике и хранилище.
// Цена хранится как decimal.Decimal, чтобы исключить
// погрешности двоичной плавающей точки при работе с деньгами.
type Recipe struct {
	ID          int64           // Идентификатор рецепта
	UserUID     string          // UID пользователя-владельца
	Title       string          // Название рецепта
	TimeMinutes int             // Время приготовления в минутах
	Price       decimal.Decimal // Цена
	Link        string          // Внешняя ссылка (опционально)
	Description string          // Описание (опционально)
	Tags        []Tag           // Привязанные теги владельца
}

// DummyRecipe используется для приёма данных из JSON-запроса создания рецепта.
// Цена приходит строкой, чтобы её можно было валидировать и парсить без потери точности.
type DummyRecipe struct {
	Title       string     `json:"title" validate:"required,max=255"`     // Название
	TimeMinutes int        `json:"time_minutes" validate:"required,gt=0"` // Время в минутах (>0)
	Price       string     `json:"price" validate:"required"`             // Цена, например "5.58"
	Link        string     `json:"link" validate:"omitempty,max=255"`     // Ссылка
	Description string     `json:"description"`                           // Описание
	Tags        []DummyTag `json:"tags" validate:"omitempty,dive"`        // Теги
}

// DummyUpdateRecipe используется для частичного или полного обновления рецепта.
// Отсутствующие в JSON скалярные поля остаются nil и не изменяются.
// Поле Tags различает три случая: ключ отсутствует (nil — связи не трогаем),
// пустой список (все связи снимаются) и непустой список (связи заменяются).
type DummyUpdateRecipe struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`       // Новое название
	TimeMinutes *int       `json:"time_minutes" validate:"omitempty,gt=0"`   // Новое время
	Price       *string    `json:"price" validate:"omitempty"`               // Новая цена
	Link        *string    `json:"link" validate:"omitempty,max=255"`        // Новая ссылка
	Description *string    `json:"description"`                              // Новое описание
	Tags        []DummyTag `json:"tags" validate:"omitempty,dive"`           // Новый набор тегов
}

// RecipeSummary сокращённое представление рецепта для списков: без описания.
type RecipeSummary struct {
	ID          int64           `json:"id"`           // Идентификатор
	Title       string          `json:"title"`        // Название
	TimeMinutes int             `json:"time_minutes"` // Время в минутах
	Price       decimal.Decimal `json:"price"`        // Цена
	Link        string          `json:"link"`         // Ссылка
	Tags        []Tag           `json:"tags"`         // Теги
}

// RecipeDetail полное представление рецепта: все поля сокращённого плюс описание.
type RecipeDetail struct {
	RecipeSummary
	Description string `json:"description"` // Описание
}

// Summary возвращает сокращённое представление рецепта.
func (r *Recipe) Summary() RecipeSummary {
	tags := r.Tags
	if tags == nil {
		tags = []Tag{}
	}
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        tags,
	}
}

// Detail возвращает полное представление рецепта.
func (r *Recipe) Detail() RecipeDetail {
	return RecipeDetail{
		RecipeSummary: r.Summary(),
		Description:   r.Description,
	}
}
