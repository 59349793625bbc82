package models

// Tag представляет тег пользователя. Имя уникально только в пределах
// одного владельца: у разных пользователей могут существовать
// одноимённые теги как отдельные строки.
type Tag struct {
	ID   int64  `json:"id"`   // Идентификатор тега
	Name string `json:"name"` // Имя тега
}

// DummyTag описывает тег внутри JSON-запроса создания или обновления рецепта.
type DummyTag struct {
	Name string `json:"name" validate:"required,max=255"` // Имя тега
}

// DummyUpdateTag используется для переименования тега.
type DummyUpdateTag struct {
	Name string `json:"name" validate:"required,max=255"` // Новое имя тега
}
