// Package recipe содержит бизнес-логику управления рецептами:
// создание и обновление рецепта вместе с его тегами как одна операция,
// выбор представления (сокращённого или полного) и кеширование.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// ErrInvalidPrice цена не распарсилась либо вышла за допустимые пределы.
var ErrInvalidPrice = errors.New("invalid price")

// maxPrice верхняя граница цены: NUMERIC(5,2) вмещает не более 999.99.
var maxPrice = decimal.RequireFromString("999.99")

// Repository определяет методы для работы с рецептами в хранилище.
type Repository interface {
	// CreateRecipe добавляет рецепт с тегами в одной транзакции и возвращает его ID.
	CreateRecipe(ctx context.Context, entry models.Recipe, tagNames []string) (int64, error)
	// ReadRecipe возвращает рецепт владельца вместе с тегами.
	ReadRecipe(ctx context.Context, userUID string, id int64) (*models.Recipe, error)
	// ListRecipes возвращает рецепты владельца, новые первыми, с пагинацией.
	ListRecipes(ctx context.Context, userUID string, limit, offset int) ([]*models.Recipe, error)
	// UpdateRecipe частично обновляет рецепт и при необходимости заменяет набор тегов.
	UpdateRecipe(ctx context.Context, userUID string, id int64,
		title *string, timeMinutes *int, price *string, link, description *string,
		tagNames []string) error
	// RemoveRecipe удаляет рецепт владельца.
	RemoveRecipe(ctx context.Context, userUID string, id int64) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с рецептами, включая кеширование.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(userUID string, id int64) string {
	return fmt.Sprintf("recipe:%s:%d", userUID, id)
}

// parsePrice разбирает строковую цену в decimal без двоичной плавающей точки.
// Допустимы значения от 0 до 999.99 включительно, не более двух знаков после точки.
func parsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidPrice, raw)
	}
	if d.IsNegative() || d.GreaterThan(maxPrice) || d.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidPrice, raw)
	}
	return d, nil
}

func tagNames(tags []models.DummyTag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// Create создает рецепт владельца вместе с тегами, кеширует и возвращает
// его полное представление.
func (s *Service) Create(ctx context.Context, userUID string, req models.DummyRecipe) (*models.Recipe, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	entry := models.Recipe{
		UserUID:     userUID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       price,
		Link:        req.Link,
		Description: req.Description,
	}

	id, err := s.repo.CreateRecipe(ctx, entry, tagNames(req.Tags))
	if err != nil {
		return nil, err
	}
	s.log.Info("created new recipe", slog.Int64("id", id))

	result, err := s.repo.ReadRecipe(ctx, userUID, id)
	if err != nil {
		return nil, err
	}

	key := cacheKey(userUID, id)
	if err := s.cache.Set(key, result, time.Hour); err != nil {
		s.log.Warn("failed to cache recipe", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// Read возвращает рецепт по ID, используя кеш или репозиторий.
func (s *Service) Read(ctx context.Context, userUID string, id int64) (*models.Recipe, error) {
	var result *models.Recipe
	key := cacheKey(userUID, id)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), slog.Any("err", err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.ReadRecipe(ctx, userUID, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(key, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает рецепты владельца в сокращённом представлении, новые первыми.
func (s *Service) List(ctx context.Context, userUID string, limit, offset int) ([]models.RecipeSummary, error) {
	entries, err := s.repo.ListRecipes(ctx, userUID, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]models.RecipeSummary, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Summary())
	}
	return result, nil
}

// Update частично обновляет рецепт владельца. Если ключ tags присутствовал
// в запросе (req.Tags != nil), старые связи снимаются и набор тегов
// согласуется заново; пустой список снимает все связи. Отсутствующий ключ
// оставляет связи нетронутыми. Возвращает обновлённое полное представление.
func (s *Service) Update(ctx context.Context, userUID string, id int64, req models.DummyUpdateRecipe) (*models.Recipe, error) {
	var priceStr *string
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		v := price.String()
		priceStr = &v
	}

	var names []string
	if req.Tags != nil {
		names = tagNames(req.Tags)
	}

	err := s.repo.UpdateRecipe(ctx, userUID, id,
		req.Title, req.TimeMinutes, priceStr, req.Link, req.Description, names)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated recipe in storage", slog.Int64("id", id))

	result, err := s.repo.ReadRecipe(ctx, userUID, id)
	if err != nil {
		return nil, err
	}

	key := cacheKey(userUID, id)
	if err := s.cache.Set(key, result, time.Hour); err != nil {
		s.log.Warn("failed to cache recipe", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// Remove удаляет рецепт по ID и инвалидирует кеш.
func (s *Service) Remove(ctx context.Context, userUID string, id int64) error {
	key := cacheKey(userUID, id)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), slog.Any("err", err))
	}

	return s.repo.RemoveRecipe(ctx, userUID, id)
}
