// Package tag содержит бизнес-логику управления тегами пользователя.
// Прямого создания тегов нет: новые теги появляются только при создании
// или обновлении рецепта.
package tag

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// Repository определяет методы для работы с тегами в хранилище.
type Repository interface {
	// ListTags возвращает теги владельца, отсортированные по имени.
	ListTags(ctx context.Context, userUID string, limit, offset int) ([]models.Tag, error)
	// UpdateTag переименовывает тег владельца.
	UpdateTag(ctx context.Context, userUID string, id int64, name string) (*models.Tag, error)
	// RemoveTag удаляет тег владельца.
	RemoveTag(ctx context.Context, userUID string, id int64) error
	// ListRecipeIDsByTag возвращает ID рецептов владельца, привязанных к тегу.
	ListRecipeIDsByTag(ctx context.Context, userUID string, tagID int64) ([]int64, error)
}

// Cache описывает методы кеша, используемые при инвалидации.
type Cache interface {
	Invalidate(key string) error
	Set(key string, value any, expiration time.Duration) error
}

// Service реализует бизнес-логику работы с тегами.
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

// List возвращает теги владельца, отсортированные по имени.
func (s *Service) List(ctx context.Context, userUID string, limit, offset int) ([]models.Tag, error) {
	return s.repo.ListTags(ctx, userUID, limit, offset)
}

// Update переименовывает тег владельца и инвалидирует кеш рецептов,
// в которых тег встречается. Кеш инвалидируется после успешной записи.
func (s *Service) Update(ctx context.Context, userUID string, id int64, req models.DummyUpdateTag) (*models.Tag, error) {
	recipeIDs := s.listAffectedRecipes(ctx, userUID, id)

	tag, err := s.repo.UpdateTag(ctx, userUID, id, req.Name)
	if err != nil {
		return nil, err
	}
	s.invalidateRecipes(userUID, recipeIDs)
	return tag, nil
}

// Remove удаляет тег владельца: связи с рецептами снимаются, сами рецепты
// остаются. Затронутые рецепты собираются до записи, так как удаление
// снимает связи; кеш инвалидируется после записи.
func (s *Service) Remove(ctx context.Context, userUID string, id int64) error {
	recipeIDs := s.listAffectedRecipes(ctx, userUID, id)

	if err := s.repo.RemoveTag(ctx, userUID, id); err != nil {
		return err
	}
	s.invalidateRecipes(userUID, recipeIDs)
	return nil
}

func (s *Service) listAffectedRecipes(ctx context.Context, userUID string, tagID int64) []int64 {
	recipeIDs, err := s.repo.ListRecipeIDsByTag(ctx, userUID, tagID)
	if err != nil {
		s.log.Warn("failed to list recipes for tag", slog.Int64("tag_id", tagID), slog.Any("err", err))
		return nil
	}
	return recipeIDs
}

func (s *Service) invalidateRecipes(userUID string, recipeIDs []int64) {
	for _, recipeID := range recipeIDs {
		key := fmt.Sprintf("recipe:%s:%d", userUID, recipeID)
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to remove from cache", slog.String("key", key), slog.Any("err", err))
		}
	}
}
