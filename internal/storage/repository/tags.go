package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// ListTags возвращает теги владельца, отсортированные по имени.
func (s *Storage) ListTags(ctx context.Context, userUID string, limit, offset int) ([]models.Tag, error) {
	const op = "storage.ListTags"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name
			  FROM tags
			  WHERE user_uid = $1
			  ORDER BY name, id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadTag возвращает тег владельца по ID.
// Чужой или несуществующий ID дает ErrNotFound.
func (s *Storage) ReadTag(ctx context.Context, userUID string, id int64) (*models.Tag, error) {
	const op = "storage.ReadTag"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name FROM tags WHERE id = $1 AND user_uid = $2`
	var tag models.Tag
	if err := s.DB.QueryRowContext(ctx, query, id, userUID).Scan(&tag.ID, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &tag, nil
}

// UpdateTag переименовывает тег владельца. Переименование в уже занятое
// у этого пользователя имя возвращает ErrTagExists.
func (s *Storage) UpdateTag(ctx context.Context, userUID string, id int64, name string) (*models.Tag, error) {
	const op = "storage.UpdateTag"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tags SET name = $3 WHERE id = $1 AND user_uid = $2 RETURNING id, name`
	var tag models.Tag
	if err := s.DB.QueryRowContext(ctx, query, id, userUID, name).Scan(&tag.ID, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrTagExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &tag, nil
}

// RemoveTag удаляет тег владельца. Связи с рецептами снимаются каскадно,
// сами рецепты остаются. Чужой или несуществующий ID дает ErrNotFound.
func (s *Storage) RemoveTag(ctx context.Context, userUID string, id int64) error {
	const op = "storage.RemoveTag"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tags WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListRecipeIDsByTag возвращает ID рецептов владельца, привязанных к тегу.
// Используется для инвалидации кеша при переименовании или удалении тега.
func (s *Storage) ListRecipeIDsByTag(ctx context.Context, userUID string, tagID int64) ([]int64, error) {
	const op = "storage.ListRecipeIDsByTag"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT rt.recipe_id
			  FROM recipe_tags rt
			  JOIN tags t ON t.id = rt.tag_id
			  WHERE rt.tag_id = $1 AND t.user_uid = $2`
	rows, err := s.DB.QueryContext(ctx, query, tagID, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
