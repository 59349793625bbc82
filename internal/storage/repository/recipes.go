package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/recipe-catalog/internal/models"
)

// CreateRecipe вставляет новый рецепт владельца и согласует его теги
// в одной транзакции: каждое имя либо находит существующий тег пользователя,
// либо создаёт новый, после чего привязывается к рецепту. Повторные имена
// в одном запросе схлопываются в одну строку и одну связь.
func (s *Storage) CreateRecipe(ctx context.Context, entry models.Recipe, tagNames []string) (int64, error) {
	const op = "storage.CreateRecipe"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO recipes (user_uid, title, time_minutes, price, link, description)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	if err = tx.QueryRowContext(ctx, query,
		entry.UserUID, entry.Title, entry.TimeMinutes, entry.Price,
		entry.Link, entry.Description).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = reconcileTags(ctx, tx, entry.UserUID, newID, tagNames); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadRecipe возвращает рецепт владельца вместе с тегами.
// Чужой или несуществующий ID дает ErrNotFound.
func (s *Storage) ReadRecipe(ctx context.Context, userUID string, id int64) (*models.Recipe, error) {
	const op = "storage.ReadRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, time_minutes, price, link, description
			  FROM recipes
			  WHERE id = $1 AND user_uid = $2`
	row := s.DB.QueryRowContext(ctx, query, id, userUID)

	var result models.Recipe
	if err := row.Scan(&result.ID, &result.UserUID, &result.Title, &result.TimeMinutes,
		&result.Price, &result.Link, &result.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tags, err := s.listRecipeTags(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Tags = tags
	return &result, nil
}

// ListRecipes возвращает рецепты владельца, новые первыми, с пагинацией.
func (s *Storage) ListRecipes(ctx context.Context, userUID string, limit, offset int) ([]*models.Recipe, error) {
	const op = "storage.ListRecipes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, time_minutes, price, link, description
			  FROM recipes
			  WHERE user_uid = $1
			  ORDER BY id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recipe
	for rows.Next() {
		var item models.Recipe
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.TimeMinutes,
			&item.Price, &item.Link, &item.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range result {
		tags, err := s.listRecipeTags(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Tags = tags
	}
	return result, nil
}

// UpdateRecipe частично обновляет рецепт владельца и, если tagNames не nil,
// заменяет набор связей с тегами: старые связи снимаются, новые согласуются
// через те же правила, что и при создании. Пустой список снимает все связи.
// Все изменения выполняются в одной транзакции.
func (s *Storage) UpdateRecipe(ctx context.Context, userUID string, id int64,
	title *string, timeMinutes *int, price *string, link, description *string,
	tagNames []string) error {
	const op = "storage.UpdateRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `UPDATE recipes
			  SET title = COALESCE($3, title),
			      time_minutes = COALESCE($4, time_minutes),
			      price = COALESCE($5::numeric, price),
			      link = COALESCE($6, link),
			      description = COALESCE($7, description)
			  WHERE id = $1 AND user_uid = $2`
	result, err := tx.ExecContext(ctx, query, id, userUID, title, timeMinutes, price, link, description)
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

	if tagNames != nil {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM recipe_tags WHERE recipe_id = $1`, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err = reconcileTags(ctx, tx, userUID, id, tagNames); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RemoveRecipe удаляет рецепт владельца. Связи с тегами снимаются каскадно,
// сами теги остаются. Чужой или несуществующий ID дает ErrNotFound.
func (s *Storage) RemoveRecipe(ctx context.Context, userUID string, id int64) error {
	const op = "storage.RemoveRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM recipes WHERE id = $1 AND user_uid = $2`
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

// listRecipeTags возвращает теги рецепта, отсортированные по имени.
func (s *Storage) listRecipeTags(ctx context.Context, recipeID int64) ([]models.Tag, error) {
	query := `SELECT t.id, t.name
			  FROM recipe_tags rt
			  JOIN tags t ON t.id = rt.tag_id
			  WHERE rt.recipe_id = $1
			  ORDER BY t.name, t.id`
	rows, err := s.DB.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// reconcileTags для каждого имени находит существующий тег владельца либо
// создаёт новый и привязывает его к рецепту. Вставка идёт через
// ON CONFLICT DO NOTHING: конкурентное создание одноимённого тега
// упирается в уникальный индекс (user_uid, name) и сводится к повторному
// чтению уже существующей строки, а не к ошибке.
func reconcileTags(ctx context.Context, tx *sql.Tx, userUID string, recipeID int64, tagNames []string) error {
	for _, name := range tagNames {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tags (user_uid, name) VALUES ($1, $2)
			 ON CONFLICT (user_uid, name) DO NOTHING`, userUID, name); err != nil {
			return err
		}

		var tagID int64
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM tags WHERE user_uid = $1 AND name = $2`,
			userUID, name).Scan(&tagID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`, recipeID, tagID); err != nil {
			return err
		}
	}
	return nil
}
