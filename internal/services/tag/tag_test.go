package tag

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListTags(ctx context.Context, userUID string, limit, offset int) ([]models.Tag, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *RepoMock) UpdateTag(ctx context.Context, userUID string, id int64, name string) (*models.Tag, error) {
	args := m.Called(ctx, userUID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *RepoMock) RemoveTag(ctx context.Context, userUID string, id int64) error {
	return m.Called(ctx, userUID, id).Error(0)
}

func (m *RepoMock) ListRecipeIDsByTag(ctx context.Context, userUID string, tagID int64) ([]int64, error) {
	args := m.Called(ctx, userUID, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	repo := new(RepoMock)
	cache := new(CacheMock)

	tags := []models.Tag{{ID: 2, Name: "Dessert"}, {ID: 1, Name: "Vegan"}}
	repo.On("ListTags", mock.Anything, "uid-1", 10, 0).Return(tags, nil).Once()

	svc := New(repo, cache, newNoopLogger())

	result, err := svc.List(ctx, "uid-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, tags, result)
	repo.AssertExpectations(t)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and invalidates linked recipes", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-1", int64(3)).
			Return([]int64{5, 8}, nil).Once()
		cache.On("Invalidate", "recipe:uid-1:5").Return(nil).Once()
		cache.On("Invalidate", "recipe:uid-1:8").Return(nil).Once()
		repo.On("UpdateTag", mock.Anything, "uid-1", int64(3), "Dinner").
			Return(&models.Tag{ID: 3, Name: "Dinner"}, nil).Once()

		svc := New(repo, cache, newNoopLogger())

		tag, err := svc.Update(ctx, "uid-1", 3, models.DummyUpdateTag{Name: "Dinner"})
		require.NoError(t, err)
		assert.Equal(t, "Dinner", tag.Name)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-1", int64(3)).
			Return([]int64{}, nil).Once()
		repo.On("UpdateTag", mock.Anything, "uid-1", int64(3), "Vegan").
			Return(nil, repository.ErrTagExists).Once()

		svc := New(repo, cache, newNoopLogger())

		_, err := svc.Update(ctx, "uid-1", 3, models.DummyUpdateTag{Name: "Vegan"})
		assert.ErrorIs(t, err, repository.ErrTagExists)
	})

	t.Run("failed rename leaves cache untouched", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-1", int64(3)).
			Return([]int64{5, 8}, nil).Once()
		repo.On("UpdateTag", mock.Anything, "uid-1", int64(3), "Vegan").
			Return(nil, repository.ErrTagExists).Once()

		svc := New(repo, cache, newNoopLogger())

		_, err := svc.Update(ctx, "uid-1", 3, models.DummyUpdateTag{Name: "Vegan"})
		assert.ErrorIs(t, err, repository.ErrTagExists)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("foreign tag is not found", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-2", int64(3)).
			Return([]int64{}, nil).Once()
		repo.On("UpdateTag", mock.Anything, "uid-2", int64(3), "Dinner").
			Return(nil, repository.ErrNotFound).Once()

		svc := New(repo, cache, newNoopLogger())

		_, err := svc.Update(ctx, "uid-2", 3, models.DummyUpdateTag{Name: "Dinner"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and invalidates linked recipes", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-1", int64(3)).
			Return([]int64{5}, nil).Once()
		cache.On("Invalidate", "recipe:uid-1:5").Return(nil).Once()
		repo.On("RemoveTag", mock.Anything, "uid-1", int64(3)).Return(nil).Once()

		svc := New(repo, cache, newNoopLogger())

		require.NoError(t, svc.Remove(ctx, "uid-1", 3))
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("failed removal leaves cache untouched", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-2", int64(3)).
			Return([]int64{5}, nil).Once()
		repo.On("RemoveTag", mock.Anything, "uid-2", int64(3)).
			Return(repository.ErrNotFound).Once()

		svc := New(repo, cache, newNoopLogger())

		err := svc.Remove(ctx, "uid-2", 3)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("listing error does not block removal", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("ListRecipeIDsByTag", mock.Anything, "uid-1", int64(3)).
			Return(nil, errors.New("db error")).Once()
		repo.On("RemoveTag", mock.Anything, "uid-1", int64(3)).Return(nil).Once()

		svc := New(repo, cache, newNoopLogger())

		require.NoError(t, svc.Remove(ctx, "uid-1", 3))
		repo.AssertExpectations(t)
	})
}
