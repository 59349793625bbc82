package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/recipe-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/recipe-catalog/internal/models"
	"github.com/magabrotheeeer/recipe-catalog/internal/storage/repository"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UsersMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UsersMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UsersMock) UpdateUser(ctx context.Context, userUID string, name, passwordHash *string) (*models.User, error) {
	args := m.Called(ctx, userUID, name, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"lowercase domain stays", "test1@example.com", "test1@example.com"},
		{"uppercase domain lowered", "Test2@EXAMPLe.com", "Test2@example.com"},
		{"mixed case domain", "TEST3@EXAMPLE.com", "TEST3@example.com"},
		{"local part preserved", "test4@example.COM", "test4@example.com"},
		{"no at sign", "not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.email))
		})
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and normalizes email", func(t *testing.T) {
		users := new(UsersMock)
		users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			if u.Email != "Test@example.com" || u.Name != "Test Name" || !u.IsActive {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("testpass123")) == nil
		})).Return(&models.User{UID: "uid-1", Email: "Test@example.com"}, nil).Once()

		svc := New(users, jwt.NewJWTMaker("secret", 24*time.Hour))

		user, err := svc.Register(ctx, "Test@EXAMPLE.COM", "testpass123", "Test Name")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", user.UID)
		users.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(UsersMock)
		users.On("RegisterUser", mock.Anything, mock.Anything).
			Return(nil, repository.ErrEmailTaken).Once()

		svc := New(users, jwt.NewJWTMaker("secret", 24*time.Hour))

		_, err := svc.Register(ctx, "test@example.com", "testpass123", "Test Name")
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("goodpass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		UID:          "uid-1",
		Email:        "test@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	inactiveUser := &models.User{
		UID:          "uid-2",
		Email:        "inactive@example.com",
		PasswordHash: string(hash),
		IsActive:     false,
	}

	tests := []struct {
		name      string
		email     string
		pass      string
		setupMock func(*UsersMock)
		wantErr   error
	}{
		{
			name:  "success",
			email: "test@example.com",
			pass:  "goodpass",
			setupMock: func(m *UsersMock) {
				m.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()
			},
		},
		{
			name:  "email normalized before lookup",
			email: "test@EXAMPLE.COM",
			pass:  "goodpass",
			setupMock: func(m *UsersMock) {
				m.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()
			},
		},
		{
			name:  "unknown email",
			email: "other@example.com",
			pass:  "goodpass",
			setupMock: func(m *UsersMock) {
				m.On("GetUserByEmail", mock.Anything, "other@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			email: "test@example.com",
			pass:  "badpass",
			setupMock: func(m *UsersMock) {
				m.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "inactive account",
			email: "inactive@example.com",
			pass:  "goodpass",
			setupMock: func(m *UsersMock) {
				m.On("GetUserByEmail", mock.Anything, "inactive@example.com").
					Return(inactiveUser, nil).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			tt.setupMock(users)

			svc := New(users, jwt.NewJWTMaker("secret", 24*time.Hour))

			token, err := svc.Login(ctx, tt.email, tt.pass)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("password is hashed", func(t *testing.T) {
		users := new(UsersMock)
		users.On("UpdateUser", mock.Anything, "uid-1", (*string)(nil),
			mock.MatchedBy(func(hash *string) bool {
				if hash == nil {
					return false
				}
				return bcrypt.CompareHashAndPassword([]byte(*hash), []byte("newpass123")) == nil
			})).Return(&models.User{UID: "uid-1"}, nil).Once()

		svc := New(users, jwt.NewJWTMaker("secret", 24*time.Hour))

		newPass := "newpass123"
		_, err := svc.UpdateProfile(ctx, "uid-1", models.DummyUpdateUser{Password: &newPass})
		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("only name changes", func(t *testing.T) {
		users := new(UsersMock)
		newName := "New Name"
		users.On("UpdateUser", mock.Anything, "uid-1", &newName, (*string)(nil)).
			Return(&models.User{UID: "uid-1", Name: newName}, nil).Once()

		svc := New(users, jwt.NewJWTMaker("secret", 24*time.Hour))

		user, err := svc.UpdateProfile(ctx, "uid-1", models.DummyUpdateUser{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, newName, user.Name)
		users.AssertExpectations(t)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		users := new(UsersMock)
		users.On("UpdateUser", mock.Anything, "uid-1", (*string)(nil), (*string)(nil)).
			Return(nil, errors.New("db error")).Once()

		svc := New(users, jwt.NewJWTMaker("secret", 24*time.Hour))

		_, err := svc.UpdateProfile(ctx, "uid-1", models.DummyUpdateUser{})
		assert.Error(t, err)
	})
}
