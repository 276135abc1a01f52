package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"review_backend/internal/feature/users/domain/entity"
)

// mockUserRepository is a mock implementation of UserRepository.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.User, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer.
type mockTokenIssuer struct {
	GenerateTokenFunc func(userID uint) (string, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uint) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID)
	}
	return "mock-jwt-token", nil
}

// mockTokenRevoker is a mock implementation of TokenRevoker.
type mockTokenRevoker struct {
	RevokeFunc func(ctx context.Context, jti string, expiresAt time.Time) error
}

func (m *mockTokenRevoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, jti, expiresAt)
	}
	return nil
}

func newTestUsecase(repo UserRepository) *userUsecase {
	return NewUserUsecase(repo, &mockTokenIssuer{}, &mockTokenRevoker{}, WithHashCost(bcrypt.MinCost))
}

func TestUserUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration hashes the password", func(t *testing.T) {
		var stored *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				stored = user
				user.ID = 10
				return nil
			},
		}

		user, err := newTestUsecase(repo).Register(ctx, " alice ", " Alice@Example.com ", "password123")
		require.NoError(t, err)

		assert.Equal(t, uint(10), user.ID)
		assert.Equal(t, "alice", stored.Username)
		assert.Equal(t, "alice@example.com", stored.Email)
		assert.NotEqual(t, "password123", stored.Password, "password is not hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	})

	t.Run("duplicate email wins regardless of username", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 2, Username: username}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Fatal("Create must not be called")
				return nil
			},
		}

		_, err := newTestUsecase(repo).Register(ctx, "brand-new", "taken@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.EqualError(t, err, "Email already in use")
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 2, Username: username}, nil
			},
		}

		_, err := newTestUsecase(repo).Register(ctx, "taken", "new@example.com", "password123")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("unique violation from a race", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error { return ErrDuplicateUser },
		}

		_, err := newTestUsecase(repo).Register(ctx, "racer", "racer@example.com", "password123")
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("lookup failure is not reported as duplicate", func(t *testing.T) {
		dbErr := errors.New("database error")
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) { return nil, dbErr },
		}

		_, err := newTestUsecase(repo).Register(ctx, "bob", "bob@example.com", "password123")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUserUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	testUser := &entity.User{ID: 1, Username: "test", Email: "test@example.com", Password: string(hashed)}

	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login", func(t *testing.T) {
		tokens := &mockTokenIssuer{GenerateTokenFunc: func(userID uint) (string, error) {
			assert.Equal(t, testUser.ID, userID)
			return "signed-token", nil
		}}
		uc := NewUserUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, tokens, &mockTokenRevoker{})

		token, err := uc.Login(ctx, "TEST@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("unknown email and wrong password look identical", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{FindByEmailFunc: findTestUser})

		_, errUnknown := uc.Login(ctx, "wrong@example.com", "password123")
		_, errWrong := uc.Login(ctx, "test@example.com", "wrong-password")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.Equal(t, "Invalid credentials", errWrong.Error())
	})

	t.Run("token generation failure", func(t *testing.T) {
		tokens := &mockTokenIssuer{GenerateTokenFunc: func(userID uint) (string, error) {
			return "", errors.New("failed to sign token")
		}}
		uc := NewUserUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, tokens, &mockTokenRevoker{})

		_, err := uc.Login(ctx, "test@example.com", "password123")
		assert.EqualError(t, err, "failed to generate token: failed to sign token")
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockUserRepository{FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, errors.New("timeout")
		}}

		_, err := newTestUsecase(repo).Login(ctx, "test@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserUsecase_Logout(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	t.Run("revokes the token id", func(t *testing.T) {
		var gotJTI string
		revoker := &mockTokenRevoker{RevokeFunc: func(ctx context.Context, jti string, expiresAt time.Time) error {
			gotJTI = jti
			assert.Equal(t, exp, expiresAt)
			return nil
		}}
		uc := NewUserUsecase(&mockUserRepository{}, &mockTokenIssuer{}, revoker)

		require.NoError(t, uc.Logout(ctx, "jti-1", exp))
		assert.Equal(t, "jti-1", gotJTI)
	})

	t.Run("token without id is a no-op", func(t *testing.T) {
		revoker := &mockTokenRevoker{RevokeFunc: func(ctx context.Context, jti string, expiresAt time.Time) error {
			t.Fatal("Revoke must not be called")
			return nil
		}}
		uc := NewUserUsecase(&mockUserRepository{}, &mockTokenIssuer{}, revoker)

		assert.NoError(t, uc.Logout(ctx, "", exp))
	})

	t.Run("store failure", func(t *testing.T) {
		revoker := &mockTokenRevoker{RevokeFunc: func(ctx context.Context, jti string, expiresAt time.Time) error {
			return errors.New("redis down")
		}}
		uc := NewUserUsecase(&mockUserRepository{}, &mockTokenIssuer{}, revoker)

		assert.EqualError(t, uc.Logout(ctx, "jti", exp), "failed to revoke token: redis down")
	})
}

func TestUserUsecase_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing user", func(t *testing.T) {
		deleted := uint(0)
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) { return &entity.User{ID: id}, nil },
			DeleteFunc:   func(ctx context.Context, id uint) error { deleted = id; return nil },
		}

		require.NoError(t, newTestUsecase(repo).DeleteAccount(ctx, 3))
		assert.Equal(t, uint(3), deleted)
	})

	t.Run("missing user", func(t *testing.T) {
		err := newTestUsecase(&mockUserRepository{}).DeleteAccount(ctx, 3)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
