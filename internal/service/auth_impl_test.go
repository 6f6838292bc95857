package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fragmented-narratives/internal/config"
	"fragmented-narratives/internal/interfaces/mocks"
	"fragmented-narratives/internal/models"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-jwt-secret",
		PasswordPepper: "test-pepper",
		TokenTTL:       time.Hour,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	password := "mysecretpassword"
	pepper := "test-pepper-for-unit-tests"

	hashedPassword, err := hashPassword(password, pepper)
	require.NoError(t, err, "hashPassword should not return an error")
	require.NotEmpty(t, hashedPassword, "hashPassword should return a non-empty string")
	assert.NotEqual(t, password, hashedPassword, "Hashed password should not be equal to the original password")

	assert.True(t, checkPasswordHash(password, hashedPassword, pepper), "checkPasswordHash should return true for correct password and pepper")
	assert.False(t, checkPasswordHash("wrongpassword", hashedPassword, pepper), "checkPasswordHash should return false for incorrect password")
	assert.False(t, checkPasswordHash(password, hashedPassword, "another-pepper"), "checkPasswordHash should return false for incorrect pepper")
	assert.False(t, checkPasswordHash(password, "not-a-bcrypt-hash", pepper), "checkPasswordHash should return false for invalid hash format")
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success stores peppered hash and returns user", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		cfg := testAuthConfig()
		svc := NewAuthService(userRepo, cfg, zap.NewNop())

		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*models.User)
				u.ID = 1
			}).
			Return(nil).Once()

		user, err := svc.Register(context.Background(), "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.True(t, checkPasswordHash("password123", user.PasswordHash, cfg.PasswordPepper))

		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate username surfaces ErrUserAlreadyExists", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
			Return(models.ErrUserAlreadyExists).Once()

		user, err := svc.Register(context.Background(), "alice", "password123")
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
		assert.Nil(t, user)

		userRepo.AssertExpectations(t)
	})

	t.Run("empty username or password is rejected", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

		_, err := svc.Register(context.Background(), "", "password123")
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		_, err = svc.Register(context.Background(), "alice", "")
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		userRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestAuthService_Login(t *testing.T) {
	cfg := testAuthConfig()
	hash, err := hashPassword("password123", cfg.PasswordPepper)
	require.NoError(t, err)
	storedUser := &models.User{ID: 3, Username: "alice", PasswordHash: hash}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(userRepo, cfg, zap.NewNop())

		userRepo.On("GetUserByUsername", mock.Anything, "alice").
			Return(storedUser, nil).Once()

		td, err := svc.Login(context.Background(), "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, int64(3), td.UserID)
		assert.Equal(t, "alice", td.Username)
		require.NotEmpty(t, td.Token)

		claims, err := svc.VerifyToken(context.Background(), td.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.NotEmpty(t, claims.ID, "token should carry a jti")

		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user yields ErrInvalidCredentials", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(userRepo, cfg, zap.NewNop())

		userRepo.On("GetUserByUsername", mock.Anything, "nobody").
			Return(nil, models.ErrUserNotFound).Once()

		td, err := svc.Login(context.Background(), "nobody", "password123")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		assert.Nil(t, td)
	})

	t.Run("wrong password yields the same ErrInvalidCredentials", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(userRepo, cfg, zap.NewNop())

		userRepo.On("GetUserByUsername", mock.Anything, "alice").
			Return(storedUser, nil).Once()

		td, err := svc.Login(context.Background(), "alice", "wrongpassword")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		assert.Nil(t, td)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := NewAuthService(userRepo, cfg, zap.NewNop())

		userRepo.On("GetUserByUsername", mock.Anything, "alice").
			Return(nil, errors.New("connection refused")).Once()

		td, err := svc.Login(context.Background(), "alice", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
		assert.Nil(t, td)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	cfg := testAuthConfig()
	userRepo := new(mocks.UserRepository)
	svc := NewAuthService(userRepo, cfg, zap.NewNop())

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.VerifyToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, models.ErrTokenMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := testAuthConfig()
		expiredCfg.TokenTTL = -time.Hour
		expiredSvc := NewAuthService(userRepo, expiredCfg, zap.NewNop())

		td, err := expiredSvc.(*authServiceImpl).createToken(&models.User{ID: 1, Username: "alice"})
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), td.Token)
		assert.ErrorIs(t, err, models.ErrTokenExpired)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "another-secret"
		otherSvc := NewAuthService(userRepo, otherCfg, zap.NewNop())

		td, err := otherSvc.(*authServiceImpl).createToken(&models.User{ID: 1, Username: "alice"})
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), td.Token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})
}
