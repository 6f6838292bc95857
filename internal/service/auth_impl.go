package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fragmented-narratives/internal/config"
	"fragmented-narratives/internal/interfaces"
	"fragmented-narratives/internal/models"
)

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

// authServiceImpl implements the AuthService interface.
type authServiceImpl struct {
	userRepo interfaces.UserRepository
	cfg      *config.Config
	logger   *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(userRepo interfaces.UserRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger.Named("AuthService"),
	}
}

// Register creates a new user.
func (s *authServiceImpl) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	s.logger.Info("Registering new user", zap.String("username", username))

	if username == "" || password == "" {
		s.logger.Warn("Registration attempt with empty username or password")
		return nil, models.ErrInvalidInput
	}

	// Hash with the pepper applied first.
	hashedPassword, err := hashPassword(password, s.cfg.PasswordPepper)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// Uniqueness violations are already mapped by the repository.
		if !errors.Is(err, models.ErrUserAlreadyExists) {
			s.logger.Error("Failed to create user via repository", zap.String("username", username), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("User registered successfully", zap.Int64("userID", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login authenticates a user and returns a signed token.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	s.logger.Info("Login attempt", zap.String("username", username))
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Warn("Login failed: user not found", zap.String("username", username))
			return nil, models.ErrInvalidCredentials
		}
		s.logger.Error("Login failed: error getting user from repository", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPasswordHash(password, user.PasswordHash, s.cfg.PasswordPepper) {
		s.logger.Warn("Login failed: invalid password", zap.String("username", username), zap.Int64("userID", user.ID))
		return nil, models.ErrInvalidCredentials
	}

	td, err := s.createToken(user)
	if err != nil {
		s.logger.Error("Failed to create token during login", zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	s.logger.Info("User logged in successfully", zap.Int64("userID", user.ID))
	return td, nil
}

// VerifyToken parses and validates a signed token, returning its claims.
func (s *authServiceImpl) VerifyToken(_ context.Context, tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Warn("Verification attempt with expired token")
			return nil, models.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			s.logger.Warn("Verification attempt with malformed token")
			return nil, models.ErrTokenMalformed
		}
		s.logger.Warn("Failed to parse token", zap.Error(err))
		return nil, models.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		s.logger.Warn("Token claims have unexpected type or token is invalid")
		return nil, models.ErrTokenInvalid
	}

	return claims, nil
}

// createToken generates a new signed token for a user.
func (s *authServiceImpl) createToken(user *models.User) (*models.TokenDetails, error) {
	expires := time.Now().Add(s.cfg.TokenTTL)
	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.TokenDetails{
		UserID:   user.ID,
		Username: user.Username,
		Token:    signed,
		Expires:  expires.Unix(),
	}, nil
}

// applyPepper applies HMAC-SHA256 using the pepper as the key.
func applyPepper(password, pepper string) []byte {
	h := hmac.New(sha256.New, []byte(pepper))
	h.Write([]byte(password))
	return h.Sum(nil)
}

// hashPassword generates a bcrypt hash of the password after applying the pepper.
func hashPassword(password, pepper string) (string, error) {
	pepperedPassword := applyPepper(password, pepper)
	bytes, err := bcrypt.GenerateFromPassword(pepperedPassword, bcrypt.DefaultCost)
	return string(bytes), err
}

// checkPasswordHash compares a plain text password (after applying pepper) with a stored hash.
func checkPasswordHash(password, hash, pepper string) bool {
	pepperedPassword := applyPepper(password, pepper)
	err := bcrypt.CompareHashAndPassword([]byte(hash), pepperedPassword)
	return err == nil
}
