package service

import (
	"context"

	"fragmented-narratives/internal/models"
)

// AuthService defines the interface for authentication and authorization logic.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenDetails, error)
	VerifyToken(ctx context.Context, tokenString string) (*models.Claims, error)
}
