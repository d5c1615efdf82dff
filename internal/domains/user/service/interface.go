package service

import (
	"context"

	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
