package repository

import (
	"context"

	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/user/model"
)

type RepositoryInterface interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
