package repository

import (
	"context"

	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByReferralCode(ctx context.Context, code string) (*model.User, error)
}
