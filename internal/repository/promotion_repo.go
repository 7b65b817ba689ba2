package repository

import (
	"context"

	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *model.Promotion) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	GetByIDWithLeads(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	List(ctx context.Context, activeOnly bool) ([]model.Promotion, error)
	Update(ctx context.Context, promotion *model.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}
