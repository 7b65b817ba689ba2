package repository

import (
	"context"

	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
)

type BootcampRepository interface {
	Create(ctx context.Context, session *model.BootcampSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BootcampSession, error)
	List(ctx context.Context, status *model.BootcampStatus) ([]model.BootcampSession, error)
	Update(ctx context.Context, session *model.BootcampSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}
