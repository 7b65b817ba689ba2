package repository

import (
	"context"

	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	Search(ctx context.Context, term string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}
