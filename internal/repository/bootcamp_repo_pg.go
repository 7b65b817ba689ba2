package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
)

type pgBootcampRepository struct {
	db *gorm.DB
}

func NewPGBootcampRepository(db *gorm.DB) BootcampRepository {
	return &pgBootcampRepository{db: db}
}

func (r *pgBootcampRepository) Create(ctx context.Context, session *model.BootcampSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *pgBootcampRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BootcampSession, error) {
	var session model.BootcampSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *pgBootcampRepository) List(ctx context.Context, status *model.BootcampStatus) ([]model.BootcampSession, error) {
	q := r.db.WithContext(ctx).Order("start_date DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var sessions []model.BootcampSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *pgBootcampRepository) Update(ctx context.Context, session *model.BootcampSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *pgBootcampRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BootcampSession{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
