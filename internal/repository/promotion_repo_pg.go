package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
)

type pgPromotionRepository struct {
	db *gorm.DB
}

func NewPGPromotionRepository(db *gorm.DB) PromotionRepository {
	return &pgPromotionRepository{db: db}
}

func (r *pgPromotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *pgPromotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *pgPromotionRepository) GetByIDWithLeads(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.WithContext(ctx).
		Preload("Leads", func(db *gorm.DB) *gorm.DB {
			return db.Order("leads.created_at DESC")
		}).
		Preload("Leads.Referrer").
		First(&promotion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *pgPromotionRepository) List(ctx context.Context, activeOnly bool) ([]model.Promotion, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var promotions []model.Promotion
	if err := q.Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *pgPromotionRepository) Update(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

// Delete removes the promotion together with its leads in one transaction.
func (r *pgPromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Lead{}, "promotion_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Promotion{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
