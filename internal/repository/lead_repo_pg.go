package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
)

type pgLeadRepository struct {
	db *gorm.DB
}

func NewPGLeadRepository(db *gorm.DB) LeadRepository {
	return &pgLeadRepository{db: db}
}

func (r *pgLeadRepository) Create(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *pgLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.WithContext(ctx).
		Preload("Referrer").
		Preload("Promotion").
		First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *pgLeadRepository) GetByPhoneAndPromotion(ctx context.Context, phone string, promotionID uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.WithContext(ctx).
		Where("phone = ? AND promotion_id = ?", phone, promotionID).
		First(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *pgLeadRepository) List(ctx context.Context, filter LeadFilter) ([]model.Lead, error) {
	q := r.db.WithContext(ctx).
		Preload("Referrer").
		Preload("Promotion").
		Order("created_at DESC")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.PromotionID != nil {
		q = q.Where("promotion_id = ?", *filter.PromotionID)
	}
	if filter.ReferrerID != nil {
		q = q.Where("referrer_id = ?", *filter.ReferrerID)
	}

	var leads []model.Lead
	if err := q.Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *pgLeadRepository) ListRecentByReferrer(ctx context.Context, referrerID uuid.UUID, limit int) ([]model.Lead, error) {
	var leads []model.Lead
	if err := r.db.WithContext(ctx).
		Preload("Promotion").
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *pgLeadRepository) CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Where("referrer_id = ?", referrerID).
		Count(&count).Error
	return count, err
}

func (r *pgLeadRepository) StatusCountsByReferrer(ctx context.Context, referrerID uuid.UUID) (map[model.LeadStatus]int64, error) {
	var rows []struct {
		Status model.LeadStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Select("status, COUNT(*) AS count").
		Where("referrer_id = ?", referrerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[model.LeadStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *pgLeadRepository) SumConvertedRewardsByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Joins("JOIN promotions ON promotions.id = leads.promotion_id").
		Where("leads.referrer_id = ? AND leads.status = ?", referrerID, model.LeadStatusConverted).
		Select("COALESCE(SUM(promotions.reward_amount), 0)").
		Scan(&total).Error
	return total, err
}

// UpdateWithWalletCredit keeps the status transition and the wallet credit in
// one transaction: either both rows persist or neither does.
func (r *pgLeadRepository) UpdateWithWalletCredit(ctx context.Context, lead *model.Lead, referrerID uuid.UUID, creditAmount int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lead{}).
			Where("id = ?", lead.ID).
			Updates(map[string]interface{}{
				"status":       lead.Status,
				"notes":        lead.Notes,
				"converted_at": lead.ConvertedAt,
			}).Error; err != nil {
			return err
		}
		if creditAmount > 0 {
			if err := tx.Model(&model.User{}).
				Where("id = ?", referrerID).
				UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", creditAmount)).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pgLeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Lead{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
