package repository

import (
	"context"

	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
)

// LeadFilter narrows lead listings; nil fields are ignored.
type LeadFilter struct {
	Status      *model.LeadStatus
	PromotionID *uuid.UUID
	ReferrerID  *uuid.UUID
}

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	GetByPhoneAndPromotion(ctx context.Context, phone string, promotionID uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]model.Lead, error)
	ListRecentByReferrer(ctx context.Context, referrerID uuid.UUID, limit int) ([]model.Lead, error)
	CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error)
	StatusCountsByReferrer(ctx context.Context, referrerID uuid.UUID) (map[model.LeadStatus]int64, error)
	SumConvertedRewardsByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error)
	// UpdateWithWalletCredit persists the lead and, when creditAmount > 0,
	// increments the referrer's wallet balance in the same transaction.
	UpdateWithWalletCredit(ctx context.Context, lead *model.Lead, referrerID uuid.UUID, creditAmount int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
