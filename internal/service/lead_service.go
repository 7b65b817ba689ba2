package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
)

type SubmitLeadInput struct {
	Name         string
	Phone        string
	Email        *string
	ReferralCode string
	PromotionID  uuid.UUID
}

// SubmittedLead is the public summary returned to the lead capture page.
type SubmittedLead struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PromotionName string    `json:"promotion_name"`
	Discount      int       `json:"discount"`
	ReferrerName  string    `json:"referrer_name"`
}

type LeadUpdateResult struct {
	Lead           *model.Lead `json:"lead"`
	Credited       bool        `json:"credited"`
	CreditedAmount int         `json:"credited_amount"`
}

type ReferrerInfo struct {
	ReferrerName string           `json:"referrer_name"`
	ReferralCode string           `json:"referral_code"`
	Promotion    *model.Promotion `json:"promotion,omitempty"`
}

type RecentLead struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Status        model.LeadStatus `json:"status"`
	PromotionName string           `json:"promotion_name"`
	RewardAmount  int              `json:"reward_amount"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ReferrerStats struct {
	ReferralCode      string                     `json:"referral_code"`
	WalletBalance     int                        `json:"wallet_balance"`
	TotalLeads        int64                      `json:"total_leads"`
	StatusCounts      map[model.LeadStatus]int64 `json:"status_counts"`
	PotentialEarnings int64                      `json:"potential_earnings"`
	RecentLeads       []RecentLead               `json:"recent_leads"`
}

type LeadService interface {
	Submit(ctx context.Context, input SubmitLeadInput) (*SubmittedLead, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, filter repository.LeadFilter) ([]model.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeadStatus, notes *string) (*LeadUpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReferrerInfo(ctx context.Context, code string, promotionID *uuid.UUID) (*ReferrerInfo, error)
	ReferrerStats(ctx context.Context, referrerID uuid.UUID) (*ReferrerStats, error)
}

type leadService struct {
	leadRepo      repository.LeadRepository
	userRepo      repository.UserRepository
	promotionRepo repository.PromotionRepository
	notifier      Notifier
}

func NewLeadService(
	leadRepo repository.LeadRepository,
	userRepo repository.UserRepository,
	promotionRepo repository.PromotionRepository,
	notifier Notifier,
) LeadService {
	return &leadService{
		leadRepo:      leadRepo,
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		notifier:      notifier,
	}
}

func (s *leadService) Submit(ctx context.Context, input SubmitLeadInput) (*SubmittedLead, error) {
	// 1. Resolve the referrer by code
	referrer, err := s.userRepo.GetByReferralCode(ctx, input.ReferralCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralCodeNotFound
		}
		return nil, fmt.Errorf("find referrer: %w", err)
	}

	// 2. Promotion must exist and be active
	promotion, err := s.promotionRepo.GetByID(ctx, input.PromotionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionInactive
		}
		return nil, fmt.Errorf("find promotion: %w", err)
	}
	if !promotion.IsActive {
		return nil, ErrPromotionInactive
	}

	// 3. Same phone may not register twice under the same promotion
	_, err = s.leadRepo.GetByPhoneAndPromotion(ctx, input.Phone, input.PromotionID)
	if err == nil {
		return nil, ErrDuplicateLead
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate lead: %w", err)
	}

	// 4. The referrer may not refer their own phone
	if referrer.Phone != "" && referrer.Phone == input.Phone {
		return nil, ErrSelfReferral
	}

	lead := &model.Lead{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Status:      model.LeadStatusPending,
		ReferrerID:  referrer.ID,
		PromotionID: promotion.ID,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		// The (phone, promotion) unique index catches concurrent duplicates
		// the pre-check missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLead
		}
		return nil, fmt.Errorf("create lead: %w", err)
	}

	email := ""
	if input.Email != nil {
		email = *input.Email
	}
	code := ""
	if referrer.ReferralCode != nil {
		code = *referrer.ReferralCode
	}
	s.notifier.LeadReferred(LeadReferredEvent{
		LeadName:        lead.Name,
		LeadPhone:       lead.Phone,
		LeadEmail:       email,
		ReferrerName:    referrer.Name,
		ReferrerCode:    code,
		PromotionName:   promotion.Name,
		DiscountPercent: promotion.DiscountPercent,
	})

	return &SubmittedLead{
		ID:            lead.ID,
		Name:          lead.Name,
		PromotionName: promotion.Name,
		Discount:      promotion.DiscountPercent,
		ReferrerName:  referrer.Name,
	}, nil
}

func (s *leadService) Get(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return lead, nil
}

func (s *leadService) List(ctx context.Context, filter repository.LeadFilter) ([]model.Lead, error) {
	return s.leadRepo.List(ctx, filter)
}

// UpdateStatus applies a status transition. Converting a lead credits the
// referrer's wallet with the promotion's reward, exactly once: re-submitting
// "converted" on an already converted lead changes nothing. The status update
// and the credit commit in one transaction.
func (s *leadService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeadStatus, notes *string) (*LeadUpdateResult, error) {
	if !status.Valid() {
		return nil, ErrInvalidLeadStatus
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}

	oldStatus := lead.Status
	wasConverted := oldStatus != model.LeadStatusConverted && status == model.LeadStatusConverted

	lead.Status = status
	if notes != nil {
		lead.Notes = notes
	}

	creditAmount := 0
	if wasConverted {
		now := time.Now()
		lead.ConvertedAt = &now
		creditAmount = lead.Promotion.RewardAmount
	}

	if err := s.leadRepo.UpdateWithWalletCredit(ctx, lead, lead.ReferrerID, creditAmount); err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}

	if oldStatus != status {
		s.notifier.LeadStatusChanged(LeadStatusChangedEvent{
			LeadName:      lead.Name,
			ReferrerName:  lead.Referrer.Name,
			OldStatus:     string(oldStatus),
			NewStatus:     string(status),
			PromotionName: lead.Promotion.Name,
		})
	}

	return &LeadUpdateResult{
		Lead:           lead,
		Credited:       wasConverted,
		CreditedAmount: creditAmount,
	}, nil
}

// Delete removes a lead unconditionally. A prior wallet credit is not
// reversed: deletion is administrative cleanup, not an un-conversion.
func (s *leadService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

func (s *leadService) ReferrerInfo(ctx context.Context, code string, promotionID *uuid.UUID) (*ReferrerInfo, error) {
	referrer, err := s.userRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralCodeNotFound
		}
		return nil, fmt.Errorf("find referrer: %w", err)
	}

	info := &ReferrerInfo{ReferrerName: referrer.Name, ReferralCode: code}
	if promotionID != nil {
		promotion, err := s.promotionRepo.GetByID(ctx, *promotionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPromotionInactive
			}
			return nil, fmt.Errorf("find promotion: %w", err)
		}
		if !promotion.IsActive {
			return nil, ErrPromotionInactive
		}
		info.Promotion = promotion
	}
	return info, nil
}

func (s *leadService) ReferrerStats(ctx context.Context, referrerID uuid.UUID) (*ReferrerStats, error) {
	user, err := s.userRepo.GetByID(ctx, referrerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	total, err := s.leadRepo.CountByReferrer(ctx, referrerID)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}

	counts, err := s.leadRepo.StatusCountsByReferrer(ctx, referrerID)
	if err != nil {
		return nil, fmt.Errorf("count leads by status: %w", err)
	}
	statusCounts := map[model.LeadStatus]int64{
		model.LeadStatusPending:   0,
		model.LeadStatusContacted: 0,
		model.LeadStatusConverted: 0,
		model.LeadStatusLost:      0,
	}
	for status, count := range counts {
		statusCounts[status] = count
	}

	earnings, err := s.leadRepo.SumConvertedRewardsByReferrer(ctx, referrerID)
	if err != nil {
		return nil, fmt.Errorf("sum converted rewards: %w", err)
	}

	recent, err := s.leadRepo.ListRecentByReferrer(ctx, referrerID, 10)
	if err != nil {
		return nil, fmt.Errorf("list recent leads: %w", err)
	}
	recentLeads := make([]RecentLead, 0, len(recent))
	for _, lead := range recent {
		recentLeads = append(recentLeads, RecentLead{
			ID:            lead.ID,
			Name:          lead.Name,
			Phone:         lead.Phone,
			Status:        lead.Status,
			PromotionName: lead.Promotion.Name,
			RewardAmount:  lead.Promotion.RewardAmount,
			CreatedAt:     lead.CreatedAt,
		})
	}

	code := ""
	if user.ReferralCode != nil {
		code = *user.ReferralCode
	}
	return &ReferrerStats{
		ReferralCode:      code,
		WalletBalance:     user.WalletBalance,
		TotalLeads:        total,
		StatusCounts:      statusCounts,
		PotentialEarnings: earnings,
		RecentLeads:       recentLeads,
	}, nil
}
