package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
)

type CreatePromotionInput struct {
	Name            string
	Description     string
	RewardAmount    int
	DiscountPercent int
	IsActive        *bool
}

type UpdatePromotionInput struct {
	Name            *string
	Description     *string
	RewardAmount    *int
	DiscountPercent *int
	IsActive        *bool
}

type PromotionService interface {
	Create(ctx context.Context, input CreatePromotionInput) (*model.Promotion, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	List(ctx context.Context, activeOnly bool) ([]model.Promotion, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePromotionInput) (*model.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionService struct {
	promotionRepo repository.PromotionRepository
}

func NewPromotionService(promotionRepo repository.PromotionRepository) PromotionService {
	return &promotionService{promotionRepo: promotionRepo}
}

func (s *promotionService) Create(ctx context.Context, input CreatePromotionInput) (*model.Promotion, error) {
	promotion := &model.Promotion{
		Name:            input.Name,
		Description:     input.Description,
		RewardAmount:    input.RewardAmount,
		DiscountPercent: input.DiscountPercent,
		IsActive:        true,
	}
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}
	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}
	return promotion, nil
}

func (s *promotionService) Get(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	promotion, err := s.promotionRepo.GetByIDWithLeads(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, fmt.Errorf("find promotion: %w", err)
	}
	return promotion, nil
}

func (s *promotionService) List(ctx context.Context, activeOnly bool) ([]model.Promotion, error) {
	return s.promotionRepo.List(ctx, activeOnly)
}

func (s *promotionService) Update(ctx context.Context, id uuid.UUID, input UpdatePromotionInput) (*model.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, fmt.Errorf("find promotion: %w", err)
	}

	if input.Name != nil {
		promotion.Name = *input.Name
	}
	if input.Description != nil {
		promotion.Description = *input.Description
	}
	if input.RewardAmount != nil {
		promotion.RewardAmount = *input.RewardAmount
	}
	if input.DiscountPercent != nil {
		promotion.DiscountPercent = *input.DiscountPercent
	}
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, fmt.Errorf("update promotion: %w", err)
	}
	return promotion, nil
}

// Delete removes the promotion together with its leads.
func (s *promotionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromotionNotFound
		}
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}
