package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/repository"
)

func newPromotionService(db *gorm.DB) PromotionService {
	return NewPromotionService(repository.NewPGPromotionRepository(db))
}

func TestCreatePromotion_DefaultsActive(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePromotionInput{
		Name:            "Early Bird",
		RewardAmount:    25000,
		DiscountPercent: 10,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestCreatePromotion_InactiveStaysInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(db)
	ctx := context.Background()

	inactive := false
	created, err := svc.Create(ctx, CreatePromotionInput{
		Name:            "Retired",
		RewardAmount:    25000,
		DiscountPercent: 10,
		IsActive:        &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)

	// The inactive flag must survive the round trip to the database.
	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestUpdatePromotion_Deactivate(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePromotionInput{
		Name:            "Early Bird",
		RewardAmount:    25000,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, created.ID, UpdatePromotionInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
