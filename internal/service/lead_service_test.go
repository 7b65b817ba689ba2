package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
)

func newLeadService(db *gorm.DB) LeadService {
	return NewLeadService(
		repository.NewPGLeadRepository(db),
		repository.NewPGUserRepository(db),
		repository.NewPGPromotionRepository(db),
		NewNoopNotifier(),
	)
}

func TestSubmitLead(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	referrer := createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)

	lead, err := svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean Mballa",
		Phone:        "699888777",
		ReferralCode: "GOODCODE",
		PromotionID:  promotion.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jean Mballa", lead.Name)
	assert.Equal(t, promotion.Name, lead.PromotionName)
	assert.Equal(t, 10, lead.Discount)
	assert.Equal(t, referrer.Name, lead.ReferrerName)

	stored, err := svc.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusPending, stored.Status)
	assert.Equal(t, referrer.ID, stored.ReferrerID)
}

func TestSubmitLead_UnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)

	promotion := createTestPromotion(t, db, 25000, 10, true)

	_, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "NOSUCHCODE",
		PromotionID:  promotion.ID,
	})
	assert.ErrorIs(t, err, ErrReferralCodeNotFound)
}

func TestSubmitLead_InactivePromotion(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	createTestReferrer(t, db, "GOODCODE", "677111222")
	inactive := createTestPromotion(t, db, 25000, 10, false)

	_, err := svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "GOODCODE",
		PromotionID:  inactive.ID,
	})
	assert.ErrorIs(t, err, ErrPromotionInactive)

	// Unknown promotion reads the same to the caller.
	_, err = svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "GOODCODE",
		PromotionID:  uuid.New(),
	})
	assert.ErrorIs(t, err, ErrPromotionInactive)
}

func TestSubmitLead_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	createTestReferrer(t, db, "CODEONE", "677111222")
	createTestReferrer(t, db, "CODETWO", "677333444")
	promotion := createTestPromotion(t, db, 25000, 10, true)
	other := createTestPromotion(t, db, 10000, 5, true)

	_, err := svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "CODEONE",
		PromotionID:  promotion.ID,
	})
	require.NoError(t, err)

	// Same phone under the same promotion is rejected, even through a
	// different referrer.
	_, err = svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean Again",
		Phone:        "699888777",
		ReferralCode: "CODETWO",
		PromotionID:  promotion.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateLead)

	// The same phone under another promotion is fine.
	_, err = svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "CODEONE",
		PromotionID:  other.ID,
	})
	assert.NoError(t, err)
}

func TestSubmitLead_SelfReferral(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)

	createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)

	_, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:         "Me Myself",
		Phone:        "677111222",
		ReferralCode: "GOODCODE",
		PromotionID:  promotion.ID,
	})
	assert.ErrorIs(t, err, ErrSelfReferral)
}

func TestUpdateStatus_ConvertCreditsWalletOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	userRepo := repository.NewPGUserRepository(db)
	ctx := context.Background()

	referrer := createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)

	submitted, err := svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "GOODCODE",
		PromotionID:  promotion.ID,
	})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(ctx, submitted.ID, model.LeadStatusConverted, nil)
	require.NoError(t, err)
	assert.True(t, result.Credited)
	assert.Equal(t, 25000, result.CreditedAmount)
	assert.NotNil(t, result.Lead.ConvertedAt)

	user, err := userRepo.GetByID(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 25000, user.WalletBalance)

	// Re-submitting "converted" must not credit a second time.
	result, err = svc.UpdateStatus(ctx, submitted.ID, model.LeadStatusConverted, nil)
	require.NoError(t, err)
	assert.False(t, result.Credited)
	assert.Equal(t, 0, result.CreditedAmount)

	user, err = userRepo.GetByID(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 25000, user.WalletBalance)
}

func TestUpdateStatus_NonConvertingTransition(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	userRepo := repository.NewPGUserRepository(db)
	ctx := context.Background()

	referrer := createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)

	submitted, err := svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "GOODCODE",
		PromotionID:  promotion.ID,
	})
	require.NoError(t, err)

	notes := "called, interested"
	result, err := svc.UpdateStatus(ctx, submitted.ID, model.LeadStatusContacted, &notes)
	require.NoError(t, err)
	assert.False(t, result.Credited)
	assert.Equal(t, model.LeadStatusContacted, result.Lead.Status)
	require.NotNil(t, result.Lead.Notes)
	assert.Equal(t, notes, *result.Lead.Notes)

	user, err := userRepo.GetByID(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, user.WalletBalance)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.LeadStatus("bogus"), nil)
	assert.ErrorIs(t, err, ErrInvalidLeadStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.LeadStatusContacted, nil)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestDeleteLead(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)

	submitted, err := svc.Submit(ctx, SubmitLeadInput{
		Name:         "Jean",
		Phone:        "699888777",
		ReferralCode: "GOODCODE",
		PromotionID:  promotion.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, submitted.ID))
	_, err = svc.Get(ctx, submitted.ID)
	assert.ErrorIs(t, err, ErrLeadNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, submitted.ID), ErrLeadNotFound)
}

func TestReferrerStats(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	referrer := createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)

	phones := []string{"699000001", "699000002", "699000003"}
	var ids []uuid.UUID
	for _, phone := range phones {
		submitted, err := svc.Submit(ctx, SubmitLeadInput{
			Name:         "Lead " + phone,
			Phone:        phone,
			ReferralCode: "GOODCODE",
			PromotionID:  promotion.ID,
		})
		require.NoError(t, err)
		ids = append(ids, submitted.ID)
	}

	_, err := svc.UpdateStatus(ctx, ids[0], model.LeadStatusConverted, nil)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, ids[1], model.LeadStatusContacted, nil)
	require.NoError(t, err)

	stats, err := svc.ReferrerStats(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, "GOODCODE", stats.ReferralCode)
	assert.Equal(t, 25000, stats.WalletBalance)
	assert.Equal(t, int64(3), stats.TotalLeads)
	assert.Equal(t, int64(1), stats.StatusCounts[model.LeadStatusConverted])
	assert.Equal(t, int64(1), stats.StatusCounts[model.LeadStatusContacted])
	assert.Equal(t, int64(1), stats.StatusCounts[model.LeadStatusPending])
	assert.Equal(t, int64(0), stats.StatusCounts[model.LeadStatusLost])
	assert.Equal(t, int64(25000), stats.PotentialEarnings)
	assert.Len(t, stats.RecentLeads, 3)
}

func TestReferrerInfo(t *testing.T) {
	db := newTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	referrer := createTestReferrer(t, db, "GOODCODE", "677111222")
	promotion := createTestPromotion(t, db, 25000, 10, true)
	inactive := createTestPromotion(t, db, 10000, 5, false)

	info, err := svc.ReferrerInfo(ctx, "GOODCODE", &promotion.ID)
	require.NoError(t, err)
	assert.Equal(t, referrer.Name, info.ReferrerName)
	require.NotNil(t, info.Promotion)
	assert.Equal(t, promotion.ID, info.Promotion.ID)

	_, err = svc.ReferrerInfo(ctx, "GOODCODE", &inactive.ID)
	assert.ErrorIs(t, err, ErrPromotionInactive)

	_, err = svc.ReferrerInfo(ctx, "NOSUCHCODE", nil)
	assert.ErrorIs(t, err, ErrReferralCodeNotFound)
}
