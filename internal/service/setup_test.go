package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edukamer/bootcamphub/internal/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// Each test gets its own database so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return db
}

func createTestReferrer(t *testing.T, db *gorm.DB, code, phone string) *model.User {
	t.Helper()

	user := &model.User{
		Name:         "Referrer " + code,
		Email:        code + "@example.com",
		Phone:        phone,
		Password:     "hashed",
		Role:         model.RoleReferrer,
		ReferralCode: &code,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestStaff(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Sales Agent",
		Email:    fmt.Sprintf("agent-%s@example.com", uuid.NewString()[:8]),
		Password: "hashed",
		Role:     model.RoleSalesAgent,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPromotion(t *testing.T, db *gorm.DB, reward, discount int, active bool) *model.Promotion {
	t.Helper()

	promotion := &model.Promotion{
		Name:            "Early Bird",
		RewardAmount:    reward,
		DiscountPercent: discount,
		IsActive:        active,
	}
	require.NoError(t, db.Create(promotion).Error)
	return promotion
}

func createTestStudent(t *testing.T, db *gorm.DB, createdBy uuid.UUID) *model.Student {
	t.Helper()

	student := &model.Student{
		FullName:    "Test Student",
		Email:       fmt.Sprintf("student-%s@example.com", uuid.NewString()[:8]),
		PhoneNumber: "690000000",
		CreatedByID: createdBy,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func createTestBootcamp(t *testing.T, db *gorm.DB, target int) *model.BootcampSession {
	t.Helper()

	session := &model.BootcampSession{
		Name:           "Fullstack Web",
		StartDate:      time.Now().AddDate(0, 1, 0),
		EndDate:        time.Now().AddDate(0, 3, 0),
		TargetCapacity: target,
		Status:         model.BootcampStatusUpcoming,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}
