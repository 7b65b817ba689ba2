package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edukamer/bootcamphub/internal/config"
	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
	"edukamer/bootcamphub/internal/service"
	"edukamer/bootcamphub/pkg/crypto"
	jwtpkg "edukamer/bootcamphub/pkg/jwt"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.CORS = config.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}

	zapLogger := zap.NewNop()
	jwtManager := jwtpkg.NewManager("test-signing-key", "bootcamphub-test", 15*time.Minute, 24*time.Hour)
	stateStore := repository.NewMemoryStateStore()
	notifier := service.NewNoopNotifier()

	userRepo := repository.NewPGUserRepository(db)
	promotionRepo := repository.NewPGPromotionRepository(db)
	leadRepo := repository.NewPGLeadRepository(db)
	studentRepo := repository.NewPGStudentRepository(db)
	bootcampRepo := repository.NewPGBootcampRepository(db)
	enrollmentRepo := repository.NewPGEnrollmentRepository(db)

	authService := service.NewAuthService(userRepo, promotionRepo, stateStore, jwtManager, notifier)
	leadService := service.NewLeadService(leadRepo, userRepo, promotionRepo, notifier)

	router := SetupRouter(
		cfg, zapLogger, jwtManager,
		NewAuthHandler(authService),
		NewReferralHandler(authService, leadService),
		NewLeadHandler(leadService),
		NewPromotionHandler(service.NewPromotionService(promotionRepo)),
		NewStudentHandler(service.NewStudentService(studentRepo)),
		NewBootcampHandler(service.NewBootcampService(bootcampRepo)),
		NewEnrollmentHandler(service.NewEnrollmentService(enrollmentRepo, studentRepo, bootcampRepo)),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func createStaffUser(t *testing.T, db *gorm.DB, email, password string) *model.User {
	t.Helper()

	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	user := &model.User{
		Name:     "Agent",
		Email:    email,
		Password: hash,
		Role:     model.RoleSalesAgent,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReferralFlowOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	promotion := &model.Promotion{Name: "Early Bird", RewardAmount: 25000, DiscountPercent: 10, IsActive: true}
	require.NoError(t, db.Create(promotion).Error)

	// Register a referrer with a chosen code.
	w := doJSON(t, router, http.MethodPost, "/api/v1/referral/register", "", gin.H{
		"name":          "Alice",
		"email":         "alice@example.com",
		"password":      "secret-password",
		"referral_code": "ALICE2026",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The capture page can resolve the code publicly.
	w = doJSON(t, router, http.MethodGet, "/api/v1/referral/code/ALICE2026", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Public lead submission.
	w = doJSON(t, router, http.MethodPost, "/api/v1/referral/leads", "", gin.H{
		"name":          "Jean",
		"phone":         "699888777",
		"referral_code": "ALICE2026",
		"promotion_id":  promotion.ID.String(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate phone under the same promotion conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/v1/referral/leads", "", gin.H{
		"name":          "Jean Again",
		"phone":         "699888777",
		"referral_code": "ALICE2026",
		"promotion_id":  promotion.ID.String(),
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown code is a 400, not a 404.
	w = doJSON(t, router, http.MethodPost, "/api/v1/referral/leads", "", gin.H{
		"name":          "Jean",
		"phone":         "690000001",
		"referral_code": "NOSUCHCODE",
		"promotion_id":  promotion.ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The referrer dashboard requires a token.
	w = doJSON(t, router, http.MethodGet, "/api/v1/referral/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := loginToken(t, router, "alice@example.com", "secret-password")
	w = doJSON(t, router, http.MethodGet, "/api/v1/referral/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/referral/leads", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffGate(t *testing.T) {
	router, db := newTestRouter(t)

	promotion := &model.Promotion{Name: "Early Bird", RewardAmount: 25000, DiscountPercent: 10, IsActive: true}
	require.NoError(t, db.Create(promotion).Error)
	createStaffUser(t, db, "agent@example.com", "agent-password")

	w := doJSON(t, router, http.MethodPost, "/api/v1/referral/register", "", gin.H{
		"name":          "Alice",
		"email":         "alice@example.com",
		"password":      "secret-password",
		"referral_code": "ALICE2026",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/referral/leads", "", gin.H{
		"name":          "Jean",
		"phone":         "699888777",
		"referral_code": "ALICE2026",
		"promotion_id":  promotion.ID.String(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var submitted struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	leadPath := "/api/v1/leads/" + submitted.Data.ID

	referrerToken := loginToken(t, router, "alice@example.com", "secret-password")
	staffToken := loginToken(t, router, "agent@example.com", "agent-password")

	// Any authenticated user may read and update leads.
	w = doJSON(t, router, http.MethodGet, "/api/v1/leads", referrerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, leadPath, referrerToken, gin.H{
		"status": "contacted",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Lead deletion and promotion mutations stay staff-only.
	w = doJSON(t, router, http.MethodDelete, leadPath, referrerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/promotions", referrerToken, gin.H{
		"name":             "Sneaky",
		"reward_amount":    1,
		"discount_percent": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, leadPath, staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPromotionVisibility(t *testing.T) {
	router, db := newTestRouter(t)

	active := &model.Promotion{Name: "Active", RewardAmount: 1000, DiscountPercent: 5, IsActive: true}
	inactive := &model.Promotion{Name: "Retired", RewardAmount: 1000, DiscountPercent: 5, IsActive: false}
	require.NoError(t, db.Create(active).Error)
	require.NoError(t, db.Create(inactive).Error)
	createStaffUser(t, db, "agent@example.com", "agent-password")

	var resp struct {
		Data []model.Promotion `json:"data"`
	}

	// Anonymous callers only see active promotions.
	w := doJSON(t, router, http.MethodGet, "/api/v1/promotions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	// Staff see everything on the same route.
	staffToken := loginToken(t, router, "agent@example.com", "agent-password")
	w = doJSON(t, router, http.MethodGet, "/api/v1/promotions", staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}
