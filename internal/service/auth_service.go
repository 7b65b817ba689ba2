package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
	"edukamer/bootcamphub/pkg/crypto"
	jwtpkg "edukamer/bootcamphub/pkg/jwt"
)

// generateCodeAttempts bounds the regenerate-on-collision loop for
// server-generated referral codes.
const generateCodeAttempts = 5

const refreshKeyPrefix = "refresh_jti:"

// TokenSet represents a set of tokens returned after authentication.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RegisterReferrerInput struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	ReferralCode string     // optional: generated when empty
	PromotionID  *uuid.UUID // optional: must reference an active promotion
}

type AuthService interface {
	RegisterReferrer(ctx context.Context, input RegisterReferrerInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*TokenSet, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenSet, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo      repository.UserRepository
	promotionRepo repository.PromotionRepository
	stateStore    repository.StateStore
	jwtManager    *jwtpkg.Manager
	notifier      Notifier
}

func NewAuthService(
	userRepo repository.UserRepository,
	promotionRepo repository.PromotionRepository,
	stateStore repository.StateStore,
	jwtManager *jwtpkg.Manager,
	notifier Notifier,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		stateStore:    stateStore,
		jwtManager:    jwtManager,
		notifier:      notifier,
	}
}

func (s *authService) RegisterReferrer(ctx context.Context, input RegisterReferrerInput) (*model.User, error) {
	// 1. Resolve the referral code: caller-chosen (validated, normalized) or
	// server-generated with a bounded regenerate loop.
	var code string
	if input.ReferralCode != "" {
		code = strings.ToUpper(strings.TrimSpace(input.ReferralCode))
		if !crypto.ValidReferralCode(code) {
			return nil, ErrReferralCodeFormat
		}
		if taken, err := s.referralCodeTaken(ctx, code); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrReferralCodeTaken
		}
	} else {
		var err error
		code, err = s.generateUniqueCode(ctx)
		if err != nil {
			return nil, err
		}
	}

	// 2. Email must be unused
	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	// 3. Optional promotion must exist and be active
	if input.PromotionID != nil {
		promotion, err := s.promotionRepo.GetByID(ctx, *input.PromotionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPromotionInactive
			}
			return nil, fmt.Errorf("find promotion: %w", err)
		}
		if !promotion.IsActive {
			return nil, ErrPromotionInactive
		}
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Password:      hash,
		Role:          model.RoleReferrer,
		ReferralCode:  &code,
		WalletBalance: 0,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.notifier.AccountCreated(AccountCreatedEvent{
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		ReferralCode: code,
		Role:         string(user.Role),
	})

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenSet, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !crypto.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the token pair: the presented refresh token's JTI must still
// be registered in the state store, and is consumed on use.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	claims, err := s.validRefreshClaims(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.stateStore.Delete(ctx, refreshKeyPrefix+claims.ID); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.validRefreshClaims(ctx, refreshToken)
	if err != nil {
		return err
	}
	return s.stateStore.Delete(ctx, refreshKeyPrefix+claims.ID)
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (*TokenSet, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, claims, err := s.jwtManager.GenerateRefreshToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	key := refreshKeyPrefix + claims.ID
	if err := s.stateStore.Set(ctx, key, []byte(user.ID.String()), s.jwtManager.RefreshTokenTTL()); err != nil {
		return nil, fmt.Errorf("register refresh token: %w", err)
	}

	return &TokenSet{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *authService) validRefreshClaims(ctx context.Context, refreshToken string) (*jwtpkg.Claims, error) {
	claims, err := s.jwtManager.Validate(refreshToken)
	if err != nil || claims.TokenType != jwtpkg.TokenTypeRefresh {
		return nil, ErrRefreshTokenInvalid
	}

	val, err := s.stateStore.Get(ctx, refreshKeyPrefix+claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check refresh token: %w", err)
	}
	if val == nil {
		return nil, ErrRefreshTokenInvalid
	}
	return claims, nil
}

func (s *authService) referralCodeTaken(ctx context.Context, code string) (bool, error) {
	_, err := s.userRepo.GetByReferralCode(ctx, code)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("check referral code: %w", err)
}

func (s *authService) generateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < generateCodeAttempts; i++ {
		code, err := crypto.GenerateReferralCode()
		if err != nil {
			return "", fmt.Errorf("generate referral code: %w", err)
		}
		taken, err := s.referralCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique referral code after %d attempts", generateCodeAttempts)
}
