package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/repository"
	"edukamer/bootcamphub/internal/service"
	"edukamer/bootcamphub/pkg/response"
)

// ReferralHandler serves the public referral program surface: referrer
// registration, lead capture and the referrer dashboard endpoints.
type ReferralHandler struct {
	authService service.AuthService
	leadService service.LeadService
}

func NewReferralHandler(authService service.AuthService, leadService service.LeadService) *ReferralHandler {
	return &ReferralHandler{authService: authService, leadService: leadService}
}

type RegisterReferrerRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Password     string `json:"password" binding:"required,min=8"`
	ReferralCode string `json:"referral_code"`
	PromotionID  string `json:"promotion_id"`
}

type SubmitLeadRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Email        *string `json:"email"`
	ReferralCode string  `json:"referral_code" binding:"required"`
	PromotionID  string  `json:"promotion_id" binding:"required"`
}

// Register creates a referrer account with a unique referral code.
func (h *ReferralHandler) Register(c *gin.Context) {
	var req RegisterReferrerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	input := service.RegisterReferrerInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		ReferralCode: req.ReferralCode,
	}
	if req.PromotionID != "" {
		promotionID, err := uuid.Parse(req.PromotionID)
		if err != nil {
			response.BadRequest(c, "invalid promotion id")
			return
		}
		input.PromotionID = &promotionID
	}

	user, err := h.authService.RegisterReferrer(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReferralCodeFormat),
			errors.Is(err, service.ErrPromotionInactive):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrReferralCodeTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "registration failed")
		}
		return
	}

	response.Created(c, gin.H{
		"id":             user.ID,
		"name":           user.Name,
		"email":          user.Email,
		"phone":          user.Phone,
		"referral_code":  user.ReferralCode,
		"wallet_balance": user.WalletBalance,
		"created_at":     user.CreatedAt,
	})
}

// SubmitLead is the public lead capture endpoint.
func (h *ReferralHandler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	promotionID, err := uuid.Parse(req.PromotionID)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}

	lead, err := h.leadService.Submit(c.Request.Context(), service.SubmitLeadInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		ReferralCode: req.ReferralCode,
		PromotionID:  promotionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReferralCodeNotFound),
			errors.Is(err, service.ErrPromotionInactive),
			errors.Is(err, service.ErrSelfReferral):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrDuplicateLead):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "failed to create lead")
		}
		return
	}

	response.Created(c, lead)
}

// ListOwnLeads returns the authenticated referrer's leads.
func (h *ReferralHandler) ListOwnLeads(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	status, ok := parseLeadStatus(c.Query("status"))
	if !ok {
		response.BadRequest(c, "invalid status filter")
		return
	}

	leads, err := h.leadService.List(c.Request.Context(), repository.LeadFilter{
		ReferrerID: &userID,
		Status:     status,
	})
	if err != nil {
		response.InternalError(c, "failed to fetch leads")
		return
	}

	response.Success(c, leads)
}

// ReferrerInfo is the public lookup behind the lead capture page.
func (h *ReferralHandler) ReferrerInfo(c *gin.Context) {
	code := c.Param("code")

	var promotionID *uuid.UUID
	if raw := c.Query("promotion_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid promotion id")
			return
		}
		promotionID = &id
	}

	info, err := h.leadService.ReferrerInfo(c.Request.Context(), code, promotionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReferralCodeNotFound),
			errors.Is(err, service.ErrPromotionInactive):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, "failed to fetch referrer info")
		}
		return
	}

	response.Success(c, info)
}

// Stats returns the referrer dashboard aggregate.
func (h *ReferralHandler) Stats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	stats, err := h.leadService.ReferrerStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to fetch stats")
		return
	}

	response.Success(c, stats)
}
