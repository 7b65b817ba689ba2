package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"edukamer/bootcamphub/internal/service"
	"edukamer/bootcamphub/pkg/response"
)

type PromotionHandler struct {
	promotionService service.PromotionService
}

func NewPromotionHandler(promotionService service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

type CreatePromotionRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	RewardAmount    *int   `json:"reward_amount" binding:"required"`
	DiscountPercent *int   `json:"discount_percent" binding:"required"`
	IsActive        *bool  `json:"is_active"`
}

type UpdatePromotionRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	RewardAmount    *int    `json:"reward_amount"`
	DiscountPercent *int    `json:"discount_percent"`
	IsActive        *bool   `json:"is_active"`
}

// List returns promotions. Unauthenticated callers and ?active=true see only
// active ones.
func (h *PromotionHandler) List(c *gin.Context) {
	_, authErr := getClaimsFromContext(c)
	activeOnly := authErr != nil || c.Query("active") == "true"

	promotions, err := h.promotionService.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c, "failed to fetch promotions")
		return
	}

	response.Success(c, promotions)
}

func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}

	promotion, err := h.promotionService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			response.NotFound(c, "promotion not found")
			return
		}
		response.InternalError(c, "failed to fetch promotion")
		return
	}

	response.Success(c, promotion)
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	promotion, err := h.promotionService.Create(c.Request.Context(), service.CreatePromotionInput{
		Name:            req.Name,
		Description:     req.Description,
		RewardAmount:    *req.RewardAmount,
		DiscountPercent: *req.DiscountPercent,
		IsActive:        req.IsActive,
	})
	if err != nil {
		response.InternalError(c, "failed to create promotion")
		return
	}

	response.Created(c, promotion)
}

func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	promotion, err := h.promotionService.Update(c.Request.Context(), id, service.UpdatePromotionInput{
		Name:            req.Name,
		Description:     req.Description,
		RewardAmount:    req.RewardAmount,
		DiscountPercent: req.DiscountPercent,
		IsActive:        req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			response.NotFound(c, "promotion not found")
			return
		}
		response.InternalError(c, "failed to update promotion")
		return
	}

	response.Success(c, promotion)
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}

	if err := h.promotionService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			response.NotFound(c, "promotion not found")
			return
		}
		response.InternalError(c, "failed to delete promotion")
		return
	}

	response.Success(c, gin.H{"message": "promotion deleted"})
}
