package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
	"edukamer/bootcamphub/internal/service"
	"edukamer/bootcamphub/pkg/response"
)

// LeadHandler serves the lead management endpoints used by the sales pipeline.
type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type UpdateLeadRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func (h *LeadHandler) List(c *gin.Context) {
	status, ok := parseLeadStatus(c.Query("status"))
	if !ok {
		response.BadRequest(c, "invalid status filter")
		return
	}

	filter := repository.LeadFilter{Status: status}
	if raw := c.Query("promotion_id"); raw != "" {
		promotionID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid promotion id")
			return
		}
		filter.PromotionID = &promotionID
	}

	leads, err := h.leadService.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "failed to fetch leads")
		return
	}

	response.Success(c, leads)
}

func (h *LeadHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid lead id")
		return
	}

	lead, err := h.leadService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			response.NotFound(c, "lead not found")
			return
		}
		response.InternalError(c, "failed to fetch lead")
		return
	}

	response.Success(c, lead)
}

// Update transitions a lead's status. Converting credits the referrer's
// wallet; the response reports whether a credit happened and for how much.
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid lead id")
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.leadService.UpdateStatus(c.Request.Context(), id, model.LeadStatus(req.Status), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeadNotFound):
			response.NotFound(c, "lead not found")
		case errors.Is(err, service.ErrInvalidLeadStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to update lead")
		}
		return
	}

	response.Success(c, result)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid lead id")
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			response.NotFound(c, "lead not found")
			return
		}
		response.InternalError(c, "failed to delete lead")
		return
	}

	response.Success(c, gin.H{"message": "lead deleted"})
}
