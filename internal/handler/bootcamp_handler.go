package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/service"
	"edukamer/bootcamphub/pkg/response"
)

type BootcampHandler struct {
	bootcampService service.BootcampService
}

func NewBootcampHandler(bootcampService service.BootcampService) *BootcampHandler {
	return &BootcampHandler{bootcampService: bootcampService}
}

type CreateBootcampRequest struct {
	Name           string    `json:"name" binding:"required"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	Location       *string   `json:"location"`
	ImageURL       *string   `json:"image_url"`
	TargetCapacity int       `json:"target_capacity" binding:"required,min=1"`
	Status         *string   `json:"status"`
}

type UpdateBootcampRequest struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Location       *string    `json:"location"`
	ImageURL       *string    `json:"image_url"`
	TargetCapacity *int       `json:"target_capacity" binding:"omitempty,min=1"`
	Status         *string    `json:"status"`
}

func (h *BootcampHandler) Create(c *gin.Context) {
	var req CreateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	input := service.CreateBootcampInput{
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
		ImageURL:       req.ImageURL,
		TargetCapacity: req.TargetCapacity,
	}
	if req.Status != nil {
		status := model.BootcampStatus(*req.Status)
		input.Status = &status
	}

	session, err := h.bootcampService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBootcampStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create bootcamp")
		return
	}

	response.Created(c, session)
}

func (h *BootcampHandler) List(c *gin.Context) {
	var status *model.BootcampStatus
	if raw := c.Query("status"); raw != "" {
		s := model.BootcampStatus(raw)
		if !s.Valid() {
			response.BadRequest(c, "invalid status filter")
			return
		}
		status = &s
	}

	sessions, err := h.bootcampService.List(c.Request.Context(), status)
	if err != nil {
		response.InternalError(c, "failed to fetch bootcamps")
		return
	}

	response.Success(c, sessions)
}

func (h *BootcampHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid bootcamp id")
		return
	}

	session, err := h.bootcampService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBootcampNotFound) {
			response.NotFound(c, "bootcamp not found")
			return
		}
		response.InternalError(c, "failed to fetch bootcamp")
		return
	}

	response.Success(c, session)
}

func (h *BootcampHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid bootcamp id")
		return
	}

	var req UpdateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	input := service.UpdateBootcampInput{
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
		ImageURL:       req.ImageURL,
		TargetCapacity: req.TargetCapacity,
	}
	if req.Status != nil {
		status := model.BootcampStatus(*req.Status)
		input.Status = &status
	}

	session, err := h.bootcampService.Update(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootcampNotFound):
			response.NotFound(c, "bootcamp not found")
		case errors.Is(err, service.ErrInvalidBootcampStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to update bootcamp")
		}
		return
	}

	response.Success(c, session)
}

func (h *BootcampHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid bootcamp id")
		return
	}

	if err := h.bootcampService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBootcampNotFound) {
			response.NotFound(c, "bootcamp not found")
			return
		}
		response.InternalError(c, "failed to delete bootcamp")
		return
	}

	response.Success(c, gin.H{"message": "bootcamp deleted"})
}
