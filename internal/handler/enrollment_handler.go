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

type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

type CreateEnrollmentRequest struct {
	StudentID         string  `json:"student_id" binding:"required"`
	BootcampSessionID string  `json:"bootcamp_session_id" binding:"required"`
	Status            *string `json:"status"`
	Notes             *string `json:"notes"`
}

type UpdateEnrollmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *EnrollmentHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "invalid student id")
		return
	}
	sessionID, err := uuid.Parse(req.BootcampSessionID)
	if err != nil {
		response.BadRequest(c, "invalid bootcamp session id")
		return
	}

	input := service.CreateEnrollmentInput{
		StudentID:         studentID,
		BootcampSessionID: sessionID,
		EnrolledByID:      userID,
		Notes:             req.Notes,
	}
	if req.Status != nil {
		status := model.EnrollmentStatus(*req.Status)
		input.Status = &status
	}

	enrollment, err := h.enrollmentService.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, "student not found")
		case errors.Is(err, service.ErrBootcampNotFound):
			response.NotFound(c, "bootcamp not found")
		case errors.Is(err, service.ErrBootcampFull),
			errors.Is(err, service.ErrInvalidEnrollmentStatus):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAlreadyEnrolled):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "failed to create enrollment")
		}
		return
	}

	response.Created(c, enrollment)
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	var filter repository.EnrollmentFilter
	if raw := c.Query("bootcamp_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid bootcamp id")
			return
		}
		filter.BootcampSessionID = &id
	}
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid student id")
			return
		}
		filter.StudentID = &id
	}

	enrollments, err := h.enrollmentService.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "failed to fetch enrollments")
		return
	}

	response.Success(c, enrollments)
}

func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid enrollment id")
		return
	}

	enrollment, err := h.enrollmentService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			response.NotFound(c, "enrollment not found")
			return
		}
		response.InternalError(c, "failed to fetch enrollment")
		return
	}

	response.Success(c, enrollment)
}

func (h *EnrollmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid enrollment id")
		return
	}

	var req UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	input := service.UpdateEnrollmentInput{Notes: req.Notes}
	if req.Status != nil {
		status := model.EnrollmentStatus(*req.Status)
		input.Status = &status
	}

	enrollment, err := h.enrollmentService.Update(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnrollmentNotFound):
			response.NotFound(c, "enrollment not found")
		case errors.Is(err, service.ErrInvalidEnrollmentStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to update enrollment")
		}
		return
	}

	response.Success(c, enrollment)
}

func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid enrollment id")
		return
	}

	if err := h.enrollmentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			response.NotFound(c, "enrollment not found")
			return
		}
		response.InternalError(c, "failed to delete enrollment")
		return
	}

	response.Success(c, gin.H{"message": "enrollment deleted"})
}
