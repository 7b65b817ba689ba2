package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"edukamer/bootcamphub/internal/service"
	"edukamer/bootcamphub/pkg/response"
)

type StudentHandler struct {
	studentService service.StudentService
}

func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

type CreateStudentRequest struct {
	FullName      string     `json:"full_name" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	PhoneNumber   string     `json:"phone_number" binding:"required"`
	Neighbourhood *string    `json:"neighbourhood"`
	Address       *string    `json:"address"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Gender        *string    `json:"gender"`
	Notes         *string    `json:"notes"`
}

type UpdateStudentRequest struct {
	FullName      *string    `json:"full_name"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	PhoneNumber   *string    `json:"phone_number"`
	Neighbourhood *string    `json:"neighbourhood"`
	Address       *string    `json:"address"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Gender        *string    `json:"gender"`
	Notes         *string    `json:"notes"`
}

func (h *StudentHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), service.CreateStudentInput{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Neighbourhood: req.Neighbourhood,
		Address:       req.Address,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		Notes:         req.Notes,
		CreatedByID:   userID,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentEmailTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create student")
		return
	}

	response.Created(c, student)
}

// List searches students by name, email or phone; an empty term returns all.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.InternalError(c, "failed to fetch students")
		return
	}

	response.Success(c, students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid student id")
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "student not found")
			return
		}
		response.InternalError(c, "failed to fetch student")
		return
	}

	response.Success(c, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid student id")
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, service.UpdateStudentInput{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Neighbourhood: req.Neighbourhood,
		Address:       req.Address,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, "student not found")
		case errors.Is(err, service.ErrStudentEmailTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "failed to update student")
		}
		return
	}

	response.Success(c, student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid student id")
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "student not found")
			return
		}
		response.InternalError(c, "failed to delete student")
		return
	}

	response.Success(c, gin.H{"message": "student deleted"})
}
