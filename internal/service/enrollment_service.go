package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
)

type CreateEnrollmentInput struct {
	StudentID         uuid.UUID
	BootcampSessionID uuid.UUID
	EnrolledByID      uuid.UUID
	Status            *model.EnrollmentStatus
	Notes             *string
}

type UpdateEnrollmentInput struct {
	Status *model.EnrollmentStatus
	Notes  *string
}

type EnrollmentService interface {
	Create(ctx context.Context, input CreateEnrollmentInput) (*model.Enrollment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Enrollment, error)
	List(ctx context.Context, filter repository.EnrollmentFilter) ([]model.Enrollment, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEnrollmentInput) (*model.Enrollment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	studentRepo    repository.StudentRepository
	bootcampRepo   repository.BootcampRepository
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	studentRepo repository.StudentRepository,
	bootcampRepo repository.BootcampRepository,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		bootcampRepo:   bootcampRepo,
	}
}

// Create enrolls a student into a bootcamp session. The enrollment row and the
// session's current_capacity move together in one transaction; the capacity
// ceiling is enforced by a conditional update so two near-full concurrent
// requests cannot overshoot target_capacity.
func (s *enrollmentService) Create(ctx context.Context, input CreateEnrollmentInput) (*model.Enrollment, error) {
	// 1. Student must exist
	if _, err := s.studentRepo.GetByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}

	// 2. Session must exist and have room
	bootcamp, err := s.bootcampRepo.GetByID(ctx, input.BootcampSessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBootcampNotFound
		}
		return nil, fmt.Errorf("find bootcamp: %w", err)
	}
	if bootcamp.CurrentCapacity >= bootcamp.TargetCapacity {
		return nil, ErrBootcampFull
	}

	// 3. A student enrolls at most once per session
	_, err = s.enrollmentRepo.GetByStudentAndSession(ctx, input.StudentID, input.BootcampSessionID)
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing enrollment: %w", err)
	}

	status := model.EnrollmentStatusEnrolled
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidEnrollmentStatus
		}
		status = *input.Status
	}

	enrollment := &model.Enrollment{
		StudentID:         input.StudentID,
		BootcampSessionID: input.BootcampSessionID,
		EnrolledByID:      input.EnrolledByID,
		Status:            status,
		Notes:             input.Notes,
	}
	if err := s.enrollmentRepo.CreateWithCapacityGuard(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityFull):
			return nil, ErrBootcampFull
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// unique (student_id, bootcamp_session_id) index caught a
			// concurrent duplicate; the guarded transaction rolled back the
			// capacity bump.
			return nil, ErrAlreadyEnrolled
		default:
			return nil, fmt.Errorf("create enrollment: %w", err)
		}
	}

	return s.Get(ctx, enrollment.ID)
}

func (s *enrollmentService) Get(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) List(ctx context.Context, filter repository.EnrollmentFilter) ([]model.Enrollment, error) {
	return s.enrollmentRepo.List(ctx, filter)
}

// Update changes status or notes only; it never touches session capacity.
func (s *enrollmentService) Update(ctx context.Context, id uuid.UUID, input UpdateEnrollmentInput) (*model.Enrollment, error) {
	enrollment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidEnrollmentStatus
		}
		enrollment.Status = *input.Status
	}
	if input.Notes != nil {
		enrollment.Notes = input.Notes
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.enrollmentRepo.DeleteWithCapacityRelease(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}
