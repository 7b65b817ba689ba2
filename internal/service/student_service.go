package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
)

type CreateStudentInput struct {
	FullName      string
	Email         string
	PhoneNumber   string
	Neighbourhood *string
	Address       *string
	DateOfBirth   *time.Time
	Gender        *string
	Notes         *string
	CreatedByID   uuid.UUID
}

type UpdateStudentInput struct {
	FullName      *string
	Email         *string
	PhoneNumber   *string
	Neighbourhood *string
	Address       *string
	DateOfBirth   *time.Time
	Gender        *string
	Notes         *string
}

type StudentService interface {
	Create(ctx context.Context, input CreateStudentInput) (*model.Student, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Student, error)
	Search(ctx context.Context, term string) ([]model.Student, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStudentInput) (*model.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) Create(ctx context.Context, input CreateStudentInput) (*model.Student, error) {
	_, err := s.studentRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrStudentEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check student email: %w", err)
	}

	student := &model.Student{
		FullName:      input.FullName,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		Neighbourhood: input.Neighbourhood,
		Address:       input.Address,
		DateOfBirth:   input.DateOfBirth,
		Gender:        input.Gender,
		Notes:         input.Notes,
		CreatedByID:   input.CreatedByID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentEmailTaken
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

func (s *studentService) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return student, nil
}

func (s *studentService) Search(ctx context.Context, term string) ([]model.Student, error) {
	return s.studentRepo.Search(ctx, term)
}

func (s *studentService) Update(ctx context.Context, id uuid.UUID, input UpdateStudentInput) (*model.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		student.FullName = *input.FullName
	}
	if input.Email != nil {
		student.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		student.PhoneNumber = *input.PhoneNumber
	}
	if input.Neighbourhood != nil {
		student.Neighbourhood = input.Neighbourhood
	}
	if input.Address != nil {
		student.Address = input.Address
	}
	if input.DateOfBirth != nil {
		student.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		student.Gender = input.Gender
	}
	if input.Notes != nil {
		student.Notes = input.Notes
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentEmailTaken
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
