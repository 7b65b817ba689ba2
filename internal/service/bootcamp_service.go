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

type CreateBootcampInput struct {
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	Location       *string
	ImageURL       *string
	TargetCapacity int
	Status         *model.BootcampStatus
}

type UpdateBootcampInput struct {
	Name           *string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
	Location       *string
	ImageURL       *string
	TargetCapacity *int
	Status         *model.BootcampStatus
}

type BootcampService interface {
	Create(ctx context.Context, input CreateBootcampInput) (*model.BootcampSession, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BootcampSession, error)
	List(ctx context.Context, status *model.BootcampStatus) ([]model.BootcampSession, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBootcampInput) (*model.BootcampSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bootcampService struct {
	bootcampRepo repository.BootcampRepository
}

func NewBootcampService(bootcampRepo repository.BootcampRepository) BootcampService {
	return &bootcampService{bootcampRepo: bootcampRepo}
}

func (s *bootcampService) Create(ctx context.Context, input CreateBootcampInput) (*model.BootcampSession, error) {
	status := model.BootcampStatusUpcoming
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidBootcampStatus
		}
		status = *input.Status
	}

	session := &model.BootcampSession{
		Name:            input.Name,
		Description:     input.Description,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Location:        input.Location,
		ImageURL:        input.ImageURL,
		TargetCapacity:  input.TargetCapacity,
		CurrentCapacity: 0,
		Status:          status,
	}
	if err := s.bootcampRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create bootcamp: %w", err)
	}
	return session, nil
}

func (s *bootcampService) Get(ctx context.Context, id uuid.UUID) (*model.BootcampSession, error) {
	session, err := s.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBootcampNotFound
		}
		return nil, fmt.Errorf("find bootcamp: %w", err)
	}
	return session, nil
}

func (s *bootcampService) List(ctx context.Context, status *model.BootcampStatus) ([]model.BootcampSession, error) {
	return s.bootcampRepo.List(ctx, status)
}

// Update never touches CurrentCapacity; that counter only moves with
// enrollment rows.
func (s *bootcampService) Update(ctx context.Context, id uuid.UUID, input UpdateBootcampInput) (*model.BootcampSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		session.Name = *input.Name
	}
	if input.Description != nil {
		session.Description = *input.Description
	}
	if input.StartDate != nil {
		session.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		session.EndDate = *input.EndDate
	}
	if input.Location != nil {
		session.Location = input.Location
	}
	if input.ImageURL != nil {
		session.ImageURL = input.ImageURL
	}
	if input.TargetCapacity != nil {
		session.TargetCapacity = *input.TargetCapacity
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidBootcampStatus
		}
		session.Status = *input.Status
	}

	if err := s.bootcampRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update bootcamp: %w", err)
	}
	return session, nil
}

func (s *bootcampService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bootcampRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBootcampNotFound
		}
		return fmt.Errorf("delete bootcamp: %w", err)
	}
	return nil
}
