package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/model"
)

// ErrCapacityFull is returned by CreateWithCapacityGuard when the conditional
// capacity increment affects zero rows, i.e. the session is already full.
var ErrCapacityFull = errors.New("bootcamp session at full capacity")

// EnrollmentFilter narrows enrollment listings; nil fields are ignored.
type EnrollmentFilter struct {
	BootcampSessionID *uuid.UUID
	StudentID         *uuid.UUID
}

type EnrollmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error)
	GetByStudentAndSession(ctx context.Context, studentID, sessionID uuid.UUID) (*model.Enrollment, error)
	List(ctx context.Context, filter EnrollmentFilter) ([]model.Enrollment, error)
	Update(ctx context.Context, enrollment *model.Enrollment) error
	// CreateWithCapacityGuard atomically bumps the session's current_capacity
	// (only while below target_capacity) and inserts the enrollment row.
	CreateWithCapacityGuard(ctx context.Context, enrollment *model.Enrollment) error
	// DeleteWithCapacityRelease atomically removes the enrollment row and
	// decrements the owning session's current_capacity.
	DeleteWithCapacityRelease(ctx context.Context, id uuid.UUID) error
}
