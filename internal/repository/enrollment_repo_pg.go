package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
)

type pgEnrollmentRepository struct {
	db *gorm.DB
}

func NewPGEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &pgEnrollmentRepository{db: db}
}

func (r *pgEnrollmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("BootcampSession").
		Preload("EnrolledBy").
		First(&enrollment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *pgEnrollmentRepository) GetByStudentAndSession(ctx context.Context, studentID, sessionID uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND bootcamp_session_id = ?", studentID, sessionID).
		First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *pgEnrollmentRepository) List(ctx context.Context, filter EnrollmentFilter) ([]model.Enrollment, error) {
	q := r.db.WithContext(ctx).
		Preload("Student").
		Preload("BootcampSession").
		Preload("EnrolledBy").
		Order("enrollment_date DESC")
	if filter.BootcampSessionID != nil {
		q = q.Where("bootcamp_session_id = ?", *filter.BootcampSessionID)
	}
	if filter.StudentID != nil {
		q = q.Where("student_id = ?", *filter.StudentID)
	}

	var enrollments []model.Enrollment
	if err := q.Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *pgEnrollmentRepository) Update(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

// CreateWithCapacityGuard bumps current_capacity with a conditional update so
// the check and the increment are one statement: zero rows affected means the
// session is full and nothing is inserted. The (student_id,
// bootcamp_session_id) unique index backstops duplicate concurrent inserts.
func (r *pgEnrollmentRepository) CreateWithCapacityGuard(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BootcampSession{}).
			Where("id = ? AND current_capacity < target_capacity", enrollment.BootcampSessionID).
			UpdateColumn("current_capacity", gorm.Expr("current_capacity + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCapacityFull
		}
		return tx.Create(enrollment).Error
	})
}

func (r *pgEnrollmentRepository) DeleteWithCapacityRelease(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment model.Enrollment
		if err := tx.First(&enrollment, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Enrollment{}, "id = ?", id).Error; err != nil {
			return err
		}
		// Guarded so a stale counter can never go negative.
		return tx.Model(&model.BootcampSession{}).
			Where("id = ? AND current_capacity > 0", enrollment.BootcampSessionID).
			UpdateColumn("current_capacity", gorm.Expr("current_capacity - 1")).
			Error
	})
}
