package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
)

type pgStudentRepository struct {
	db *gorm.DB
}

func NewPGStudentRepository(db *gorm.DB) StudentRepository {
	return &pgStudentRepository{db: db}
}

func (r *pgStudentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *pgStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *pgStudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *pgStudentRepository) Search(ctx context.Context, term string) ([]model.Student, error) {
	q := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("created_at DESC")
	if term != "" {
		pattern := "%" + term + "%"
		q = q.Where("full_name LIKE ? OR email LIKE ? OR phone_number LIKE ?", pattern, pattern, pattern)
	}

	var students []model.Student
	if err := q.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *pgStudentRepository) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *pgStudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Student{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
