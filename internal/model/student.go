package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName      string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber   string     `gorm:"type:varchar(32);not null" json:"phone_number"`
	Neighbourhood *string    `gorm:"type:varchar(255)" json:"neighbourhood,omitempty"`
	Address       *string    `gorm:"type:varchar(512)" json:"address,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Gender        *string    `gorm:"type:varchar(16)" json:"gender,omitempty"`
	Notes         *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedByID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	CreatedBy   User         `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:StudentID" json:"enrollments,omitempty"`
}

func (Student) TableName() string { return "students" }

func (s *Student) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
