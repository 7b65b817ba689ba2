package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled    EnrollmentStatus = "enrolled"
	EnrollmentStatusCompleted   EnrollmentStatus = "completed"
	EnrollmentStatusDropped     EnrollmentStatus = "dropped"
	EnrollmentStatusTransferred EnrollmentStatus = "transferred"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusEnrolled, EnrollmentStatusCompleted, EnrollmentStatusDropped, EnrollmentStatusTransferred:
		return true
	}
	return false
}

type Enrollment struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_student_session" json:"student_id"`
	BootcampSessionID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_student_session" json:"bootcamp_session_id"`
	EnrolledByID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"enrolled_by_id"`
	Status            EnrollmentStatus `gorm:"type:varchar(16);not null;default:'enrolled'" json:"status"`
	EnrollmentDate    time.Time        `gorm:"not null" json:"enrollment_date"`
	Notes             *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`

	Student         Student         `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	BootcampSession BootcampSession `gorm:"foreignKey:BootcampSessionID" json:"bootcamp_session,omitempty"`
	EnrolledBy      User            `gorm:"foreignKey:EnrolledByID" json:"enrolled_by,omitempty"`
}

func (Enrollment) TableName() string { return "enrollments" }

func (e *Enrollment) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.EnrollmentDate.IsZero() {
		e.EnrollmentDate = time.Now()
	}
	return nil
}
