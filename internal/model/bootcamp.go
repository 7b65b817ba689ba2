package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BootcampStatus string

const (
	BootcampStatusUpcoming  BootcampStatus = "upcoming"
	BootcampStatusOngoing   BootcampStatus = "ongoing"
	BootcampStatusCompleted BootcampStatus = "completed"
	BootcampStatusCancelled BootcampStatus = "cancelled"
)

func (s BootcampStatus) Valid() bool {
	switch s {
	case BootcampStatusUpcoming, BootcampStatusOngoing, BootcampStatusCompleted, BootcampStatusCancelled:
		return true
	}
	return false
}

// BootcampSession carries a denormalized CurrentCapacity counter.
// It must always equal the number of enrollment rows referencing the session
// and is only mutated together with those rows, inside one transaction.
type BootcampSession struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         time.Time      `gorm:"not null" json:"end_date"`
	Location        *string        `gorm:"type:varchar(255)" json:"location,omitempty"`
	ImageURL        *string        `gorm:"type:text" json:"image_url,omitempty"`
	TargetCapacity  int            `gorm:"not null" json:"target_capacity"`
	CurrentCapacity int            `gorm:"not null;default:0" json:"current_capacity"`
	Status          BootcampStatus `gorm:"type:varchar(16);not null;default:'upcoming'" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Enrollments []Enrollment `gorm:"foreignKey:BootcampSessionID" json:"enrollments,omitempty"`
}

func (BootcampSession) TableName() string { return "bootcamp_sessions" }

func (b *BootcampSession) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
