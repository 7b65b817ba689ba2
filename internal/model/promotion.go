package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Promotion struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	RewardAmount    int       `gorm:"not null" json:"reward_amount"`
	DiscountPercent int       `gorm:"not null" json:"discount_percent"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Leads []Lead `gorm:"foreignKey:PromotionID;constraint:OnDelete:CASCADE" json:"leads,omitempty"`
}

func (Promotion) TableName() string { return "promotions" }

func (p *Promotion) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
