package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusPending, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a prospect submitted through a referral code.
// The same phone may not register twice under the same promotion.
type Lead struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_leads_phone_promotion" json:"phone"`
	Email       *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Status      LeadStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	Notes       *string    `gorm:"type:text" json:"notes,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
	ReferrerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"referrer_id"`
	PromotionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_leads_phone_promotion" json:"promotion_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Referrer  User      `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty"`
	Promotion Promotion `gorm:"foreignKey:PromotionID" json:"promotion,omitempty"`
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
