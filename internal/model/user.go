package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleSalesAgent   Role = "sales_agent"
	RoleSalesRep     Role = "sales_rep"
	RoleSalesManager Role = "sales_manager"
	RoleReferrer     Role = "referrer"
)

// IsStaff reports whether the role may manage leads, promotions and enrollments.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleSalesAgent, RoleSalesRep, RoleSalesManager:
		return true
	}
	return false
}

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone         string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"`
	Role          Role      `gorm:"type:varchar(32);not null;default:'referrer'" json:"role"`
	ReferralCode  *string   `gorm:"type:varchar(20);uniqueIndex" json:"referral_code,omitempty"`
	WalletBalance int       `gorm:"not null;default:0" json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Leads []Lead `gorm:"foreignKey:ReferrerID" json:"leads,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
