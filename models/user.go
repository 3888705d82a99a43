package models

import (
	"time"
)

type User struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:191"`
	Name               string    `json:"name" gorm:"not null;size:255"`
	Email              string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password           string    `json:"-" gorm:"not null;size:255"`
	EmailVerified      bool      `json:"email_verified" gorm:"default:false"`
	BusinessName       *string   `json:"business_name" gorm:"size:255"`
	Phone              *string   `json:"phone" gorm:"size:50"`
	IsAdmin            bool      `json:"is_admin" gorm:"default:false"`
	SubscriptionStatus string    `json:"subscription_status" gorm:"default:'free';size:50"` // free, active, past_due
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	Rides     []Ride     `json:"rides" gorm:"foreignKey:UserID"`
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:UserID"`
}
