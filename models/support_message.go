package models

import (
	"time"
)

type SupportMessage struct {
	ID          string     `json:"id" gorm:"primaryKey;size:191"`
	UserID      string     `json:"user_id" gorm:"not null;index;size:191"`
	Subject     string     `json:"subject" gorm:"not null;size:255"`
	Message     string     `json:"message" gorm:"not null;type:text"`
	Status      string     `json:"status" gorm:"default:'open';size:20"` // open, answered, closed
	Response    *string    `json:"response" gorm:"type:text"`
	RespondedAt *time.Time `json:"responded_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
