package models

import (
	"time"
)

// RideCategory is a user-independent lookup maintained by admins.
type RideCategory struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Ride struct {
	ID               string    `json:"id" gorm:"primaryKey;size:191"`
	UserID           string    `json:"user_id" gorm:"not null;index;size:191"`
	CategoryID       string    `json:"category_id" gorm:"not null;size:191"`
	RideName         string    `json:"ride_name" gorm:"not null;size:255"`
	Manufacturer     *string   `json:"manufacturer" gorm:"size:255"`
	SerialNumber     *string   `json:"serial_number" gorm:"size:100"`
	YearManufactured *int      `json:"year_manufactured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User     User         `json:"-" gorm:"foreignKey:UserID"`
	Category RideCategory `json:"category" gorm:"foreignKey:CategoryID"`
}

// RideStatistics is computed per ride at request time, never persisted.
type RideStatistics struct {
	RideID               string `json:"ride_id"`
	DocumentCount        int64  `json:"document_count"`
	OpenMaintenanceCount int64  `json:"open_maintenance_count"`
	UpcomingInspections  int64  `json:"upcoming_inspections"`
}
