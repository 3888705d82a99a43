package models

import (
	"time"
)

type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

type MaintenanceRecord struct {
	ID              string            `json:"id" gorm:"primaryKey;size:191"`
	UserID          string            `json:"user_id" gorm:"not null;index;size:191"`
	RideID          string            `json:"ride_id" gorm:"not null;index;size:191"`
	MaintenanceType string            `json:"maintenance_type" gorm:"not null;size:100"` // routine, repair, modification, overhaul
	Description     string            `json:"description" gorm:"type:text"`
	Status          MaintenanceStatus `json:"status" gorm:"default:'pending';size:20"`
	Cost            *float64          `json:"cost"`
	PerformedBy     *string           `json:"performed_by" gorm:"size:255"`
	PerformedAt     *time.Time        `json:"performed_at"`
	NextDueDate     *time.Time        `json:"next_due_date" gorm:"index"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Ride Ride `json:"ride,omitempty" gorm:"foreignKey:RideID"`
}
