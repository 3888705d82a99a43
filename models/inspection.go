package models

import (
	"time"
)

type CheckStatus string

const (
	CheckStatusPending   CheckStatus = "pending"
	CheckStatusCompleted CheckStatus = "completed"
	CheckStatusOverdue   CheckStatus = "overdue"
)

// InspectionSchedule describes a recurring inspection obligation for a ride.
type InspectionSchedule struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	UserID         string    `json:"user_id" gorm:"not null;index;size:191"`
	RideID         string    `json:"ride_id" gorm:"not null;index;size:191"`
	InspectionType string    `json:"inspection_type" gorm:"not null;size:100"` // adips, daily_check, electrical, structural
	Frequency      string    `json:"frequency" gorm:"not null;size:20"`        // weekly, monthly, annual
	NextDueDate    time.Time `json:"next_due_date" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Ride Ride `json:"ride,omitempty" gorm:"foreignKey:RideID"`
}

// InspectionCheck is a single dated check carried out on a ride. Unlike the
// schedule-derived calendar entries, a check carries its own persisted status.
type InspectionCheck struct {
	ID          string      `json:"id" gorm:"primaryKey;size:191"`
	UserID      string      `json:"user_id" gorm:"not null;index;size:191"`
	RideID      string      `json:"ride_id" gorm:"not null;index;size:191"`
	CheckType   string      `json:"check_type" gorm:"not null;size:100"`
	CheckDate   time.Time   `json:"check_date" gorm:"index"`
	Status      CheckStatus `json:"status" gorm:"default:'pending';size:20"`
	Notes       string      `json:"notes" gorm:"type:text"`
	CompletedAt *time.Time  `json:"completed_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Ride Ride `json:"ride,omitempty" gorm:"foreignKey:RideID"`
}

// NDTSchedule tracks non-destructive testing obligations.
type NDTSchedule struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	UserID      string    `json:"user_id" gorm:"not null;index;size:191"`
	RideID      string    `json:"ride_id" gorm:"not null;index;size:191"`
	NDTType     string    `json:"ndt_type" gorm:"not null;size:100"` // weld_inspection, crack_test, thickness_survey
	TestMethod  string    `json:"test_method" gorm:"size:100"`       // visual, mpi, ultrasonic, dye_penetrant
	NextDueDate time.Time `json:"next_due_date" gorm:"index"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Ride Ride `json:"ride,omitempty" gorm:"foreignKey:RideID"`
}
