package models

import (
	"time"
)

type RiskAssessment struct {
	ID             string     `json:"id" gorm:"primaryKey;size:191"`
	UserID         string     `json:"user_id" gorm:"not null;index;size:191"`
	RideID         *string    `json:"ride_id" gorm:"index;size:191"` // nil means site/account level
	Title          string     `json:"title" gorm:"not null;size:255"`
	AssessorName   string     `json:"assessor_name" gorm:"not null;size:255"`
	AssessmentDate time.Time  `json:"assessment_date"`
	ReviewDate     *time.Time `json:"review_date"`
	Status         string     `json:"status" gorm:"default:'draft';size:20"` // draft, active, archived
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Ride  *Ride                `json:"ride,omitempty" gorm:"foreignKey:RideID"`
	Items []RiskAssessmentItem `json:"items" gorm:"foreignKey:AssessmentID"`
}

type RiskAssessmentItem struct {
	ID              string      `json:"id" gorm:"primaryKey;size:191"`
	AssessmentID    string      `json:"assessment_id" gorm:"not null;index;size:191"`
	Hazard          string      `json:"hazard" gorm:"not null;size:500"`
	PersonsAtRisk   string      `json:"persons_at_risk" gorm:"size:255"`
	Likelihood      int         `json:"likelihood" gorm:"not null"` // 1-5
	Severity        int         `json:"severity" gorm:"not null"`  // 1-5
	RiskRating      int         `json:"risk_rating" gorm:"not null"`
	ControlMeasures StringSlice `json:"control_measures" gorm:"type:json"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ComputeRiskRating is the server-side source of truth for the rating.
func ComputeRiskRating(likelihood, severity int) int {
	return likelihood * severity
}
