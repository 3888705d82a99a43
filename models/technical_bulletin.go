package models

import (
	"time"
)

type BulletinPriority string

const (
	BulletinPriorityLow      BulletinPriority = "low"
	BulletinPriorityMedium   BulletinPriority = "medium"
	BulletinPriorityHigh     BulletinPriority = "high"
	BulletinPriorityCritical BulletinPriority = "critical"
)

// TechnicalBulletin is global (not user-scoped). Relevance to individual
// rides is computed at read time and never stored.
type TechnicalBulletin struct {
	ID             string           `json:"id" gorm:"primaryKey;size:191"`
	CategoryID     string           `json:"category_id" gorm:"size:191"`
	Title          string           `json:"title" gorm:"not null;size:500"`
	Content        string           `json:"content" gorm:"type:text"`
	BulletinNumber *string          `json:"bulletin_number" gorm:"size:100"`
	Priority       BulletinPriority `json:"priority" gorm:"default:'medium';size:20"`
	IssueDate      time.Time        `json:"issue_date"`
	SourceURL      *string          `json:"source_url" gorm:"size:500"` // set when ingested by the scraper
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Category RideCategory `json:"category" gorm:"foreignKey:CategoryID"`
}
