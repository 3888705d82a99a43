package models

import (
	"time"
)

type Document struct {
	ID                 string     `json:"id" gorm:"primaryKey;size:191"`
	UserID             string     `json:"user_id" gorm:"not null;index;size:191"`
	RideID             *string    `json:"ride_id" gorm:"index;size:191"` // nil means global (whole account)
	DocumentName       string     `json:"document_name" gorm:"not null;size:255"`
	DocumentType       string     `json:"document_type" gorm:"not null;size:100"` // insurance, adips_doc, risk_assessment, method_statement, other
	FilePath           string     `json:"file_path" gorm:"not null;size:500"`
	FileSize           int64      `json:"file_size"`
	ContentType        string     `json:"content_type" gorm:"size:100"`
	ExpiresAt          *time.Time `json:"expires_at"`
	IsGlobal           bool       `json:"is_global" gorm:"default:false"`
	VersionNumber      string     `json:"version_number" gorm:"default:'1.0';size:20"`
	IsLatestVersion    bool       `json:"is_latest_version" gorm:"default:true"`
	ReplacedDocumentID *string    `json:"replaced_document_id" gorm:"size:191"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	User User  `json:"-" gorm:"foreignKey:UserID"`
	Ride *Ride `json:"ride,omitempty" gorm:"foreignKey:RideID"`
}

// DocumentVersionInfo lists the version chain for a logical document name.
type DocumentVersionInfo struct {
	Versions             []Document `json:"versions"`
	SuggestedNextVersion string     `json:"suggested_next_version"`
}
