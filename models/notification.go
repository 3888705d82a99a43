package models

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeDocumentExpiry    NotificationType = "document_expiry"
	NotificationTypeInspectionDue     NotificationType = "inspection_due"
	NotificationTypeNDTDue            NotificationType = "ndt_due"
	NotificationTypeBulletinPublished NotificationType = "bulletin_published"
	NotificationTypeSupportReply      NotificationType = "support_reply"
)

type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:191"`
	UserID    string           `json:"user_id" gorm:"not null;index;size:191"`
	Type      NotificationType `json:"type" gorm:"not null;size:50"`
	Title     string           `json:"title" gorm:"not null;size:255"`
	Message   string           `json:"message" gorm:"size:1000"`
	RelatedID *string          `json:"related_id" gorm:"size:191"` // document, schedule or bulletin id
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// NotificationResponse represents the API response for notifications
type NotificationResponse struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID *string          `json:"related_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
	TimeAgo   string           `json:"time_ago"`
}

// NotificationStats represents notification statistics
type NotificationStats struct {
	UnreadCount int `json:"unread_count"`
	TotalCount  int `json:"total_count"`
}

// PaginatedNotifications represents paginated notification response
type PaginatedNotifications struct {
	Notifications []NotificationResponse `json:"notifications"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Total         int64                  `json:"total"`
	HasMore       bool                   `json:"has_more"`
	TotalPages    int                    `json:"total_pages"`
}

func (n *Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		TimeAgo:   n.GetTimeAgo(),
	}
}

// GetTimeAgo returns a human-readable time difference
func (n *Notification) GetTimeAgo() string {
	now := time.Now()
	diff := now.Sub(n.CreatedAt)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		minutes := int(diff.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
