package models

import (
	"time"
)

type CalendarEventType string

const (
	CalendarEventCheck          CalendarEventType = "check"
	CalendarEventMaintenance    CalendarEventType = "maintenance"
	CalendarEventDocumentExpiry CalendarEventType = "document_expiry"
	CalendarEventNDT            CalendarEventType = "ndt"
	CalendarEventInspection     CalendarEventType = "inspection"
)

// CalendarEvent is derived at read time from the five source record sets.
// It is rebuilt on every calendar load and never persisted.
type CalendarEvent struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Date     string            `json:"date"` // ISO date (YYYY-MM-DD), also the sort key
	Type     CalendarEventType `json:"type"`
	Status   CheckStatus       `json:"status"`
	RideID   *string           `json:"ride_id,omitempty"`
	RideName string            `json:"ride_name,omitempty"`
}

// CalendarMonth is the response for a single month's aggregation.
type CalendarMonth struct {
	Year   int             `json:"year"`
	Month  time.Month      `json:"month"`
	Events []CalendarEvent `json:"events"`
}
