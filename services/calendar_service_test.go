package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rideready-api/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestMergeCalendarEventsSortedByDate(t *testing.T) {
	today := date(2026, time.March, 10)
	checks := []models.InspectionCheck{
		{ID: "c1", RideID: "r1", CheckType: "daily", CheckDate: date(2026, time.March, 20), Status: models.CheckStatusPending},
	}
	maintenance := []models.MaintenanceRecord{
		{ID: "m1", RideID: "r1", MaintenanceType: "routine", NextDueDate: timePtr(date(2026, time.March, 5))},
	}
	documents := []models.Document{
		{ID: "d1", DocumentName: "Insurance Certificate", ExpiresAt: timePtr(date(2026, time.March, 12))},
	}

	events := MergeCalendarEvents(checks, maintenance, documents, nil, nil, map[string]string{"r1": "Waltzer"}, today)

	assert.Len(t, events, 3)
	assert.Equal(t, "2026-03-05", events[0].Date)
	assert.Equal(t, "2026-03-12", events[1].Date)
	assert.Equal(t, "2026-03-20", events[2].Date)
}

func TestMergeCalendarEventsRideNamePrefix(t *testing.T) {
	today := date(2026, time.March, 10)
	maintenance := []models.MaintenanceRecord{
		{ID: "m1", RideID: "r1", MaintenanceType: "routine", NextDueDate: timePtr(date(2026, time.March, 5))},
	}

	events := MergeCalendarEvents(nil, maintenance, nil, nil, nil, map[string]string{"r1": "Waltzer"}, today)

	assert.Len(t, events, 1)
	assert.Equal(t, "Waltzer: routine maintenance", events[0].Title)
	assert.Equal(t, "Waltzer", events[0].RideName)
	assert.Equal(t, models.CalendarEventMaintenance, events[0].Type)
}

func TestMergeCalendarEventsGlobalDocumentHasNoRide(t *testing.T) {
	documents := []models.Document{
		{ID: "d1", DocumentName: "Public Liability Insurance", ExpiresAt: timePtr(date(2026, time.April, 1))},
	}

	events := MergeCalendarEvents(nil, nil, documents, nil, nil, nil, date(2026, time.March, 1))

	assert.Len(t, events, 1)
	assert.Nil(t, events[0].RideID)
	assert.Equal(t, "Public Liability Insurance expires", events[0].Title)
	assert.Equal(t, models.CalendarEventDocumentExpiry, events[0].Type)
	assert.Equal(t, models.CheckStatusPending, events[0].Status)
}

func TestMergeCalendarEventsInspectionOverdueComputedAgainstToday(t *testing.T) {
	today := date(2026, time.March, 15)
	inspections := []models.InspectionSchedule{
		{ID: "i1", RideID: "r1", InspectionType: "adips", NextDueDate: date(2026, time.March, 10), IsActive: true},
		{ID: "i2", RideID: "r1", InspectionType: "electrical", NextDueDate: date(2026, time.March, 20), IsActive: true},
	}

	events := MergeCalendarEvents(nil, nil, nil, nil, inspections, nil, today)

	assert.Len(t, events, 2)
	assert.Equal(t, models.CheckStatusOverdue, events[0].Status)
	assert.Equal(t, models.CheckStatusPending, events[1].Status)
}

func TestMergeCalendarEventsCheckKeepsPersistedStatus(t *testing.T) {
	checks := []models.InspectionCheck{
		{ID: "c1", RideID: "r1", CheckType: "daily", CheckDate: date(2026, time.March, 1), Status: models.CheckStatusCompleted},
	}

	events := MergeCalendarEvents(checks, nil, nil, nil, nil, nil, date(2026, time.March, 15))

	assert.Len(t, events, 1)
	assert.Equal(t, models.CheckStatusCompleted, events[0].Status)
}

func TestMergeCalendarEventsNoDeduplicationSameDay(t *testing.T) {
	day := date(2026, time.March, 8)
	maintenance := []models.MaintenanceRecord{
		{ID: "m1", RideID: "r1", MaintenanceType: "routine", NextDueDate: timePtr(day)},
	}
	documents := []models.Document{
		{ID: "d1", RideID: strPtr("r1"), DocumentName: "ADIPS DOC", ExpiresAt: timePtr(day)},
	}

	events := MergeCalendarEvents(nil, maintenance, documents, nil, nil, map[string]string{"r1": "Dodgems"}, day)

	assert.Len(t, events, 2)
	assert.Equal(t, events[0].Date, events[1].Date)
}

func TestMergeCalendarEventsSkipsRecordsWithoutDates(t *testing.T) {
	maintenance := []models.MaintenanceRecord{
		{ID: "m1", RideID: "r1", MaintenanceType: "repair"},
	}
	documents := []models.Document{
		{ID: "d1", DocumentName: "Method Statement"},
	}

	events := MergeCalendarEvents(nil, maintenance, documents, nil, nil, nil, date(2026, time.March, 1))
	assert.Empty(t, events)
}

func TestCollectRideIDsDeduplicates(t *testing.T) {
	checks := []models.InspectionCheck{{RideID: "r1"}, {RideID: "r2"}}
	maintenance := []models.MaintenanceRecord{{RideID: "r1"}}
	documents := []models.Document{{RideID: strPtr("r3")}, {}}
	ndts := []models.NDTSchedule{{RideID: "r2"}}

	ids := collectRideIDs(checks, maintenance, documents, ndts, nil)
	assert.ElementsMatch(t, []string{"r1", "r2", "r3"}, ids)
}
