package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"rideready-api/models"
)

// CalendarService synthesizes the unified monthly event list from five
// otherwise-unrelated record sets. Nothing here is persisted; every call
// rebuilds the month from scratch.
type CalendarService struct {
	db *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{db: db}
}

// GetMonthEvents runs the five source queries concurrently, merges the
// results into labelled calendar events, backfills ride names in one batch
// query and sorts ascending by date.
func (s *CalendarService) GetMonthEvents(ctx context.Context, userID string, year int, month time.Month) (*models.CalendarMonth, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	var (
		checks      []models.InspectionCheck
		maintenance []models.MaintenanceRecord
		documents   []models.Document
		ndts        []models.NDTSchedule
		inspections []models.InspectionSchedule
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND check_date BETWEEN ? AND ?", userID, monthStart, monthEnd).
			Find(&checks).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND next_due_date BETWEEN ? AND ?", userID, monthStart, monthEnd).
			Find(&maintenance).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND expires_at BETWEEN ? AND ?", userID, monthStart, monthEnd).
			Find(&documents).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND is_active = ? AND next_due_date BETWEEN ? AND ?", userID, true, monthStart, monthEnd).
			Find(&ndts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ? AND is_active = ? AND next_due_date BETWEEN ? AND ?", userID, true, monthStart, monthEnd).
			Find(&inspections).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load calendar sources: %w", err)
	}

	rideNames, err := s.fetchRideNames(ctx, collectRideIDs(checks, maintenance, documents, ndts, inspections))
	if err != nil {
		return nil, err
	}

	events := MergeCalendarEvents(checks, maintenance, documents, ndts, inspections, rideNames, time.Now())

	return &models.CalendarMonth{
		Year:   year,
		Month:  month,
		Events: events,
	}, nil
}

func (s *CalendarService) fetchRideNames(ctx context.Context, rideIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(rideIDs))
	if len(rideIDs) == 0 {
		return names, nil
	}

	var rides []models.Ride
	if err := s.db.WithContext(ctx).Select("id", "ride_name").Where("id IN ?", rideIDs).Find(&rides).Error; err != nil {
		return nil, fmt.Errorf("failed to load ride names: %w", err)
	}
	for _, ride := range rides {
		names[ride.ID] = ride.RideName
	}
	return names, nil
}

func collectRideIDs(
	checks []models.InspectionCheck,
	maintenance []models.MaintenanceRecord,
	documents []models.Document,
	ndts []models.NDTSchedule,
	inspections []models.InspectionSchedule,
) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, c := range checks {
		add(c.RideID)
	}
	for _, m := range maintenance {
		add(m.RideID)
	}
	for _, d := range documents {
		if d.RideID != nil {
			add(*d.RideID)
		}
	}
	for _, n := range ndts {
		add(n.RideID)
	}
	for _, i := range inspections {
		add(i.RideID)
	}
	return ids
}

// MergeCalendarEvents maps the five source collections into labelled events
// and sorts them ascending by ISO date string. Checks carry their own
// persisted status; inspection schedules compute overdue against today;
// everything else defaults to pending. No deduplication: a maintenance due
// date and a document expiry on the same day stay two separate events.
func MergeCalendarEvents(
	checks []models.InspectionCheck,
	maintenance []models.MaintenanceRecord,
	documents []models.Document,
	ndts []models.NDTSchedule,
	inspections []models.InspectionSchedule,
	rideNames map[string]string,
	today time.Time,
) []models.CalendarEvent {
	todayDate := today.Format("2006-01-02")
	events := make([]models.CalendarEvent, 0,
		len(checks)+len(maintenance)+len(documents)+len(ndts)+len(inspections))

	for _, check := range checks {
		rideID := check.RideID
		events = append(events, models.CalendarEvent{
			ID:       "check-" + check.ID,
			Title:    eventTitle(rideNames[rideID], check.CheckType),
			Date:     check.CheckDate.Format("2006-01-02"),
			Type:     models.CalendarEventCheck,
			Status:   check.Status,
			RideID:   &rideID,
			RideName: rideNames[rideID],
		})
	}

	for _, record := range maintenance {
		if record.NextDueDate == nil {
			continue
		}
		rideID := record.RideID
		events = append(events, models.CalendarEvent{
			ID:       "maintenance-" + record.ID,
			Title:    eventTitle(rideNames[rideID], record.MaintenanceType+" maintenance"),
			Date:     record.NextDueDate.Format("2006-01-02"),
			Type:     models.CalendarEventMaintenance,
			Status:   models.CheckStatusPending,
			RideID:   &rideID,
			RideName: rideNames[rideID],
		})
	}

	for _, document := range documents {
		if document.ExpiresAt == nil {
			continue
		}
		event := models.CalendarEvent{
			ID:     "document-" + document.ID,
			Title:  document.DocumentName + " expires",
			Date:   document.ExpiresAt.Format("2006-01-02"),
			Type:   models.CalendarEventDocumentExpiry,
			Status: models.CheckStatusPending,
		}
		if document.RideID != nil {
			event.RideID = document.RideID
			event.RideName = rideNames[*document.RideID]
			event.Title = eventTitle(event.RideName, document.DocumentName+" expires")
		}
		events = append(events, event)
	}

	for _, ndt := range ndts {
		rideID := ndt.RideID
		events = append(events, models.CalendarEvent{
			ID:       "ndt-" + ndt.ID,
			Title:    eventTitle(rideNames[rideID], ndt.NDTType+" NDT"),
			Date:     ndt.NextDueDate.Format("2006-01-02"),
			Type:     models.CalendarEventNDT,
			Status:   models.CheckStatusPending,
			RideID:   &rideID,
			RideName: rideNames[rideID],
		})
	}

	for _, inspection := range inspections {
		status := models.CheckStatusPending
		date := inspection.NextDueDate.Format("2006-01-02")
		if date < todayDate {
			status = models.CheckStatusOverdue
		}
		rideID := inspection.RideID
		events = append(events, models.CalendarEvent{
			ID:       "inspection-" + inspection.ID,
			Title:    eventTitle(rideNames[rideID], inspection.InspectionType+" inspection"),
			Date:     date,
			Type:     models.CalendarEventInspection,
			Status:   status,
			RideID:   &rideID,
			RideName: rideNames[rideID],
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})

	return events
}

func eventTitle(rideName, base string) string {
	if rideName == "" {
		return base
	}
	return rideName + ": " + base
}
