package jobs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/services"
)

// ReminderJob sweeps for upcoming document expiries and due inspections and
// NDT tests, creating notification rows and sending reminder emails. A
// target gets at most one notification per day; emails are best effort.
type ReminderJob struct {
	db           *gorm.DB
	emailService *services.EmailService
	ticker       *time.Ticker
	done         chan bool
}

func NewReminderJob(db *gorm.DB, emailService *services.EmailService, interval time.Duration) *ReminderJob {
	return &ReminderJob{
		db:           db,
		emailService: emailService,
		ticker:       time.NewTicker(interval),
		done:         make(chan bool),
	}
}

// Start begins the reminder job
func (j *ReminderJob) Start() {
	fmt.Println("Reminder job started")

	go func() {
		// Run immediately on start
		j.sweep()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.sweep()
			case <-j.done:
				fmt.Println("Reminder job stopped")
				return
			}
		}
	}()
}

// Stop stops the reminder job
func (j *ReminderJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *ReminderJob) sweep() {
	fmt.Println("Running reminder sweep...")

	j.sweepDocuments()
	j.sweepInspections()
	j.sweepNDT()

	fmt.Println("Reminder sweep completed")
}

func (j *ReminderJob) sweepDocuments() {
	cutoff := time.Now().AddDate(0, 0, 30)

	var documents []models.Document
	err := j.db.
		Where("is_latest_version = ? AND expires_at IS NOT NULL AND expires_at BETWEEN ? AND ?",
			true, time.Now(), cutoff).
		Find(&documents).Error
	if err != nil {
		fmt.Printf("Error loading expiring documents: %v\n", err)
		return
	}

	for i := range documents {
		document := documents[i]
		title := fmt.Sprintf("%s expires on %s", document.DocumentName, document.ExpiresAt.Format("2 January 2006"))
		if !j.notify(document.UserID, models.NotificationTypeDocumentExpiry, title,
			"Upload a replacement before the expiry date to stay compliant.", document.ID) {
			continue
		}

		var user models.User
		if err := j.db.First(&user, "id = ?", document.UserID).Error; err != nil {
			continue
		}
		if err := j.emailService.SendDocumentExpiryReminder(user.Email, user.Name, document.DocumentName, *document.ExpiresAt); err != nil {
			fmt.Printf("Error sending document expiry email to %s: %v\n", user.Email, err)
		}
	}
}

func (j *ReminderJob) sweepInspections() {
	cutoff := time.Now().AddDate(0, 0, 14)

	var schedules []models.InspectionSchedule
	err := j.db.Preload("Ride").
		Where("is_active = ? AND next_due_date BETWEEN ? AND ?", true, time.Now(), cutoff).
		Find(&schedules).Error
	if err != nil {
		fmt.Printf("Error loading due inspection schedules: %v\n", err)
		return
	}

	for i := range schedules {
		schedule := schedules[i]
		rideName := schedule.Ride.RideName
		title := fmt.Sprintf("%s inspection due on %s", schedule.InspectionType, schedule.NextDueDate.Format("2 January 2006"))
		if rideName != "" {
			title = rideName + ": " + title
		}
		if !j.notify(schedule.UserID, models.NotificationTypeInspectionDue, title,
			"Book the inspection before the due date.", schedule.ID) {
			continue
		}

		var user models.User
		if err := j.db.First(&user, "id = ?", schedule.UserID).Error; err != nil {
			continue
		}
		if err := j.emailService.SendInspectionReminder(user.Email, user.Name, rideName, schedule.InspectionType, schedule.NextDueDate); err != nil {
			fmt.Printf("Error sending inspection reminder email to %s: %v\n", user.Email, err)
		}
	}
}

func (j *ReminderJob) sweepNDT() {
	cutoff := time.Now().AddDate(0, 0, 14)

	var schedules []models.NDTSchedule
	err := j.db.Preload("Ride").
		Where("is_active = ? AND next_due_date BETWEEN ? AND ?", true, time.Now(), cutoff).
		Find(&schedules).Error
	if err != nil {
		fmt.Printf("Error loading due NDT schedules: %v\n", err)
		return
	}

	for i := range schedules {
		schedule := schedules[i]
		rideName := schedule.Ride.RideName
		title := fmt.Sprintf("%s NDT due on %s", schedule.NDTType, schedule.NextDueDate.Format("2 January 2006"))
		if rideName != "" {
			title = rideName + ": " + title
		}
		if !j.notify(schedule.UserID, models.NotificationTypeNDTDue, title,
			"Arrange the test before the due date.", schedule.ID) {
			continue
		}

		var user models.User
		if err := j.db.First(&user, "id = ?", schedule.UserID).Error; err != nil {
			continue
		}
		if err := j.emailService.SendInspectionReminder(user.Email, user.Name, rideName, schedule.NDTType+" NDT", schedule.NextDueDate); err != nil {
			fmt.Printf("Error sending NDT reminder email to %s: %v\n", user.Email, err)
		}
	}
}

// localDayStart is the midnight opening the local calendar day containing t.
func localDayStart(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// notify inserts a notification unless one for the same target already went
// out today. The day boundary is local midnight, not a UTC truncation.
// Reports whether a new row was created.
func (j *ReminderJob) notify(userID string, notificationType models.NotificationType, title, message, relatedID string) bool {
	dayStart := localDayStart(time.Now())

	var existing int64
	err := j.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND related_id = ? AND created_at >= ?",
			userID, notificationType, relatedID, dayStart).
		Count(&existing).Error
	if err != nil {
		fmt.Printf("Error checking existing notifications: %v\n", err)
		return false
	}
	if existing > 0 {
		return false
	}

	notification := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		RelatedID: &relatedID,
	}
	if err := j.db.Create(&notification).Error; err != nil {
		fmt.Printf("Error creating notification: %v\n", err)
		return false
	}
	return true
}
