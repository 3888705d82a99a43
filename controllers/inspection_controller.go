package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/utils"
)

type InspectionController struct {
	db *gorm.DB
}

func NewInspectionController(db *gorm.DB) *InspectionController {
	return &InspectionController{db: db}
}

type InspectionScheduleRequest struct {
	RideID         string `json:"ride_id" binding:"required"`
	InspectionType string `json:"inspection_type" binding:"required"`
	Frequency      string `json:"frequency" binding:"required"`
	NextDueDate    string `json:"next_due_date" binding:"required"`
	Notes          string `json:"notes"`
}

func (ic *InspectionController) GetSchedules(c *gin.Context) {
	userID := c.GetString("user_id")

	query := ic.db.Preload("Ride").Where("user_id = ?", userID)
	if rideID := c.Query("ride_id"); rideID != "" {
		query = query.Where("ride_id = ?", rideID)
	}
	if c.DefaultQuery("active_only", "true") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var schedules []models.InspectionSchedule
	if err := query.Order("next_due_date ASC").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inspection schedules"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (ic *InspectionController) CreateSchedule(c *gin.Context) {
	userID := c.GetString("user_id")

	var req InspectionScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidFrequency(req.Frequency) {
		utils.SendValidationError(c, "frequency must be one of weekly, monthly, annual")
		return
	}

	nextDueDate, err := parseDate(req.NextDueDate)
	if err != nil {
		utils.SendValidationError(c, "next_due_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	var ride models.Ride
	if err := ic.db.First(&ride, "id = ? AND user_id = ?", req.RideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	schedule := models.InspectionSchedule{
		ID:             uuid.New().String(),
		UserID:         userID,
		RideID:         req.RideID,
		InspectionType: req.InspectionType,
		Frequency:      req.Frequency,
		NextDueDate:    nextDueDate,
		IsActive:       true,
		Notes:          req.Notes,
	}

	if err := ic.db.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inspection schedule"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (ic *InspectionController) UpdateSchedule(c *gin.Context) {
	userID := c.GetString("user_id")
	scheduleID := c.Param("id")

	var schedule models.InspectionSchedule
	if err := ic.db.First(&schedule, "id = ? AND user_id = ?", scheduleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection schedule not found or access denied"})
		return
	}

	var req struct {
		InspectionType *string `json:"inspection_type"`
		Frequency      *string `json:"frequency"`
		NextDueDate    *string `json:"next_due_date"`
		IsActive       *bool   `json:"is_active"`
		Notes          *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.InspectionType != nil {
		updates["inspection_type"] = *req.InspectionType
	}
	if req.Frequency != nil {
		if !utils.IsValidFrequency(*req.Frequency) {
			utils.SendValidationError(c, "frequency must be one of weekly, monthly, annual")
			return
		}
		updates["frequency"] = *req.Frequency
	}
	if req.NextDueDate != nil {
		parsed, err := parseDate(*req.NextDueDate)
		if err != nil {
			utils.SendValidationError(c, "next_due_date must be RFC3339 or YYYY-MM-DD")
			return
		}
		updates["next_due_date"] = parsed
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := ic.db.Model(&schedule).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inspection schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inspection schedule updated successfully"})
}

func (ic *InspectionController) DeleteSchedule(c *gin.Context) {
	userID := c.GetString("user_id")
	scheduleID := c.Param("id")

	var schedule models.InspectionSchedule
	if err := ic.db.First(&schedule, "id = ? AND user_id = ?", scheduleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection schedule not found or access denied"})
		return
	}

	if err := ic.db.Delete(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inspection schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inspection schedule deleted successfully"})
}

type InspectionCheckRequest struct {
	RideID    string `json:"ride_id" binding:"required"`
	CheckType string `json:"check_type" binding:"required"`
	CheckDate string `json:"check_date" binding:"required"`
	Notes     string `json:"notes"`
}

func (ic *InspectionController) GetChecks(c *gin.Context) {
	userID := c.GetString("user_id")

	query := ic.db.Preload("Ride").Where("user_id = ?", userID)
	if rideID := c.Query("ride_id"); rideID != "" {
		query = query.Where("ride_id = ?", rideID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var checks []models.InspectionCheck
	if err := query.Order("check_date DESC").Find(&checks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checks"})
		return
	}

	c.JSON(http.StatusOK, checks)
}

func (ic *InspectionController) CreateCheck(c *gin.Context) {
	userID := c.GetString("user_id")

	var req InspectionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkDate, err := parseDate(req.CheckDate)
	if err != nil {
		utils.SendValidationError(c, "check_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	var ride models.Ride
	if err := ic.db.First(&ride, "id = ? AND user_id = ?", req.RideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	check := models.InspectionCheck{
		ID:        uuid.New().String(),
		UserID:    userID,
		RideID:    req.RideID,
		CheckType: req.CheckType,
		CheckDate: checkDate,
		Status:    models.CheckStatusPending,
		Notes:     req.Notes,
	}

	if err := ic.db.Create(&check).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create check"})
		return
	}

	c.JSON(http.StatusCreated, check)
}

// CompleteCheck marks a check completed and stamps the completion time.
func (ic *InspectionController) CompleteCheck(c *gin.Context) {
	userID := c.GetString("user_id")
	checkID := c.Param("id")

	var check models.InspectionCheck
	if err := ic.db.First(&check, "id = ? AND user_id = ?", checkID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Check not found or access denied"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.CheckStatusCompleted,
		"completed_at": now,
	}

	if err := ic.db.Model(&check).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete check"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check completed successfully"})
}

func (ic *InspectionController) DeleteCheck(c *gin.Context) {
	userID := c.GetString("user_id")
	checkID := c.Param("id")

	var check models.InspectionCheck
	if err := ic.db.First(&check, "id = ? AND user_id = ?", checkID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Check not found or access denied"})
		return
	}

	if err := ic.db.Delete(&check).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete check"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check deleted successfully"})
}
