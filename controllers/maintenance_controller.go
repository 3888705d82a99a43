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

type MaintenanceController struct {
	db *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{db: db}
}

type MaintenanceRequest struct {
	RideID          string   `json:"ride_id" binding:"required"`
	MaintenanceType string   `json:"maintenance_type" binding:"required"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	Cost            *float64 `json:"cost"`
	PerformedBy     *string  `json:"performed_by"`
	PerformedAt     *string  `json:"performed_at"`
	NextDueDate     *string  `json:"next_due_date"`
}

func (mc *MaintenanceController) GetMaintenanceRecords(c *gin.Context) {
	userID := c.GetString("user_id")

	query := mc.db.Preload("Ride").Where("user_id = ?", userID)
	if rideID := c.Query("ride_id"); rideID != "" {
		query = query.Where("ride_id = ?", rideID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var records []models.MaintenanceRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (mc *MaintenanceController) CreateMaintenanceRecord(c *gin.Context) {
	userID := c.GetString("user_id")

	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ride models.Ride
	if err := mc.db.First(&ride, "id = ? AND user_id = ?", req.RideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	record := models.MaintenanceRecord{
		ID:              uuid.New().String(),
		UserID:          userID,
		RideID:          req.RideID,
		MaintenanceType: req.MaintenanceType,
		Description:     req.Description,
		Status:          models.MaintenanceStatusPending,
		Cost:            req.Cost,
		PerformedBy:     req.PerformedBy,
	}

	if req.Status != "" {
		status := models.MaintenanceStatus(req.Status)
		if !isValidMaintenanceStatus(status) {
			utils.SendValidationError(c, "status must be one of pending, in_progress, completed")
			return
		}
		record.Status = status
	}

	var err error
	if record.PerformedAt, err = parseOptionalDate(req.PerformedAt); err != nil {
		utils.SendValidationError(c, "performed_at must be RFC3339 or YYYY-MM-DD")
		return
	}
	if record.NextDueDate, err = parseOptionalDate(req.NextDueDate); err != nil {
		utils.SendValidationError(c, "next_due_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	if err := mc.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (mc *MaintenanceController) UpdateMaintenanceRecord(c *gin.Context) {
	userID := c.GetString("user_id")
	recordID := c.Param("id")

	var record models.MaintenanceRecord
	if err := mc.db.First(&record, "id = ? AND user_id = ?", recordID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found or access denied"})
		return
	}

	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performedAt, err := parseOptionalDate(req.PerformedAt)
	if err != nil {
		utils.SendValidationError(c, "performed_at must be RFC3339 or YYYY-MM-DD")
		return
	}
	nextDueDate, err := parseOptionalDate(req.NextDueDate)
	if err != nil {
		utils.SendValidationError(c, "next_due_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	updates := map[string]interface{}{
		"maintenance_type": req.MaintenanceType,
		"description":      req.Description,
		"cost":             req.Cost,
		"performed_by":     req.PerformedBy,
		"performed_at":     performedAt,
		"next_due_date":    nextDueDate,
	}

	if req.Status != "" {
		status := models.MaintenanceStatus(req.Status)
		if !isValidMaintenanceStatus(status) {
			utils.SendValidationError(c, "status must be one of pending, in_progress, completed")
			return
		}
		updates["status"] = status
	}

	if err := mc.db.Model(&record).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record updated successfully"})
}

func (mc *MaintenanceController) DeleteMaintenanceRecord(c *gin.Context) {
	userID := c.GetString("user_id")
	recordID := c.Param("id")

	var record models.MaintenanceRecord
	if err := mc.db.First(&record, "id = ? AND user_id = ?", recordID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found or access denied"})
		return
	}

	if err := mc.db.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete maintenance record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record deleted successfully"})
}

func isValidMaintenanceStatus(status models.MaintenanceStatus) bool {
	switch status {
	case models.MaintenanceStatusPending, models.MaintenanceStatusInProgress, models.MaintenanceStatusCompleted:
		return true
	}
	return false
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
