package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/utils"
)

type NDTController struct {
	db *gorm.DB
}

func NewNDTController(db *gorm.DB) *NDTController {
	return &NDTController{db: db}
}

type NDTScheduleRequest struct {
	RideID      string `json:"ride_id" binding:"required"`
	NDTType     string `json:"ndt_type" binding:"required"`
	TestMethod  string `json:"test_method"`
	NextDueDate string `json:"next_due_date" binding:"required"`
	Notes       string `json:"notes"`
}

func (nc *NDTController) GetSchedules(c *gin.Context) {
	userID := c.GetString("user_id")

	query := nc.db.Preload("Ride").Where("user_id = ?", userID)
	if rideID := c.Query("ride_id"); rideID != "" {
		query = query.Where("ride_id = ?", rideID)
	}
	if c.DefaultQuery("active_only", "true") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var schedules []models.NDTSchedule
	if err := query.Order("next_due_date ASC").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch NDT schedules"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (nc *NDTController) CreateSchedule(c *gin.Context) {
	userID := c.GetString("user_id")

	var req NDTScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nextDueDate, err := parseDate(req.NextDueDate)
	if err != nil {
		utils.SendValidationError(c, "next_due_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	var ride models.Ride
	if err := nc.db.First(&ride, "id = ? AND user_id = ?", req.RideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	schedule := models.NDTSchedule{
		ID:          uuid.New().String(),
		UserID:      userID,
		RideID:      req.RideID,
		NDTType:     req.NDTType,
		TestMethod:  req.TestMethod,
		NextDueDate: nextDueDate,
		IsActive:    true,
		Notes:       req.Notes,
	}

	if err := nc.db.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create NDT schedule"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (nc *NDTController) UpdateSchedule(c *gin.Context) {
	userID := c.GetString("user_id")
	scheduleID := c.Param("id")

	var schedule models.NDTSchedule
	if err := nc.db.First(&schedule, "id = ? AND user_id = ?", scheduleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NDT schedule not found or access denied"})
		return
	}

	var req struct {
		NDTType     *string `json:"ndt_type"`
		TestMethod  *string `json:"test_method"`
		NextDueDate *string `json:"next_due_date"`
		IsActive    *bool   `json:"is_active"`
		Notes       *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.NDTType != nil {
		updates["ndt_type"] = *req.NDTType
	}
	if req.TestMethod != nil {
		updates["test_method"] = *req.TestMethod
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

	if err := nc.db.Model(&schedule).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update NDT schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "NDT schedule updated successfully"})
}

func (nc *NDTController) DeleteSchedule(c *gin.Context) {
	userID := c.GetString("user_id")
	scheduleID := c.Param("id")

	var schedule models.NDTSchedule
	if err := nc.db.First(&schedule, "id = ? AND user_id = ?", scheduleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NDT schedule not found or access denied"})
		return
	}

	if err := nc.db.Delete(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete NDT schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "NDT schedule deleted successfully"})
}
