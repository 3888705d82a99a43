package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/utils"
)

type RideController struct {
	db *gorm.DB
}

func NewRideController(db *gorm.DB) *RideController {
	return &RideController{db: db}
}

type RideRequest struct {
	RideName         string  `json:"ride_name" binding:"required"`
	CategoryID       string  `json:"category_id" binding:"required"`
	Manufacturer     *string `json:"manufacturer"`
	SerialNumber     *string `json:"serial_number"`
	YearManufactured *int    `json:"year_manufactured"`
}

func (rc *RideController) GetRides(c *gin.Context) {
	userID := c.GetString("user_id")

	var rides []models.Ride
	if err := rc.db.Preload("Category").Where("user_id = ?", userID).Order("ride_name ASC").Find(&rides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rides"})
		return
	}

	c.JSON(http.StatusOK, rides)
}

func (rc *RideController) GetRide(c *gin.Context) {
	userID := c.GetString("user_id")
	rideID := c.Param("id")

	var ride models.Ride
	if err := rc.db.Preload("Category").First(&ride, "id = ? AND user_id = ?", rideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	c.JSON(http.StatusOK, ride)
}

func (rc *RideController) CreateRide(c *gin.Context) {
	userID := c.GetString("user_id")

	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.YearManufactured != nil && !utils.IsValidYearManufactured(*req.YearManufactured) {
		utils.SendValidationError(c, "year_manufactured is out of range")
		return
	}

	var category models.RideCategory
	if err := rc.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	ride := models.Ride{
		ID:               uuid.New().String(),
		UserID:           userID,
		CategoryID:       req.CategoryID,
		RideName:         req.RideName,
		Manufacturer:     req.Manufacturer,
		SerialNumber:     req.SerialNumber,
		YearManufactured: req.YearManufactured,
	}

	if err := rc.db.Create(&ride).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ride"})
		return
	}

	ride.Category = category
	c.JSON(http.StatusCreated, ride)
}

func (rc *RideController) UpdateRide(c *gin.Context) {
	userID := c.GetString("user_id")
	rideID := c.Param("id")

	var ride models.Ride
	if err := rc.db.First(&ride, "id = ? AND user_id = ?", rideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.YearManufactured != nil && !utils.IsValidYearManufactured(*req.YearManufactured) {
		utils.SendValidationError(c, "year_manufactured is out of range")
		return
	}

	updates := map[string]interface{}{
		"ride_name":         req.RideName,
		"category_id":       req.CategoryID,
		"manufacturer":      req.Manufacturer,
		"serial_number":     req.SerialNumber,
		"year_manufactured": req.YearManufactured,
	}

	if err := rc.db.Model(&ride).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ride"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ride updated successfully"})
}

// DeleteRide removes a ride along with its maintenance, inspection, check
// and NDT rows. Documents survive but are detached, which turns them into
// account-level (global) documents.
func (rc *RideController) DeleteRide(c *gin.Context) {
	userID := c.GetString("user_id")
	rideID := c.Param("id")

	var ride models.Ride
	if err := rc.db.First(&ride, "id = ? AND user_id = ?", rideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Document{}).Where("ride_id = ?", rideID).
			Updates(map[string]interface{}{"ride_id": nil, "is_global": true}).Error; err != nil {
			return err
		}
		if err := tx.Where("ride_id = ?", rideID).Delete(&models.MaintenanceRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ride_id = ?", rideID).Delete(&models.InspectionSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ride_id = ?", rideID).Delete(&models.InspectionCheck{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ride_id = ?", rideID).Delete(&models.NDTSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ride).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ride"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ride deleted successfully"})
}

// GetRideStatistics returns per-ride counters. The three counts are
// independent reads, so they run concurrently for latency only.
func (rc *RideController) GetRideStatistics(c *gin.Context) {
	userID := c.GetString("user_id")
	rideID := c.Param("id")

	var ride models.Ride
	if err := rc.db.First(&ride, "id = ? AND user_id = ?", rideID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
		return
	}

	stats := models.RideStatistics{RideID: rideID}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return rc.db.WithContext(ctx).Model(&models.Document{}).
			Where("ride_id = ? AND is_latest_version = ?", rideID, true).
			Count(&stats.DocumentCount).Error
	})
	g.Go(func() error {
		return rc.db.WithContext(ctx).Model(&models.MaintenanceRecord{}).
			Where("ride_id = ? AND status != ?", rideID, models.MaintenanceStatusCompleted).
			Count(&stats.OpenMaintenanceCount).Error
	})
	g.Go(func() error {
		return rc.db.WithContext(ctx).Model(&models.InspectionSchedule{}).
			Where("ride_id = ? AND is_active = ? AND next_due_date <= ?", rideID, true, time.Now().AddDate(0, 1, 0)).
			Count(&stats.UpcomingInspections).Error
	})

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ride statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
