package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/services"
	"rideready-api/utils"
)

type BulletinController struct {
	db      *gorm.DB
	scraper *services.ScraperService
}

func NewBulletinController(db *gorm.DB, scraper *services.ScraperService) *BulletinController {
	return &BulletinController{db: db, scraper: scraper}
}

type BulletinRequest struct {
	CategoryID     string  `json:"category_id"`
	Title          string  `json:"title" binding:"required"`
	Content        string  `json:"content" binding:"required"`
	BulletinNumber *string `json:"bulletin_number"`
	Priority       string  `json:"priority"`
	IssueDate      string  `json:"issue_date" binding:"required"`
}

// GetBulletins returns the bulletins relevant to the caller's rides.
// Relevance is recomputed on every call; with no rides the full list comes
// back unfiltered.
func (bc *BulletinController) GetBulletins(c *gin.Context) {
	userID := c.GetString("user_id")

	var bulletins []models.TechnicalBulletin
	if err := bc.db.Preload("Category").Order("issue_date DESC").Find(&bulletins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bulletins"})
		return
	}

	var rides []models.Ride
	if err := bc.db.Preload("Category").Where("user_id = ?", userID).Find(&rides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rides"})
		return
	}

	c.JSON(http.StatusOK, services.FilterBulletinsForRides(bulletins, rides))
}

// GetAllBulletins returns every bulletin unfiltered (admin view).
func (bc *BulletinController) GetAllBulletins(c *gin.Context) {
	var bulletins []models.TechnicalBulletin
	if err := bc.db.Preload("Category").Order("issue_date DESC").Find(&bulletins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bulletins"})
		return
	}

	c.JSON(http.StatusOK, bulletins)
}

func (bc *BulletinController) CreateBulletin(c *gin.Context) {
	var req BulletinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		utils.SendValidationError(c, "issue_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	priority := models.BulletinPriority(req.Priority)
	if req.Priority == "" {
		priority = models.BulletinPriorityMedium
	} else if !isValidPriority(priority) {
		utils.SendValidationError(c, "priority must be one of low, medium, high, critical")
		return
	}

	bulletin := models.TechnicalBulletin{
		ID:             uuid.New().String(),
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Content:        req.Content,
		BulletinNumber: req.BulletinNumber,
		Priority:       priority,
		IssueDate:      issueDate,
	}

	// Auto-assign a category when the admin leaves it blank
	if bulletin.CategoryID == "" {
		var categories []models.RideCategory
		bc.db.Order("created_at ASC").Find(&categories)
		bulletin.CategoryID = services.BestCategoryForBulletin(bulletin, categories)
	}

	if err := bc.db.Create(&bulletin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bulletin"})
		return
	}

	c.JSON(http.StatusCreated, bulletin)
}

func (bc *BulletinController) UpdateBulletin(c *gin.Context) {
	bulletinID := c.Param("id")

	var bulletin models.TechnicalBulletin
	if err := bc.db.First(&bulletin, "id = ?", bulletinID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bulletin not found"})
		return
	}

	var req BulletinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		utils.SendValidationError(c, "issue_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	priority := models.BulletinPriority(req.Priority)
	if req.Priority == "" {
		priority = bulletin.Priority
	} else if !isValidPriority(priority) {
		utils.SendValidationError(c, "priority must be one of low, medium, high, critical")
		return
	}

	updates := map[string]interface{}{
		"category_id":     req.CategoryID,
		"title":           req.Title,
		"content":         req.Content,
		"bulletin_number": req.BulletinNumber,
		"priority":        priority,
		"issue_date":      issueDate,
	}

	if err := bc.db.Model(&bulletin).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bulletin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bulletin updated successfully"})
}

func (bc *BulletinController) DeleteBulletin(c *gin.Context) {
	bulletinID := c.Param("id")

	if err := bc.db.Delete(&models.TechnicalBulletin{}, "id = ?", bulletinID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bulletin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bulletin deleted successfully"})
}

// TriggerScrape runs a bulletin scrape immediately (admin only).
func (bc *BulletinController) TriggerScrape(c *gin.Context) {
	start := time.Now()
	inserted, err := bc.scraper.ScrapeAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scrape failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Scrape completed",
		"new_bulletins": inserted,
		"duration_ms":   time.Since(start).Milliseconds(),
	})
}

func isValidPriority(p models.BulletinPriority) bool {
	switch p {
	case models.BulletinPriorityLow, models.BulletinPriorityMedium, models.BulletinPriorityHigh, models.BulletinPriorityCritical:
		return true
	}
	return false
}
