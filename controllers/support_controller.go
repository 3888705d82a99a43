package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/services"
)

type SupportController struct {
	db           *gorm.DB
	emailService *services.EmailService
}

func NewSupportController(db *gorm.DB, emailService *services.EmailService) *SupportController {
	return &SupportController{db: db, emailService: emailService}
}

type SupportMessageRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (sc *SupportController) CreateMessage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := sc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	message := models.SupportMessage{
		ID:      uuid.New().String(),
		UserID:  userID,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "open",
	}

	if err := sc.db.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create support message"})
		return
	}

	// Email failure does not undo the saved message
	if err := sc.emailService.SendSupportNotification(user.Name, user.Email, req.Subject, req.Message); err != nil {
		fmt.Printf("Failed to send support notification email: %v\n", err)
	}

	c.JSON(http.StatusCreated, message)
}

func (sc *SupportController) GetMessages(c *gin.Context) {
	userID := c.GetString("user_id")

	var messages []models.SupportMessage
	if err := sc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch support messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetAllMessages returns every user's messages (admin view).
func (sc *SupportController) GetAllMessages(c *gin.Context) {
	query := sc.db.Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []models.SupportMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch support messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

type SupportResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

// RespondToMessage records an admin reply and notifies the author in-app.
func (sc *SupportController) RespondToMessage(c *gin.Context) {
	messageID := c.Param("id")

	var req SupportResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var message models.SupportMessage
	if err := sc.db.First(&message, "id = ?", messageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Support message not found"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"response":     req.Response,
		"responded_at": now,
		"status":       "answered",
	}
	if err := sc.db.Model(&message).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save response"})
		return
	}

	notification := models.Notification{
		ID:        uuid.New().String(),
		UserID:    message.UserID,
		Type:      models.NotificationTypeSupportReply,
		Title:     "Support reply: " + message.Subject,
		Message:   req.Response,
		RelatedID: &message.ID,
	}
	if err := sc.db.Create(&notification).Error; err != nil {
		fmt.Printf("Failed to create support reply notification: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Response sent successfully"})
}
