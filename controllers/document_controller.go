package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/repositories"
	"rideready-api/services"
	"rideready-api/utils"
)

type DocumentController struct {
	db           *gorm.DB
	documentRepo *repositories.DocumentRepository
	storage      *services.StorageService
	emailService *services.EmailService
}

func NewDocumentController(db *gorm.DB, storage *services.StorageService, emailService *services.EmailService) *DocumentController {
	return &DocumentController{
		db:           db,
		documentRepo: repositories.NewDocumentRepository(db),
		storage:      storage,
		emailService: emailService,
	}
}

// UploadDocument accepts a multipart form:
//
//	file            the document itself (required)
//	document_name   logical name (required)
//	document_type   insurance, adips_doc, risk_assessment, method_statement, other (required)
//	ride_id         omit for a global document
//	expires_at      RFC3339 or YYYY-MM-DD
//	version_number  explicit version for version-controlled uploads
//	replace_document_id  prior version whose latest flag should flip
func (dc *DocumentController) UploadDocument(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	documentName := c.PostForm("document_name")
	documentType := c.PostForm("document_type")
	if documentName == "" || documentType == "" {
		utils.SendValidationError(c, "document_name and document_type are required")
		return
	}

	var rideID *string
	if id := c.PostForm("ride_id"); id != "" {
		var ride models.Ride
		if err := dc.db.First(&ride, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
			return
		}
		rideID = &id
	}

	var expiresAt *time.Time
	if raw := c.PostForm("expires_at"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			utils.SendValidationError(c, "expires_at must be RFC3339 or YYYY-MM-DD")
			return
		}
		expiresAt = &parsed
	}

	var replaceDocumentID *string
	if id := c.PostForm("replace_document_id"); id != "" {
		replaceDocumentID = &id
	}

	versionNumber := c.PostForm("version_number")
	switch {
	case versionNumber == "" && replaceDocumentID != nil:
		// Replacing without an explicit version bumps the chain's minor
		suggested, err := dc.documentRepo.SuggestNextVersion(userID, documentName, rideID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine next version"})
			return
		}
		versionNumber = suggested
	case versionNumber == "":
		versionNumber = "1.0"
	case !utils.IsValidVersionNumber(versionNumber):
		utils.SendValidationError(c, "version_number must look like 1.0")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key := services.ObjectKey(userID, rideID, fileHeader.Filename, time.Now())

	if err := dc.storage.Upload(c.Request.Context(), key, file, fileHeader.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	document := models.Document{
		ID:            uuid.New().String(),
		UserID:        userID,
		RideID:        rideID,
		DocumentName:  documentName,
		DocumentType:  documentType,
		FilePath:      key,
		FileSize:      fileHeader.Size,
		ContentType:   contentType,
		ExpiresAt:     expiresAt,
		IsGlobal:      rideID == nil,
		VersionNumber: versionNumber,
	}

	if err := dc.documentRepo.CreateVersion(&document, replaceDocumentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocuments lists the caller's documents. Filters: ride_id, global=true,
// latest_only=true, expiring_within_days=N.
func (dc *DocumentController) GetDocuments(c *gin.Context) {
	userID := c.GetString("user_id")

	query := dc.db.Preload("Ride").Where("user_id = ?", userID)

	if rideID := c.Query("ride_id"); rideID != "" {
		query = query.Where("ride_id = ?", rideID)
	}
	if c.Query("global") == "true" {
		query = query.Where("ride_id IS NULL")
	}
	if c.DefaultQuery("latest_only", "true") == "true" {
		query = query.Where("is_latest_version = ?", true)
	}
	if raw := c.Query("expiring_within_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			utils.SendValidationError(c, "expiring_within_days must be a non-negative integer")
			return
		}
		query = query.Where("expires_at IS NOT NULL AND expires_at <= ?", time.Now().AddDate(0, 0, days))
	}

	var documents []models.Document
	if err := query.Order("created_at DESC").Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetDocumentVersions lists the version chain for a logical document name
// and suggests the next version number.
func (dc *DocumentController) GetDocumentVersions(c *gin.Context) {
	userID := c.GetString("user_id")

	documentName := c.Query("name")
	if documentName == "" {
		utils.SendValidationError(c, "name query parameter is required")
		return
	}

	var rideID *string
	if id := c.Query("ride_id"); id != "" {
		rideID = &id
	}

	versions, err := dc.documentRepo.GetVersionChain(userID, documentName, rideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document versions"})
		return
	}

	suggested := "1.0"
	if len(versions) > 0 {
		suggested = repositories.NextVersionNumber(versions[0].VersionNumber)
	}

	c.JSON(http.StatusOK, models.DocumentVersionInfo{
		Versions:             versions,
		SuggestedNextVersion: suggested,
	})
}

// DownloadDocument returns a time-limited presigned URL for the file.
func (dc *DocumentController) DownloadDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("id")

	var document models.Document
	if err := dc.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found or access denied"})
		return
	}

	url, err := dc.storage.PresignedURL(c.Request.Context(), document.FilePath, time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate download link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url})
}

type SendDocumentRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
}

// SendDocument emails a 24-hour download link to a recipient.
func (dc *DocumentController) SendDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("id")

	var req SendDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var document models.Document
	if err := dc.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found or access denied"})
		return
	}

	var user models.User
	if err := dc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sender"})
		return
	}

	url, err := dc.storage.PresignedURL(c.Request.Context(), document.FilePath, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate download link"})
		return
	}

	if err := dc.emailService.SendDocumentEmail(req.RecipientEmail, user.Name, document.DocumentName, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send document email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document sent successfully"})
}

func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("id")

	var document models.Document
	if err := dc.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found or access denied"})
		return
	}

	if err := dc.db.Delete(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	// Object removal is best effort; the row is already gone
	if err := dc.storage.Delete(c.Request.Context(), document.FilePath); err != nil {
		fmt.Printf("Failed to delete stored object %s: %v\n", document.FilePath, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
