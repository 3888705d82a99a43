package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rideready-api/models"
	"rideready-api/utils"
)

type RiskAssessmentController struct {
	db *gorm.DB
}

func NewRiskAssessmentController(db *gorm.DB) *RiskAssessmentController {
	return &RiskAssessmentController{db: db}
}

type RiskAssessmentItemRequest struct {
	Hazard          string   `json:"hazard" binding:"required"`
	PersonsAtRisk   string   `json:"persons_at_risk"`
	Likelihood      int      `json:"likelihood" binding:"required"`
	Severity        int      `json:"severity" binding:"required"`
	ControlMeasures []string `json:"control_measures"`
}

type RiskAssessmentRequest struct {
	RideID         *string                     `json:"ride_id"`
	Title          string                      `json:"title" binding:"required"`
	AssessorName   string                      `json:"assessor_name" binding:"required"`
	AssessmentDate string                      `json:"assessment_date" binding:"required"`
	ReviewDate     *string                     `json:"review_date"`
	Status         string                      `json:"status"`
	Items          []RiskAssessmentItemRequest `json:"items"`
}

func (rc *RiskAssessmentController) GetAssessments(c *gin.Context) {
	userID := c.GetString("user_id")

	query := rc.db.Preload("Ride").Preload("Items").Where("user_id = ?", userID)
	if rideID := c.Query("ride_id"); rideID != "" {
		query = query.Where("ride_id = ?", rideID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var assessments []models.RiskAssessment
	if err := query.Order("assessment_date DESC").Find(&assessments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch risk assessments"})
		return
	}

	c.JSON(http.StatusOK, assessments)
}

func (rc *RiskAssessmentController) GetAssessment(c *gin.Context) {
	userID := c.GetString("user_id")
	assessmentID := c.Param("id")

	var assessment models.RiskAssessment
	if err := rc.db.Preload("Ride").Preload("Items").
		First(&assessment, "id = ? AND user_id = ?", assessmentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Risk assessment not found or access denied"})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (rc *RiskAssessmentController) CreateAssessment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req RiskAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessmentDate, err := parseDate(req.AssessmentDate)
	if err != nil {
		utils.SendValidationError(c, "assessment_date must be RFC3339 or YYYY-MM-DD")
		return
	}
	reviewDate, err := parseOptionalDate(req.ReviewDate)
	if err != nil {
		utils.SendValidationError(c, "review_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	if req.RideID != nil {
		var ride models.Ride
		if err := rc.db.First(&ride, "id = ? AND user_id = ?", *req.RideID, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found or access denied"})
			return
		}
	}

	status := req.Status
	if status == "" {
		status = "draft"
	} else if !isValidAssessmentStatus(status) {
		utils.SendValidationError(c, "status must be one of draft, active, archived")
		return
	}

	items, ok := rc.buildItems(c, "", req.Items)
	if !ok {
		return
	}

	assessment := models.RiskAssessment{
		ID:             uuid.New().String(),
		UserID:         userID,
		RideID:         req.RideID,
		Title:          req.Title,
		AssessorName:   req.AssessorName,
		AssessmentDate: assessmentDate,
		ReviewDate:     reviewDate,
		Status:         status,
	}
	for i := range items {
		items[i].AssessmentID = assessment.ID
	}
	assessment.Items = items

	if err := rc.db.Create(&assessment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create risk assessment"})
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

// UpdateAssessment replaces the assessment fields and its item list wholesale.
func (rc *RiskAssessmentController) UpdateAssessment(c *gin.Context) {
	userID := c.GetString("user_id")
	assessmentID := c.Param("id")

	var assessment models.RiskAssessment
	if err := rc.db.First(&assessment, "id = ? AND user_id = ?", assessmentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Risk assessment not found or access denied"})
		return
	}

	var req RiskAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessmentDate, err := parseDate(req.AssessmentDate)
	if err != nil {
		utils.SendValidationError(c, "assessment_date must be RFC3339 or YYYY-MM-DD")
		return
	}
	reviewDate, err := parseOptionalDate(req.ReviewDate)
	if err != nil {
		utils.SendValidationError(c, "review_date must be RFC3339 or YYYY-MM-DD")
		return
	}

	status := req.Status
	if status == "" {
		status = assessment.Status
	} else if !isValidAssessmentStatus(status) {
		utils.SendValidationError(c, "status must be one of draft, active, archived")
		return
	}

	items, ok := rc.buildItems(c, assessment.ID, req.Items)
	if !ok {
		return
	}

	err = rc.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":           req.Title,
			"assessor_name":   req.AssessorName,
			"assessment_date": assessmentDate,
			"review_date":     reviewDate,
			"status":          status,
		}
		if err := tx.Model(&assessment).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.RiskAssessmentItem{}, "assessment_id = ?", assessment.ID).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update risk assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Risk assessment updated successfully"})
}

func (rc *RiskAssessmentController) DeleteAssessment(c *gin.Context) {
	userID := c.GetString("user_id")
	assessmentID := c.Param("id")

	var assessment models.RiskAssessment
	if err := rc.db.First(&assessment, "id = ? AND user_id = ?", assessmentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Risk assessment not found or access denied"})
		return
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RiskAssessmentItem{}, "assessment_id = ?", assessment.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&assessment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete risk assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Risk assessment deleted successfully"})
}

// buildItems validates item requests and computes ratings server side.
// It writes the error response itself and reports success via ok.
func (rc *RiskAssessmentController) buildItems(c *gin.Context, assessmentID string, reqs []RiskAssessmentItemRequest) ([]models.RiskAssessmentItem, bool) {
	items := make([]models.RiskAssessmentItem, 0, len(reqs))
	for _, item := range reqs {
		if !utils.IsValidRiskScore(item.Likelihood) || !utils.IsValidRiskScore(item.Severity) {
			utils.SendValidationError(c, "likelihood and severity must be between 1 and 5")
			return nil, false
		}
		items = append(items, models.RiskAssessmentItem{
			ID:              uuid.New().String(),
			AssessmentID:    assessmentID,
			Hazard:          item.Hazard,
			PersonsAtRisk:   item.PersonsAtRisk,
			Likelihood:      item.Likelihood,
			Severity:        item.Severity,
			RiskRating:      models.ComputeRiskRating(item.Likelihood, item.Severity),
			ControlMeasures: models.StringSlice(item.ControlMeasures),
		})
	}
	return items, true
}

func isValidAssessmentStatus(status string) bool {
	switch status {
	case "draft", "active", "archived":
		return true
	}
	return false
}
