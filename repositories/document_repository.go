package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"rideready-api/models"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// GetVersionChain loads all versions of a logical document, newest first.
// A logical document is identified by (user_id, document_name, ride_id);
// a nil rideID selects the global chain.
func (r *DocumentRepository) GetVersionChain(userID, documentName string, rideID *string) ([]models.Document, error) {
	query := r.db.Where("user_id = ? AND document_name = ?", userID, documentName)
	if rideID != nil {
		query = query.Where("ride_id = ?", *rideID)
	} else {
		query = query.Where("ride_id IS NULL")
	}

	var versions []models.Document
	if err := query.Order("created_at DESC").Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

// SuggestNextVersion returns the next version for a chain: the latest
// version with its minor component incremented, or "1.0" for a new chain.
func (r *DocumentRepository) SuggestNextVersion(userID, documentName string, rideID *string) (string, error) {
	versions, err := r.GetVersionChain(userID, documentName, rideID)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "1.0", nil
	}
	return NextVersionNumber(versions[0].VersionNumber), nil
}

// CreateVersion inserts a new document version in the same transaction that
// retires the chain's current latest. At most one row per
// (user_id, ride_id, document_name) chain carries is_latest_version = true,
// whether or not the caller named an explicit row to replace.
func (r *DocumentRepository) CreateVersion(document *models.Document, replaceDocumentID *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		document.IsLatestVersion = true
		document.ReplacedDocumentID = replaceDocumentID

		if replaceDocumentID != nil {
			result := tx.Model(&models.Document{}).
				Where("id = ? AND user_id = ?", *replaceDocumentID, document.UserID).
				Update("is_latest_version", false)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("replaced document %s not found", *replaceDocumentID)
			}
		}

		chain := tx.Model(&models.Document{}).
			Where("user_id = ? AND document_name = ? AND is_latest_version = ?",
				document.UserID, document.DocumentName, true)
		if document.RideID != nil {
			chain = chain.Where("ride_id = ?", *document.RideID)
		} else {
			chain = chain.Where("ride_id IS NULL")
		}
		if err := chain.Update("is_latest_version", false).Error; err != nil {
			return err
		}

		return tx.Create(document).Error
	})
}

// NextVersionNumber increments the minor component of a version string:
// "1.0" becomes "1.1". Anything unparseable restarts at "1.0".
func NextVersionNumber(latest string) string {
	parts := strings.SplitN(latest, ".", 2)
	if len(parts) != 2 {
		return "1.0"
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return "1.0"
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return "1.0"
	}

	return fmt.Sprintf("%d.%d", major, minor+1)
}
