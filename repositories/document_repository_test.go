package repositories

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rideready-api/models"
)

func TestNextVersionNumber(t *testing.T) {
	tests := []struct {
		latest string
		want   string
	}{
		{"1.0", "1.1"},
		{"1.1", "1.2"},
		{"1.9", "1.10"},
		{"2.0", "2.1"},
		{"10.25", "10.26"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextVersionNumber(tt.latest), "latest %q", tt.latest)
	}
}

func TestNextVersionNumberUnparseableRestartsChain(t *testing.T) {
	for _, latest := range []string{"", "v2", "one.two", "3", "1.x", "a.1"} {
		assert.Equal(t, "1.0", NextVersionNumber(latest), "latest %q", latest)
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Document{}); err != nil {
		t.Fatalf("failed to migrate documents table: %v", err)
	}

	return db
}

func testDocument(userID, name, version string, createdAt time.Time) *models.Document {
	return &models.Document{
		ID:            uuid.New().String(),
		UserID:        userID,
		DocumentName:  name,
		DocumentType:  "insurance",
		FilePath:      userID + "/global/" + version,
		IsGlobal:      true,
		VersionNumber: version,
		CreatedAt:     createdAt,
	}
}

func countLatestInChain(t *testing.T, db *gorm.DB, userID, name string) int64 {
	var count int64
	err := db.Model(&models.Document{}).
		Where("user_id = ? AND document_name = ? AND ride_id IS NULL AND is_latest_version = ?",
			userID, name, true).
		Count(&count).Error
	if err != nil {
		t.Fatalf("failed to count latest rows: %v", err)
	}
	return count
}

func TestCreateVersionKeepsSingleLatestPerChain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)

	userID := uuid.New().String()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	v1 := testDocument(userID, "Insurance Certificate", "1.0", base)
	if err := repo.CreateVersion(v1, nil); err != nil {
		t.Fatalf("failed to create first version: %v", err)
	}

	v2 := testDocument(userID, "Insurance Certificate", "1.1", base.Add(time.Hour))
	if err := repo.CreateVersion(v2, &v1.ID); err != nil {
		t.Fatalf("failed to create replacement version: %v", err)
	}

	assert.EqualValues(t, 1, countLatestInChain(t, db, userID, "Insurance Certificate"))

	var latest models.Document
	err := db.First(&latest,
		"user_id = ? AND document_name = ? AND is_latest_version = ?",
		userID, "Insurance Certificate", true).Error
	if err != nil {
		t.Fatalf("failed to load latest row: %v", err)
	}
	assert.Equal(t, v2.ID, latest.ID)
	assert.Equal(t, &v1.ID, latest.ReplacedDocumentID)

	// A versioned upload without an explicit replacement target still
	// retires the previous latest.
	v3 := testDocument(userID, "Insurance Certificate", "1.2", base.Add(2*time.Hour))
	if err := repo.CreateVersion(v3, nil); err != nil {
		t.Fatalf("failed to create version without replace target: %v", err)
	}
	assert.EqualValues(t, 1, countLatestInChain(t, db, userID, "Insurance Certificate"))

	versions, err := repo.GetVersionChain(userID, "Insurance Certificate", nil)
	if err != nil {
		t.Fatalf("failed to load version chain: %v", err)
	}
	assert.Len(t, versions, 3)
	assert.Equal(t, "1.2", versions[0].VersionNumber)
	assert.True(t, versions[0].IsLatestVersion)

	suggested, err := repo.SuggestNextVersion(userID, "Insurance Certificate", nil)
	if err != nil {
		t.Fatalf("failed to suggest next version: %v", err)
	}
	assert.Equal(t, "1.3", suggested)
}

func TestCreateVersionFailedReplaceRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)

	userID := uuid.New().String()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	v1 := testDocument(userID, "Method Statement", "1.0", base)
	if err := repo.CreateVersion(v1, nil); err != nil {
		t.Fatalf("failed to create first version: %v", err)
	}

	missingID := uuid.New().String()
	v2 := testDocument(userID, "Method Statement", "1.1", base.Add(time.Hour))
	err := repo.CreateVersion(v2, &missingID)
	assert.Error(t, err)

	var rows int64
	if err := db.Model(&models.Document{}).
		Where("user_id = ? AND document_name = ?", userID, "Method Statement").
		Count(&rows).Error; err != nil {
		t.Fatalf("failed to count chain rows: %v", err)
	}
	assert.EqualValues(t, 1, rows)

	var survivor models.Document
	if err := db.First(&survivor, "id = ?", v1.ID).Error; err != nil {
		t.Fatalf("failed to reload first version: %v", err)
	}
	assert.True(t, survivor.IsLatestVersion)
}
