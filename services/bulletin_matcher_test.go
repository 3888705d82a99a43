package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rideready-api/models"
)

func strPtr(s string) *string { return &s }

func TestExtractRideTypesEmptyContent(t *testing.T) {
	assert.Empty(t, ExtractRideTypes(""))
}

func TestExtractRideTypesCaseInsensitive(t *testing.T) {
	types := ExtractRideTypes("We inspected the Chair-O-Plane unit")
	assert.Contains(t, types, "chair-o-plane")
}

func TestExtractRideTypesNoDuplicates(t *testing.T) {
	types := ExtractRideTypes("waltzer waltzer WALTZERS")
	count := 0
	for _, id := range types {
		if id == "waltzer" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// Every keyword phrase in the dictionary must extract its own type.
func TestExtractRideTypesEveryKeywordMatchesItsType(t *testing.T) {
	for _, entry := range rideTypeKeywords {
		for _, keyword := range entry.Keywords {
			assert.Contains(t, ExtractRideTypes(keyword), entry.TypeID,
				"keyword %q should extract type %q", keyword, entry.TypeID)
		}
	}
}

func TestIsBulletinRelevantDirectNameMatch(t *testing.T) {
	bulletin := models.TechnicalBulletin{
		Title:   "Waltzer Safety Notice",
		Content: "Routine bolt torque check required.",
	}
	ride := models.Ride{
		RideName: "Waltzer",
		Category: models.RideCategory{Name: "Spinning Ride"},
	}
	assert.True(t, IsBulletinRelevantToRide(bulletin, ride))
}

func TestIsBulletinRelevantNameInContentOnly(t *testing.T) {
	bulletin := models.TechnicalBulletin{
		Title:   "Safety Notice",
		Content: "Applies to all Super Trooper units in service.",
	}
	ride := models.Ride{
		RideName: "Super Trooper",
		Category: models.RideCategory{Name: "Spinning Ride"},
	}
	assert.True(t, IsBulletinRelevantToRide(bulletin, ride))
}

func TestIsBulletinRelevantCategoryMatch(t *testing.T) {
	bulletin := models.TechnicalBulletin{
		Title:   "Advisory for spinning ride operators",
		Content: "Check restraint latches before opening.",
	}
	ride := models.Ride{
		RideName: "Starburst 3000",
		Category: models.RideCategory{Name: "Spinning Ride"},
	}
	assert.True(t, IsBulletinRelevantToRide(bulletin, ride))
}

func TestIsBulletinRelevantKeywordTypeMatch(t *testing.T) {
	// Bulletin mentions "wave swinger"; the ride's name carries the
	// chair-o-plane keyword "chairoplane", so the type bridge applies.
	bulletin := models.TechnicalBulletin{
		Title:   "Wave Swinger suspension chains",
		Content: "Inspect chain links for elongation.",
	}
	ride := models.Ride{
		RideName: "Golden Chairoplane",
		Category: models.RideCategory{Name: "Family Rides"},
	}
	assert.True(t, IsBulletinRelevantToRide(bulletin, ride))
}

func TestIsBulletinRelevantManufacturerMatch(t *testing.T) {
	bulletin := models.TechnicalBulletin{
		Title:   "Drive coupling wear",
		Content: "Affects units manufactured by Zierer before 1998.",
	}
	ride := models.Ride{
		RideName:     "Blue Comet",
		Manufacturer: strPtr("Zierer"),
		Category:     models.RideCategory{Name: "Coaster"},
	}
	assert.True(t, IsBulletinRelevantToRide(bulletin, ride))
}

func TestIsBulletinRelevantNoMatch(t *testing.T) {
	bulletin := models.TechnicalBulletin{
		Title:   "Generator Maintenance",
		Content: "diesel generator check",
	}
	ride := models.Ride{
		RideName: "Helter Skelter",
		Category: models.RideCategory{Name: "Slide"},
	}
	assert.False(t, IsBulletinRelevantToRide(bulletin, ride))
}

func TestFilterBulletinsEmptyRideSetFailsOpen(t *testing.T) {
	bulletins := []models.TechnicalBulletin{
		{Title: "Waltzer Safety Notice"},
		{Title: "Generator Maintenance"},
	}
	assert.Equal(t, bulletins, FilterBulletinsForRides(bulletins, nil))
	assert.Equal(t, bulletins, FilterBulletinsForRides(bulletins, []models.Ride{}))
}

func TestFilterBulletinsKeepsOnlyRelevant(t *testing.T) {
	bulletins := []models.TechnicalBulletin{
		{Title: "Waltzer Safety Notice", Content: "..."},
		{Title: "Generator Maintenance", Content: "diesel generator check"},
	}
	rides := []models.Ride{
		{RideName: "Waltzer", Category: models.RideCategory{Name: "Spinning Ride"}},
	}

	filtered := FilterBulletinsForRides(bulletins, rides)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Waltzer Safety Notice", filtered[0].Title)
}

func TestFilterBulletinsIsSubsetAndEachRelevant(t *testing.T) {
	bulletins := []models.TechnicalBulletin{
		{Title: "Waltzer Safety Notice"},
		{Title: "Dodgem floor plates", Content: "bumper cars earthing"},
		{Title: "Generator Maintenance", Content: "diesel generator check"},
	}
	rides := []models.Ride{
		{RideName: "Waltzer", Category: models.RideCategory{Name: "Spinning Ride"}},
		{RideName: "Dodgems", Category: models.RideCategory{Name: "Track Ride"}},
	}

	filtered := FilterBulletinsForRides(bulletins, rides)
	assert.LessOrEqual(t, len(filtered), len(bulletins))
	for _, bulletin := range filtered {
		relevant := false
		for _, ride := range rides {
			if IsBulletinRelevantToRide(bulletin, ride) {
				relevant = true
				break
			}
		}
		assert.True(t, relevant, "bulletin %q passed filter but matches no ride", bulletin.Title)
	}
}

func TestFilterBulletinsNoRelevantMatches(t *testing.T) {
	bulletins := []models.TechnicalBulletin{
		{Title: "Generator Maintenance", Content: "diesel generator check"},
	}
	rides := []models.Ride{
		{RideName: "Helter Skelter", Category: models.RideCategory{Name: "Slide"}},
	}
	assert.Empty(t, FilterBulletinsForRides(bulletins, rides))
}

func TestBestCategoryKeywordOverlap(t *testing.T) {
	categories := []models.RideCategory{
		{ID: "cat-1", Name: "Slide"},
		{ID: "cat-2", Name: "Waltzer"},
	}
	bulletin := models.TechnicalBulletin{Title: "Waltzers floor inspection"}
	assert.Equal(t, "cat-2", BestCategoryForBulletin(bulletin, categories))
}

func TestBestCategoryDirectNameFallback(t *testing.T) {
	categories := []models.RideCategory{
		{ID: "cat-1", Name: "Inflatables"},
		{ID: "cat-2", Name: "Generators"},
	}
	bulletin := models.TechnicalBulletin{
		Title:   "Generators advisory",
		Content: "fuel storage guidance",
	}
	assert.Equal(t, "cat-2", BestCategoryForBulletin(bulletin, categories))
}

func TestBestCategoryFirstCategoryLastResort(t *testing.T) {
	categories := []models.RideCategory{
		{ID: "cat-1", Name: "Inflatables"},
		{ID: "cat-2", Name: "Slides"},
	}
	bulletin := models.TechnicalBulletin{Title: "Unrelated notice"}
	assert.Equal(t, "cat-1", BestCategoryForBulletin(bulletin, categories))
}

func TestBestCategoryEmptyCategoryList(t *testing.T) {
	bulletin := models.TechnicalBulletin{Title: "Waltzer notice"}
	assert.Equal(t, "", BestCategoryForBulletin(bulletin, nil))
}
