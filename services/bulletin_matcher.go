package services

import (
	"strings"

	"rideready-api/models"
)

// RideTypeKeywords maps a canonical ride-type identifier to the lowercase
// phrase variants that identify it in free text. The slice is ordered:
// extraction and category assignment iterate in declaration order so
// first-match tie-breaking stays deterministic.
type RideTypeKeywords struct {
	TypeID   string
	Keywords []string
}

var rideTypeKeywords = []RideTypeKeywords{
	{"waltzer", []string{"waltzer", "waltzers"}},
	{"dodgems", []string{"dodgem", "dodgems", "bumper car", "bumper cars", "autoscooter"}},
	{"chair-o-plane", []string{"chair o plane", "chair-o-plane", "chairoplane", "chair o planes", "wave swinger", "waveswinger"}},
	{"carousel", []string{"carousel", "gallopers", "merry go round", "merry-go-round"}},
	{"ferris-wheel", []string{"ferris wheel", "big wheel", "giant wheel", "observation wheel"}},
	{"helter-skelter", []string{"helter skelter", "helter-skelter", "lighthouse slide"}},
	{"ghost-train", []string{"ghost train", "dark ride", "haunted house"}},
	{"fun-house", []string{"fun house", "funhouse", "crazy house"}},
	{"miami", []string{"miami", "miami trip", "miami wave"}},
	{"twist", []string{"twist", "twister", "sizzler"}},
	{"super-bob", []string{"super bob", "superbob", "bobsleigh"}},
	{"paratrooper", []string{"paratrooper", "parachute ride"}},
	{"octopus", []string{"octopus"}},
	{"skydiver", []string{"skydiver", "sky diver"}},
}

// ExtractRideTypes returns the ride-type identifiers whose keyword phrases
// occur in the given text. Matching is case-insensitive substring
// containment; each type appears at most once, and scanning a type's keyword
// list stops at its first hit.
func ExtractRideTypes(content string) []string {
	text := strings.ToLower(content)

	var matched []string
	for _, entry := range rideTypeKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				matched = append(matched, entry.TypeID)
				break
			}
		}
	}
	return matched
}

func keywordsForType(typeID string) []string {
	for _, entry := range rideTypeKeywords {
		if entry.TypeID == typeID {
			return entry.Keywords
		}
	}
	return nil
}

// IsBulletinRelevantToRide decides whether a bulletin pertains to a ride.
// Four checks, short-circuited in order: direct name match, category name
// match, keyword-type match, manufacturer match.
func IsBulletinRelevantToRide(bulletin models.TechnicalBulletin, ride models.Ride) bool {
	text := strings.ToLower(bulletin.Title + " " + bulletin.Content)
	rideName := strings.ToLower(ride.RideName)
	categoryName := strings.ToLower(ride.Category.Name)

	if rideName != "" && strings.Contains(text, rideName) {
		return true
	}

	if categoryName != "" && strings.Contains(text, categoryName) {
		return true
	}

	for _, typeID := range ExtractRideTypes(text) {
		for _, keyword := range keywordsForType(typeID) {
			if strings.Contains(rideName, keyword) || strings.Contains(categoryName, keyword) {
				return true
			}
		}
	}

	if ride.Manufacturer != nil && *ride.Manufacturer != "" {
		if strings.Contains(text, strings.ToLower(*ride.Manufacturer)) {
			return true
		}
	}

	return false
}

// FilterBulletinsForRides returns the bulletins relevant to at least one of
// the given rides. An empty ride set fails open: no rides means show
// everything.
func FilterBulletinsForRides(bulletins []models.TechnicalBulletin, rides []models.Ride) []models.TechnicalBulletin {
	if len(rides) == 0 {
		return bulletins
	}

	var relevant []models.TechnicalBulletin
	for _, bulletin := range bulletins {
		for _, ride := range rides {
			if IsBulletinRelevantToRide(bulletin, ride) {
				relevant = append(relevant, bulletin)
				break
			}
		}
	}
	return relevant
}

// BestCategoryForBulletin picks a category for a newly ingested bulletin.
// Heuristic chain: keyword-type overlap with a category name, then direct
// category name mention in the text, then the first category as a last
// resort. Returns "" when no categories exist.
func BestCategoryForBulletin(bulletin models.TechnicalBulletin, categories []models.RideCategory) string {
	text := strings.ToLower(bulletin.Title + " " + bulletin.Content)

	for _, typeID := range ExtractRideTypes(text) {
		for _, category := range categories {
			categoryName := strings.ToLower(category.Name)
			for _, keyword := range keywordsForType(typeID) {
				if strings.Contains(categoryName, keyword) || strings.Contains(keyword, categoryName) {
					return category.ID
				}
			}
		}
	}

	for _, category := range categories {
		if strings.Contains(text, strings.ToLower(category.Name)) {
			return category.ID
		}
	}

	if len(categories) > 0 {
		return categories[0].ID
	}
	return ""
}
