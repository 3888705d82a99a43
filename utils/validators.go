package utils

import (
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var versionRegex = regexp.MustCompile(`^\d+\.\d+$`)

func IsValidVersionNumber(version string) bool {
	return versionRegex.MatchString(version)
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case "weekly", "monthly", "annual":
		return true
	}
	return false
}

func IsValidRiskScore(score int) bool {
	return score >= 1 && score <= 5
}

func IsValidYearManufactured(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}
