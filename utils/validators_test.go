package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("operator@fairground.co.uk"))
	assert.True(t, IsValidEmail("first.last+tag@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidVersionNumber(t *testing.T) {
	assert.True(t, IsValidVersionNumber("1.0"))
	assert.True(t, IsValidVersionNumber("10.25"))
	assert.False(t, IsValidVersionNumber("v1.0"))
	assert.False(t, IsValidVersionNumber("1"))
	assert.False(t, IsValidVersionNumber("1.0.1"))
	assert.False(t, IsValidVersionNumber(""))
}

func TestIsValidFrequency(t *testing.T) {
	assert.True(t, IsValidFrequency("weekly"))
	assert.True(t, IsValidFrequency("monthly"))
	assert.True(t, IsValidFrequency("annual"))
	assert.False(t, IsValidFrequency("daily"))
	assert.False(t, IsValidFrequency(""))
}

func TestIsValidRiskScore(t *testing.T) {
	for score := 1; score <= 5; score++ {
		assert.True(t, IsValidRiskScore(score))
	}
	assert.False(t, IsValidRiskScore(0))
	assert.False(t, IsValidRiskScore(6))
}

func TestIsValidYearManufactured(t *testing.T) {
	assert.True(t, IsValidYearManufactured(1985))
	assert.True(t, IsValidYearManufactured(time.Now().Year()))
	assert.False(t, IsValidYearManufactured(1850))
	assert.False(t, IsValidYearManufactured(time.Now().Year()+5))
}
