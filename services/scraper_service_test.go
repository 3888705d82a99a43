package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rideready-api/models"
)

func TestParseBulletinNumber(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Technical Bulletin TB-2024/03 issued", "TB-2024/03"},
		{"Ref HSE 123 applies to all operators", "HSE 123"},
		{"See DOC/4512 for details", "DOC/4512"},
	}

	for _, tt := range tests {
		got := ParseBulletinNumber(tt.text)
		if assert.NotNil(t, got, "expected a match in %q", tt.text) {
			assert.Equal(t, tt.want, *got)
		}
	}
}

func TestParseBulletinNumberNoMatch(t *testing.T) {
	assert.Nil(t, ParseBulletinNumber("no reference in this text"))
	assert.Nil(t, ParseBulletinNumber(""))
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, models.BulletinPriorityCritical, ParsePriority("DANGER: stop operation immediately"))
	assert.Equal(t, models.BulletinPriorityCritical, ParsePriority("critical structural fault"))
	assert.Equal(t, models.BulletinPriorityHigh, ParsePriority("urgent inspection required"))
	assert.Equal(t, models.BulletinPriorityLow, ParsePriority("advisory for operators"))
	assert.Equal(t, models.BulletinPriorityMedium, ParsePriority("routine bolt torque note"))
}

func TestParseIssueDateFormats(t *testing.T) {
	fallback := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := ParseIssueDate("issued 2024-03-15 by the board", fallback)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())

	got = ParseIssueDate("published on 15/03/2024", fallback)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())

	got = ParseIssueDate("circulated 15 March 2024 to members", fallback)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseIssueDateFallback(t *testing.T) {
	fallback := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fallback, ParseIssueDate("no date here", fallback))
}
