package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalDayStartIsLocalMidnight(t *testing.T) {
	now := time.Date(2026, time.March, 10, 23, 45, 12, 0, time.Local)

	start := localDayStart(now)

	assert.Equal(t, time.Local, start.Location())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, now.Year(), start.Year())
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, now.Day(), start.Day())
}

func TestLocalDayStartUsesLocalDayNotUTCDay(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*60*60)
	// 01:30 on the 11th in a UTC+10 zone is still the 10th in UTC.
	moment := time.Date(2026, time.March, 11, 1, 30, 0, 0, east)

	start := localDayStart(moment)
	wantDay := moment.In(time.Local).Day()

	assert.Equal(t, wantDay, start.Day())
	assert.True(t, !start.After(moment))
	assert.True(t, moment.Sub(start) < 24*time.Hour)
}
