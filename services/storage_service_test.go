package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyWithRide(t *testing.T) {
	rideID := "ride-42"
	now := time.Unix(1700000000, 0)

	key := ObjectKey("user-1", &rideID, "insurance.pdf", now)
	assert.Equal(t, "user-1/ride-42/1700000000-insurance.pdf", key)
}

func TestObjectKeyGlobalWhenNoRide(t *testing.T) {
	now := time.Unix(1700000000, 0)

	assert.Equal(t, "user-1/global/1700000000-policy.pdf", ObjectKey("user-1", nil, "policy.pdf", now))

	empty := ""
	assert.Equal(t, "user-1/global/1700000000-policy.pdf", ObjectKey("user-1", &empty, "policy.pdf", now))
}
