package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRiskRating(t *testing.T) {
	tests := []struct {
		likelihood int
		severity   int
		want       int
	}{
		{1, 1, 1},
		{2, 3, 6},
		{3, 4, 12},
		{5, 5, 25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComputeRiskRating(tt.likelihood, tt.severity),
			"likelihood %d severity %d", tt.likelihood, tt.severity)
	}
}

func TestComputeRiskRatingCommutes(t *testing.T) {
	for likelihood := 1; likelihood <= 5; likelihood++ {
		for severity := 1; severity <= 5; severity++ {
			assert.Equal(t, ComputeRiskRating(likelihood, severity), ComputeRiskRating(severity, likelihood))
		}
	}
}
