package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    *float64
	}{
		{"no reviews", nil, nil},
		{"single", []int{5}, ptr(5)},
		{"half", []int{4, 5}, ptr(4.5)},
		{"rounded to two decimals", []int{1, 2, 2}, ptr(1.67)},
		{"round down", []int{5, 5, 4}, ptr(4.67)},
		{"thirds", []int{1, 1, 2}, ptr(1.33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRating(tt.ratings)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func ptr(f float64) *float64 { return &f }
