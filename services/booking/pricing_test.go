package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name         string
		pricePerHour float64
		hours        int
		want         Quote
	}{
		{
			name:         "whole amounts",
			pricePerHour: 100,
			hours:        3,
			want:         Quote{Base: 300, ServiceFee: 30, Tax: 59, Total: 389},
		},
		{
			name:         "fee rounds half away from zero",
			pricePerHour: 25,
			hours:        1,
			want:         Quote{Base: 25, ServiceFee: 3, Tax: 5, Total: 33},
		},
		{
			name:         "fractional hourly price",
			pricePerHour: 33.33,
			hours:        1,
			want:         Quote{Base: 33.33, ServiceFee: 3, Tax: 7, Total: 43.33},
		},
		{
			name:         "single cheap hour",
			pricePerHour: 10,
			hours:        1,
			want:         Quote{Base: 10, ServiceFee: 1, Tax: 2, Total: 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuote(tt.pricePerHour, tt.hours)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeQuoteTaxIncludesFee(t *testing.T) {
	// 200 base, 20 fee, 18% of 220 = 39.6 rounds to 40.
	got := ComputeQuote(100, 2)
	assert.Equal(t, float64(40), got.Tax)
	assert.Equal(t, got.Base+got.ServiceFee+got.Tax, got.Total)
}
