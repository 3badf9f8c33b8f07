package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnit(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole rupees", amount: 250.00, want: 25000},
		{name: "with paise", amount: 99.99, want: 9999},
		{name: "rounds half up", amount: 0.005, want: 1},
		{name: "float noise", amount: 19.90, want: 1990},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnit(tt.amount))
		})
	}
}
