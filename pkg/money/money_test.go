package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMinorRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		minor int64
	}{
		{name: "whole", in: "160", minor: 16000},
		{name: "fraction", in: "12.34", minor: 1234},
		{name: "rounded", in: "0.005", minor: 1},
		{name: "negative", in: "-100.5", minor: -10050},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.minor, ToMinor(d))
			assert.True(t, FromMinor(tt.minor).Equal(d.Round(2)))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "160", Percent(FromInt(400), 40).String())
	assert.Equal(t, "80", Percent(FromInt(400), 20).String())
	assert.Equal(t, "0.67", Percent(decimal.RequireFromString("3.33"), 20).String())
}

func TestHasMinorScale(t *testing.T) {
	for _, in := range []string{"0", "160", "12.3", "12.34", "1.500", "-0.01"} {
		assert.True(t, HasMinorScale(decimal.RequireFromString(in)), in)
	}
	for _, in := range []string{"0.004", "100.005", "-12.345"} {
		assert.False(t, HasMinorScale(decimal.RequireFromString(in)), in)
	}
}

func TestMin(t *testing.T) {
	assert.Equal(t, "160", Min(FromInt(160), FromInt(250)).String())
	assert.Equal(t, "250", Min(FromInt(500), FromInt(250)).String())
}
