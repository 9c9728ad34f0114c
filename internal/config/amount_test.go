package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"", "0"},
		{"   ", "0"},
		{"500000", "500000"},
		{"500,000", "500000"},
		{"₦1,250,000.50", "1250000.5"},
		{"NGN 75,000", "75000"},
		{" 2 000 000 ", "2000000"},
		{"-100", "0"},
		{"abc", "0"},
		{"1.2.3", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "ParseAmount(%q) = %s", tt.raw, got)
		})
	}
}
