package config

import (
	"testing"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesFromFile(t *testing.T) {
	rules, err := LoadRulesFromFile("testdata/rules.yaml")
	require.NoError(t, err)

	require.Len(t, rules.Bands, 3)
	assert.True(t, rules.Bands[0].Width.Limit.Equal(decimal.NewFromInt(800_000)), "underscores are allowed in widths")
	assert.True(t, rules.Bands[0].Rate.IsZero())
	assert.True(t, rules.Bands[2].Width.Unbounded)

	// overridden floor, untouched percentages
	assert.True(t, rules.CRA.Floor.Equal(decimal.NewFromInt(250_000)))
	assert.True(t, rules.CRA.GrossRate.Equal(decimal.NewFromFloat(0.20)))
	// missing section keeps defaults
	assert.Equal(t, domain.DefaultDeductionRules(), rules.Deductions)
}

func TestParseRules_EmptyKeepsDefaults(t *testing.T) {
	rules, err := ParseRules([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBands(), rules.Bands)
	assert.Equal(t, domain.DefaultCRARules(), rules.CRA)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{
			name:        "last band bounded",
			yaml:        "bands:\n  - width: 100\n    rate: 0.1",
			errContains: "last band must be unbounded",
		},
		{
			name:        "unbounded before last",
			yaml:        "bands:\n  - width: unbounded\n    rate: 0.1\n  - width: unbounded\n    rate: 0.2",
			errContains: "is not the last band",
		},
		{
			name:        "zero width",
			yaml:        "bands:\n  - width: 0\n    rate: 0.1\n  - width: unbounded\n    rate: 0.2",
			errContains: "width must be positive",
		},
		{
			name:        "rate above one",
			yaml:        "bands:\n  - width: unbounded\n    rate: 1.5",
			errContains: "between 0 and 1",
		},
		{
			name:        "decreasing rates",
			yaml:        "bands:\n  - width: 100\n    rate: 0.2\n  - width: unbounded\n    rate: 0.1",
			errContains: "lower than band 1",
		},
		{
			name:        "negative CRA floor",
			yaml:        "cra:\n  floor: -1",
			errContains: "CRA values cannot be negative",
		},
		{
			name:        "invalid width",
			yaml:        "bands:\n  - width: lots\n    rate: 0.2",
			errContains: "invalid band width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}

	assert.NoError(t, ValidateRules(domain.DefaultPAYERules()))
	assert.ErrorIs(t, ValidateRules(domain.PAYERules{}), domain.ErrInvalidRules)
}
