package calculation

import (
	"sync"
	"testing"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naira(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestCalculateCRA(t *testing.T) {
	calc := NewPAYECalculator2026()

	tests := []struct {
		name     string
		gross    decimal.Decimal
		expected decimal.Decimal
	}{
		{"zero income gets the floor", naira(0), naira(200_000)},
		{"floor dominates below 20m", naira(1_000_000), naira(400_000)},
		{"ten million", naira(10_000_000), naira(2_200_000)},
		{"1% equals the floor at 20m", naira(20_000_000), naira(4_200_000)},
		{"1% dominates above 20m", naira(50_000_000), naira(10_500_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cra := calc.CalculateCRA(tt.gross)
			assert.True(t, cra.Equal(tt.expected), "expected %s, got %s", tt.expected, cra)
		})
	}
}

func TestComputeTax_ZeroIncome(t *testing.T) {
	result := ComputeTax(decimal.Zero)

	assert.True(t, result.AnnualTax.IsZero())
	assert.True(t, result.MonthlyTax.IsZero())
	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.CRA.Equal(naira(200_000)))
	require.NotNil(t, result.Breakdown, "breakdown must always be present")
	assert.Empty(t, result.Breakdown)
}

func TestComputeTax_OneMillion(t *testing.T) {
	result := ComputeTax(naira(1_000_000))

	// max(200,000, 10,000) + 200,000
	assert.True(t, result.CRA.Equal(naira(400_000)), "got %s", result.CRA)
	assert.True(t, result.TaxableIncome.Equal(naira(600_000)))
	assert.True(t, result.AnnualTax.Equal(naira(54_000)), "got %s", result.AnnualTax)
	assert.True(t, result.MonthlyTax.Equal(naira(4_500)))
	require.Len(t, result.Breakdown, 2, "taxable income ends exactly at the edge of band 2")

	expected := []struct {
		rate   float64
		amount int64
		tax    int64
	}{
		{0.07, 300_000, 21_000},
		{0.11, 300_000, 33_000},
	}
	for i, e := range expected {
		b := result.Breakdown[i]
		assert.True(t, b.Rate.Equal(decimal.NewFromFloat(e.rate)), "band %d rate", i+1)
		assert.True(t, b.TaxableAmountInBand.Equal(naira(e.amount)), "band %d amount: %s", i+1, b.TaxableAmountInBand)
		assert.True(t, b.TaxInBand.Equal(naira(e.tax)), "band %d tax: %s", i+1, b.TaxInBand)
	}
}

func TestComputeTax_PartialThirdBand(t *testing.T) {
	// 1,375,000 gross: CRA 475,000, taxable 900,000
	result := ComputeTax(naira(1_375_000))

	assert.True(t, result.CRA.Equal(naira(475_000)))
	assert.True(t, result.TaxableIncome.Equal(naira(900_000)))
	require.Len(t, result.Breakdown, 3, "loop must stop inside band 3")

	third := result.Breakdown[2]
	assert.True(t, third.BandWidth.Limit.Equal(naira(500_000)))
	assert.True(t, third.TaxableAmountInBand.Equal(naira(300_000)))
	assert.True(t, third.TaxInBand.Equal(naira(45_000)))
	assert.True(t, result.AnnualTax.Equal(naira(99_000)), "got %s", result.AnnualTax)
}

func TestComputeTax_ThirdBandEdge(t *testing.T) {
	// 1,625,000 gross: CRA 525,000, taxable 1,100,000 fills bands 1-3 exactly
	result := ComputeTax(naira(1_625_000))

	assert.True(t, result.TaxableIncome.Equal(naira(1_100_000)))
	require.Len(t, result.Breakdown, 3, "loop must stop before band 4")
	assert.True(t, result.Breakdown[2].TaxableAmountInBand.Equal(naira(500_000)))
	assert.True(t, result.AnnualTax.Equal(naira(129_000)), "got %s", result.AnnualTax)
}

func TestComputeTax_TenMillion(t *testing.T) {
	result := ComputeTax(naira(10_000_000))

	assert.True(t, result.CRA.Equal(naira(2_200_000)))
	assert.True(t, result.TaxableIncome.Equal(naira(7_800_000)))
	require.Len(t, result.Breakdown, 6)

	last := result.Breakdown[5]
	assert.True(t, last.Rate.Equal(decimal.NewFromFloat(0.24)))
	assert.True(t, last.BandWidth.Unbounded)
	assert.True(t, last.TaxableAmountInBand.Equal(naira(4_600_000)))
	assert.True(t, result.AnnualTax.Equal(naira(1_664_000)), "got %s", result.AnnualTax)
}

func TestComputeTax_ExactBandBoundary(t *testing.T) {
	// 625,000 gross leaves 300,000 taxable after a 325,000 CRA
	result := ComputeTax(naira(625_000))

	assert.True(t, result.TaxableIncome.Equal(naira(300_000)))
	require.Len(t, result.Breakdown, 1, "loop must stop before band 2")
	assert.True(t, result.Breakdown[0].TaxableAmountInBand.Equal(naira(300_000)))
	assert.True(t, result.AnnualTax.Equal(naira(21_000)))
}

func TestComputeTax_Table(t *testing.T) {
	tests := []struct {
		name        string
		gross       decimal.Decimal
		expectedTax decimal.Decimal
		bands       int
	}{
		{"taxable income exactly zero", naira(250_000), decimal.Zero, 0},
		{"just above relief", naira(250_010), decimal.NewFromFloat(0.56), 1},
		{"two million", naira(2_000_000), naira(186_000), 4},
		{"fifty million, 1% CRA branch", naira(50_000_000), naira(9_272_000), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeTax(tt.gross)
			assert.True(t, result.AnnualTax.Equal(tt.expectedTax), "expected %s, got %s", tt.expectedTax, result.AnnualTax)
			assert.Len(t, result.Breakdown, tt.bands)
		})
	}
}

func TestComputeTax_NegativeIncome(t *testing.T) {
	result := ComputeTax(naira(-1_000_000))

	assert.True(t, result.AnnualTax.IsZero())
	assert.True(t, result.TaxableIncome.IsZero())
	assert.Empty(t, result.Breakdown)
}

func TestNewPAYECalculator_Fallbacks(t *testing.T) {
	calc := NewPAYECalculator(domain.PAYERules{})

	assert.Len(t, calc.Bands, 6)
	assert.True(t, calc.CRA.Floor.Equal(naira(200_000)))
	assert.True(t, calc.ComputeTax(naira(1_000_000)).AnnualTax.Equal(naira(54_000)))
}

func TestNewPAYECalculator_CustomBands(t *testing.T) {
	rules := domain.PAYERules{
		CRA: domain.CRARules{Floor: naira(1)},
		Bands: []domain.TaxBand{
			{Width: domain.Bounded(naira(800_000)), Rate: decimal.Zero},
			{Width: domain.UnboundedWidth(), Rate: decimal.NewFromFloat(0.10)},
		},
	}
	calc := NewPAYECalculator(rules)

	result := calc.ComputeTax(naira(1_000_001))
	require.Len(t, result.Breakdown, 2)
	assert.True(t, result.Breakdown[0].TaxInBand.IsZero(), "tax-free band")
	assert.True(t, result.Breakdown[1].TaxableAmountInBand.Equal(naira(200_000)))
	assert.True(t, result.AnnualTax.Equal(naira(20_000)))

	// Mutating the caller's slice must not affect the calculator
	rules.Bands[0].Rate = decimal.NewFromFloat(0.5)
	assert.True(t, calc.Bands[0].Rate.IsZero())
}

func TestNewPAYECalculator_ZeroCRAGrantsNoRelief(t *testing.T) {
	rules := domain.DefaultPAYERules()
	rules.CRA = domain.CRARules{}
	calc := NewPAYECalculator(rules)

	result := calc.ComputeTax(naira(1_000_000))
	assert.True(t, result.CRA.IsZero())
	assert.True(t, result.TaxableIncome.Equal(naira(1_000_000)))
	// 21,000 + 33,000 + 400,000 @ 15%
	assert.True(t, result.AnnualTax.Equal(naira(114_000)), "got %s", result.AnnualTax)
}

func TestComputeTax_ConcurrentCallers(t *testing.T) {
	calc := NewPAYECalculator2026()
	want := calc.ComputeTax(naira(10_000_000))

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := calc.ComputeTax(naira(10_000_000))
			if !got.AnnualTax.Equal(want.AnnualTax) || len(got.Breakdown) != len(want.Breakdown) {
				errs <- got.AnnualTax.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent call returned %s, want %s", e, want.AnnualTax)
	}
}
