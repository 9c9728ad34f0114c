package calculation

import (
	"context"
	"fmt"
	"testing"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogger records messages for assertions
type TestLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

func (l *TestLogger) Debugf(format string, args ...any) {
	l.Debugs = append(l.Debugs, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Infof(format string, args ...any) {
	l.Infos = append(l.Infos, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Warnf(format string, args ...any) {
	l.Warns = append(l.Warns, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Errorf(format string, args ...any) {
	l.Errors = append(l.Errors, fmt.Sprintf(format, args...))
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.TaxCalc, "Should initialize tax calculator")
	assert.NotNil(t, engine.DeductionCalc, "Should initialize deduction calculator")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_Run(t *testing.T) {
	engine := NewCalculationEngine()

	report, err := engine.Run(context.Background(), domain.IncomeInput{
		Name:          "salaried",
		MonthlySalary: decimal.NewFromInt(500_000),
	})
	require.NoError(t, err)

	assert.Equal(t, "salaried", report.Name)
	assert.Equal(t, domain.CategoryEmployed, report.Category, "empty category defaults to Employed")
	assert.True(t, report.GrossIncome.Equal(naira(6_000_000)))
	// CRA 1,400,000; taxable 4,600,000
	assert.True(t, report.Result.CRA.Equal(naira(1_400_000)))
	assert.True(t, report.Result.AnnualTax.Equal(naira(896_000)), "got %s", report.Result.AnnualTax)
	assert.True(t, report.NetAnnualIncome.Equal(naira(5_104_000)))
	assert.True(t, report.TotalDeductions.Equal(report.Result.CRA))
	assert.Equal(t, "14.93", report.EffectiveRatePercent.StringFixed(2))
	assert.Empty(t, report.Notices)
}

func TestCalculationEngine_Run_DisplayDeductionsDoNotChangeTax(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	base := domain.IncomeInput{Name: "base", MonthlySalary: decimal.NewFromInt(500_000)}
	withDeductions := base
	withDeductions.Name = "with-deductions"
	withDeductions.PensionEnabled = true
	withDeductions.NHISEnabled = true
	withDeductions.AnnualRent = naira(1_500_000)

	plain, err := engine.Run(context.Background(), base)
	require.NoError(t, err)
	flagged, err := engine.Run(context.Background(), withDeductions)
	require.NoError(t, err)

	assert.True(t, plain.Result.AnnualTax.Equal(flagged.Result.AnnualTax), "tax must not depend on display deductions")
	assert.True(t, flagged.Deductions.Pension.Equal(naira(480_000)))
	assert.True(t, flagged.Deductions.NHIS.Equal(naira(300_000)))
	assert.True(t, flagged.Deductions.RentRelief.Equal(naira(300_000)))
	assert.True(t, flagged.TotalDeductions.Equal(naira(2_480_000)))
	// net = gross - tax - pension - nhis; rent relief is not subtracted
	assert.True(t, flagged.NetAnnualIncome.Equal(naira(4_324_000)), "got %s", flagged.NetAnnualIncome)

	assert.Equal(t, []string{DeductionsNotice}, flagged.Notices)
	require.Len(t, logger.Warns, 1)
	assert.Contains(t, logger.Warns[0], "with-deductions")
}

func TestCalculationEngine_Run_ZeroIncome(t *testing.T) {
	engine := NewCalculationEngine()

	report, err := engine.Run(context.Background(), domain.IncomeInput{Name: "none"})
	require.NoError(t, err)

	assert.True(t, report.Result.AnnualTax.IsZero())
	assert.True(t, report.EffectiveRatePercent.IsZero(), "no division by zero gross")
	assert.Empty(t, report.Result.Breakdown)
}

func TestCalculationEngine_Run_InvalidInput(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.Run(context.Background(), domain.IncomeInput{Name: "bad", OtherIncome: naira(-5)})

	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
	assert.Contains(t, err.Error(), `declaration "bad"`)
}

func TestCalculationEngine_Run_CancelledContext(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := engine.Run(ctx, domain.IncomeInput{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestCalculationEngine_Run_DebugLogging(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)
	engine.Debug = true

	_, err := engine.Run(context.Background(), domain.IncomeInput{Name: "dbg", OtherIncome: naira(1_000_000)})
	require.NoError(t, err)

	// header, two bands, footer
	assert.Len(t, logger.Debugs, 4)
}

func TestCalculationEngine_RunAll(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := &domain.Configuration{
		Declarations: []domain.IncomeInput{
			{Name: "low", OtherIncome: naira(200_000)},
			{Name: "mid", OtherIncome: naira(1_000_000)},
		},
	}

	reports, err := engine.RunAll(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "low", reports[0].Name)
	assert.True(t, reports[1].Result.AnnualTax.Equal(naira(54_000)))

	_, err = engine.RunAll(context.Background(), &domain.Configuration{})
	assert.Error(t, err)

	report, err := engine.RunNamed(context.Background(), cfg, "mid")
	require.NoError(t, err)
	assert.Equal(t, "mid", report.Name)

	_, err = engine.RunNamed(context.Background(), cfg, "high")
	assert.ErrorIs(t, err, domain.ErrDeclarationNotFound)
}

func TestNewCalculationEngineWithRules(t *testing.T) {
	rules := domain.DefaultPAYERules()
	rules.Deductions.NHISRate = decimal.NewFromFloat(0.10)

	engine := NewCalculationEngineWithRules(rules)
	report, err := engine.Run(context.Background(), domain.IncomeInput{OtherIncome: naira(1_000_000), NHISEnabled: true})
	require.NoError(t, err)

	assert.True(t, report.Deductions.NHIS.Equal(naira(100_000)))
}

func TestNewCalculationEngineWithRules_ExplicitZeroSections(t *testing.T) {
	rules := domain.DefaultPAYERules()
	rules.CRA = domain.CRARules{}
	rules.Deductions = domain.DeductionRules{}

	engine := NewCalculationEngineWithRules(rules)
	report, err := engine.Run(context.Background(), domain.IncomeInput{OtherIncome: naira(1_000_000), NHISEnabled: true, PensionEnabled: true})
	require.NoError(t, err)

	assert.True(t, report.Result.CRA.IsZero())
	assert.True(t, report.Deductions.NHIS.IsZero())
	assert.True(t, report.Deductions.Pension.IsZero())
	assert.Empty(t, report.Notices)

	// rules without bands are unset and get the defaults
	report, err = NewCalculationEngineWithRules(domain.PAYERules{}).Run(context.Background(), domain.IncomeInput{OtherIncome: naira(1_000_000)})
	require.NoError(t, err)
	assert.True(t, report.Result.AnnualTax.Equal(naira(54_000)))
}
