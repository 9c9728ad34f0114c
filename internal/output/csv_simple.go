package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/naijatax/paye/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per declaration).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(reports []domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Category", "GrossIncome", "CRA", "TaxableIncome", "AnnualTax", "MonthlyTax",
		"EffectiveRatePercent", "Pension", "NHIS", "RentRelief", "NetAnnualIncome"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range reports {
		row := []string{
			r.Name,
			string(r.Category),
			r.GrossIncome.StringFixed(2),
			r.Result.CRA.StringFixed(2),
			r.Result.TaxableIncome.StringFixed(2),
			r.Result.AnnualTax.StringFixed(2),
			r.Result.MonthlyTax.StringFixed(2),
			r.EffectiveRatePercent.StringFixed(2),
			r.Deductions.Pension.StringFixed(2),
			r.Deductions.NHIS.StringFixed(2),
			r.Deductions.RentRelief.StringFixed(2),
			r.NetAnnualIncome.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVBandFormatter writes one row per band used by each declaration
type CSVBandFormatter struct{}

func (c CSVBandFormatter) Name() string { return "detailed-csv" }

func (c CSVBandFormatter) Format(reports []domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Name", "Band", "Label", "BandWidth", "Rate", "TaxableAmountInBand", "TaxInBand"}); err != nil {
		return nil, err
	}
	for _, r := range reports {
		for i, b := range r.Result.Breakdown {
			row := []string{
				r.Name,
				strconv.Itoa(i + 1),
				BandLabel(b),
				b.BandWidth.String(),
				b.Rate.String(),
				b.TaxableAmountInBand.StringFixed(2),
				b.TaxInBand.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
