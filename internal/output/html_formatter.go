package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct {
	Rules domain.PAYERules
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"naira": FormatNaira,
	"neg":   func(d decimal.Decimal) decimal.Decimal { return d.Neg() },
	"rate":  FormatRate,
	"pct":   func(d decimal.Decimal) string { return FormatPercent(d, 0) },
	"band":  BandLabel,
	// effective rate bar width, capped at 100
	"width": func(d decimal.Decimal) string { return decimal.Min(d, hundred).StringFixed(1) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(reports []domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Headline    string
		Reports     []domain.TaxReport
		Assumptions []string
		Disclaimer  string
	}{RegimeHeadline(h.Rules), reports, Assumptions(h.Rules), Disclaimer(h.Rules)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
