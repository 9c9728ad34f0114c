package output

import (
	"encoding/json"

	"github.com/naijatax/paye/internal/domain"
	"gopkg.in/yaml.v3"
)

// Document is the machine-readable envelope for json and yaml output
type Document struct {
	Regime     domain.RulesMetadata `json:"regime" yaml:"regime"`
	Reports    []domain.TaxReport   `json:"reports" yaml:"reports"`
	Disclaimer string               `json:"disclaimer" yaml:"disclaimer"`
}

func newDocument(rules domain.PAYERules, reports []domain.TaxReport) Document {
	if reports == nil {
		reports = []domain.TaxReport{}
	}
	return Document{Regime: rules.Metadata, Reports: reports, Disclaimer: Disclaimer(rules)}
}

// JSONFormatter renders reports as JSON
type JSONFormatter struct {
	Rules  domain.PAYERules
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(reports []domain.TaxReport) ([]byte, error) {
	doc := newDocument(j.Rules, reports)
	if j.Pretty {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return json.Marshal(doc)
}

// YAMLFormatter renders reports as YAML
type YAMLFormatter struct {
	Rules domain.PAYERules
}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(reports []domain.TaxReport) ([]byte, error) {
	return yaml.Marshal(newDocument(y.Rules, reports))
}
