package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/naijatax/paye/internal/domain"
)

// Formatter renders a set of tax reports
type Formatter interface {
	Name() string
	Format(reports []domain.TaxReport) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(reports []domain.TaxReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(reports []domain.TaxReport) ([]byte, error) {
	return f.F(reports)
}

var formatAliases = map[string]string{
	"text":  "console",
	"table": "console",
	"yml":   "yaml",
	"htm":   "html",
}

func builtinFormatters(rules domain.PAYERules) []Formatter {
	return []Formatter{
		ConsoleFormatter{Rules: rules},
		JSONFormatter{Rules: rules, Pretty: true},
		YAMLFormatter{Rules: rules},
		CSVSummarizer{},
		CSVBandFormatter{},
		HTMLFormatter{Rules: rules},
	}
}

// NewFormatter returns the formatter for name (or alias) bound to rules, or
// nil when the name is unknown.
func NewFormatter(name string, rules domain.PAYERules) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	for _, f := range builtinFormatters(rules) {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// GetFormatterByName returns a formatter bound to the default rules
func GetFormatterByName(name string) Formatter {
	return NewFormatter(name, domain.DefaultPAYERules())
}

// AvailableFormatterNames lists the canonical formatter names
func AvailableFormatterNames() []string {
	formatters := builtinFormatters(domain.DefaultPAYERules())
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists accepted aliases in sorted order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for a := range formatAliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted formats reports and writes them to w
func WriteFormatted(w io.Writer, f Formatter, reports []domain.TaxReport) error {
	data, err := f.Format(reports)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormattedFile formats reports into path, or stdout when path is empty
func WriteFormattedFile(path string, f Formatter, reports []domain.TaxReport) error {
	if path == "" {
		return WriteFormatted(os.Stdout, f, reports)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteFormatted(file, f, reports); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
