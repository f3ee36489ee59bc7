package taxengine

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var embeddedTables []byte

var stateCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

type bracketDoc struct {
	Min  float64  `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Rate float64  `yaml:"rate"`
}

type federalDoc struct {
	StandardDeduction float64      `yaml:"standard_deduction"`
	Brackets          []bracketDoc `yaml:"brackets"`
}

type tablesDoc struct {
	Year    int                   `yaml:"year"`
	Version string                `yaml:"version"`
	Federal map[string]federalDoc `yaml:"federal"`
	States  map[string]float64    `yaml:"states"`
}

// Tables holds the bracket tables, standard deductions and state rates for
// one tax year. A Tables value is never modified after it is built and every
// accessor returns a copy, so it can be shared between goroutines.
type Tables struct {
	year               int
	version            string
	brackets           map[FilingStatus]BracketTable
	standardDeductions map[FilingStatus]float64
	stateRates         map[string]float64
}

// DefaultTables parses the tables compiled into the binary.
func DefaultTables() (*Tables, error) {
	return ParseTables(embeddedTables)
}

// MustDefaultTables is like DefaultTables but panics if the compiled-in
// tables are invalid.
func MustDefaultTables() *Tables {
	t, err := DefaultTables()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTables reads tables from path, or falls back to the compiled-in tables
// when path is empty.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax tables %s: %w", path, err)
	}
	return ParseTables(data)
}

// ParseTables decodes a YAML tables document and validates every bracket
// table in it.
func ParseTables(data []byte) (*Tables, error) {
	var doc tablesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode tax tables: %w", err)
	}

	t := &Tables{
		year:               doc.Year,
		version:            doc.Version,
		brackets:           make(map[FilingStatus]BracketTable, len(FilingStatuses)),
		standardDeductions: make(map[FilingStatus]float64, len(FilingStatuses)),
		stateRates:         make(map[string]float64, len(doc.States)),
	}

	for name, fed := range doc.Federal {
		status, ok := ParseFilingStatus(name)
		if !ok {
			return nil, fmt.Errorf("unknown filing status %q in tax tables", name)
		}

		table := make(BracketTable, 0, len(fed.Brackets))
		for _, b := range fed.Brackets {
			upper := math.Inf(1)
			if b.Max != nil {
				upper = *b.Max
			}
			table = append(table, Bracket{Min: b.Min, Max: upper, Rate: b.Rate})
		}

		if err := table.Validate(); err != nil {
			var ce *ComputationError
			if errors.As(err, &ce) {
				ce.Table = name
			}
			return nil, err
		}
		if fed.StandardDeduction < 0 {
			return nil, fmt.Errorf("negative standard deduction for %q", name)
		}

		t.brackets[status] = table
		t.standardDeductions[status] = fed.StandardDeduction
	}

	for _, status := range FilingStatuses {
		if _, ok := t.brackets[status]; !ok {
			return nil, fmt.Errorf("tax tables missing filing status %q", status)
		}
	}

	for code, rate := range doc.States {
		if !stateCodePattern.MatchString(code) {
			return nil, fmt.Errorf("invalid state code %q in tax tables", code)
		}
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("state rate %v for %s outside [0,1]", rate, code)
		}
		t.stateRates[code] = rate
	}

	return t, nil
}

func (t *Tables) Year() int { return t.year }

func (t *Tables) Version() string { return t.version }

// BracketsFor returns the table for status, or an empty table when the
// status is not recognised.
func (t *Tables) BracketsFor(status string) BracketTable {
	table, ok := t.brackets[FilingStatus(status)]
	if !ok {
		return BracketTable{}
	}
	out := make(BracketTable, len(table))
	copy(out, table)
	return out
}

// RateFor returns the flat rate for a two letter state code.
func (t *Tables) RateFor(state string) (float64, bool) {
	rate, ok := t.stateRates[state]
	return rate, ok
}

// StateRateOrZero treats an unknown state as untaxed.
func (t *Tables) StateRateOrZero(state string) float64 {
	rate, _ := t.RateFor(state)
	return rate
}

// HasState reports whether state has an entry in the rate table.
func (t *Tables) HasState(state string) bool {
	_, ok := t.stateRates[state]
	return ok
}

// StateCodes returns every known state code in alphabetical order.
func (t *Tables) StateCodes() []string {
	codes := make([]string, 0, len(t.stateRates))
	for code := range t.stateRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// StandardDeductionFor returns the default standard deduction for status, 0
// when unknown.
func (t *Tables) StandardDeductionFor(status string) float64 {
	return t.standardDeductions[FilingStatus(status)]
}

// Compute looks up the bracket table and state rate and runs ComputeTax.
func (t *Tables) Compute(input TaxInput) TaxResult {
	return ComputeTax(input, t.BracketsFor(string(input.FilingStatus)), t.StateRateOrZero(input.State))
}
