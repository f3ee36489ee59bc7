package taxengine_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxpro/taxpro-api/internal/taxengine"
)

func TestDefaultTables(t *testing.T) {
	tables := defaultTables(t)

	assert.Equal(t, 2023, tables.Year())
	assert.NotEmpty(t, tables.Version())
	assert.Len(t, tables.StateCodes(), 50)

	for _, status := range taxengine.FilingStatuses {
		brackets := tables.BracketsFor(string(status))
		require.Len(t, brackets, 7, "status %s", status)
		assert.NoError(t, brackets.Validate())
		assert.True(t, brackets[6].Unbounded())
	}

	single := tables.BracketsFor("single")
	assert.Equal(t, taxengine.Bracket{Min: 11001, Max: 44725, Rate: 0.12}, single[1])
	assert.Equal(t, 578126.0, single[6].Min)

	assert.Equal(t, 13850.0, tables.StandardDeductionFor("single"))
	assert.Equal(t, 27700.0, tables.StandardDeductionFor("married"))
	assert.Equal(t, 20800.0, tables.StandardDeductionFor("headOfHousehold"))
	assert.Equal(t, 0.0, tables.StandardDeductionFor("widowed"))
}

func TestTables_BracketsForUnknownStatus(t *testing.T) {
	brackets := defaultTables(t).BracketsFor("widowed")

	assert.NotNil(t, brackets)
	assert.Empty(t, brackets)
}

func TestTables_BracketsForReturnsCopy(t *testing.T) {
	tables := defaultTables(t)

	brackets := tables.BracketsFor("single")
	brackets[0].Rate = 0.99

	assert.Equal(t, 0.10, tables.BracketsFor("single")[0].Rate)
}

func TestTables_StateRates(t *testing.T) {
	tables := defaultTables(t)

	tests := []struct {
		state  string
		want   float64
		wantOK bool
	}{
		{state: "CA", want: 0.093, wantOK: true},
		{state: "TX", want: 0, wantOK: true},
		{state: "NJ", want: 0.1075, wantOK: true},
		{state: "HI", want: 0.11, wantOK: true},
		{state: "ZZ", want: 0, wantOK: false},
		{state: "ca", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			rate, ok := tables.RateFor(tt.state)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, rate)
			assert.Equal(t, tt.want, tables.StateRateOrZero(tt.state))
			assert.Equal(t, tt.wantOK, tables.HasState(tt.state))
		})
	}
}

func TestBracketTable_Validate(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name    string
		table   taxengine.BracketTable
		wantErr bool
	}{
		{
			name:  "one unit gap convention",
			table: taxengine.BracketTable{{0, 100, 0.1}, {101, inf, 0.2}},
		},
		{
			name:  "exactly contiguous",
			table: taxengine.BracketTable{{0, 100, 0.1}, {100, inf, 0.2}},
		},
		{
			name:  "single unbounded bracket",
			table: taxengine.BracketTable{{0, inf, 0.15}},
		},
		{name: "empty", table: taxengine.BracketTable{}, wantErr: true},
		{name: "does not start at zero", table: taxengine.BracketTable{{10, inf, 0.1}}, wantErr: true},
		{name: "bounded last bracket", table: taxengine.BracketTable{{0, 100, 0.1}, {101, 200, 0.2}}, wantErr: true},
		{name: "overlap", table: taxengine.BracketTable{{0, 100, 0.1}, {50, inf, 0.2}}, wantErr: true},
		{name: "gap", table: taxengine.BracketTable{{0, 100, 0.1}, {150, inf, 0.2}}, wantErr: true},
		{name: "unordered", table: taxengine.BracketTable{{0, 100, 0.1}, {101, inf, 0.2}, {50, 60, 0.3}}, wantErr: true},
		{name: "rate above one", table: taxengine.BracketTable{{0, inf, 1.5}}, wantErr: true},
		{name: "negative rate", table: taxengine.BracketTable{{0, inf, -0.1}}, wantErr: true},
		{name: "unbounded in the middle", table: taxengine.BracketTable{{0, inf, 0.1}, {101, inf, 0.2}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, taxengine.ErrMalformedTable))

			var ce *taxengine.ComputationError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

const minimalTables = `
year: 2024
version: test
federal:
  single:
    standard_deduction: 1000
    brackets:
      - { min: 0, max: 100, rate: 0.1 }
      - { min: 101, rate: 0.2 }
  married:
    brackets:
      - { min: 0, rate: 0.1 }
  headOfHousehold:
    brackets:
      - { min: 0, rate: 0.1 }
states:
  CA: 0.05
`

func TestParseTables(t *testing.T) {
	tables, err := taxengine.ParseTables([]byte(minimalTables))
	require.NoError(t, err)

	assert.Equal(t, 2024, tables.Year())
	assert.Equal(t, "test", tables.Version())
	assert.Len(t, tables.BracketsFor("single"), 2)
	assert.Equal(t, 1000.0, tables.StandardDeductionFor("single"))
	assert.Equal(t, []string{"CA"}, tables.StateCodes())
}

func TestParseTables_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{
			name: "malformed bracket table",
			doc: `
federal:
  single: { brackets: [ { min: 0, max: 100, rate: 0.1 }, { min: 500, rate: 0.2 } ] }
  married: { brackets: [ { min: 0, rate: 0.1 } ] }
  headOfHousehold: { brackets: [ { min: 0, rate: 0.1 } ] }
`,
			is: taxengine.ErrMalformedTable,
		},
		{
			name: "missing status",
			doc: `
federal:
  single: { brackets: [ { min: 0, rate: 0.1 } ] }
`,
		},
		{
			name: "unknown status",
			doc: `
federal:
  single: { brackets: [ { min: 0, rate: 0.1 } ] }
  married: { brackets: [ { min: 0, rate: 0.1 } ] }
  headOfHousehold: { brackets: [ { min: 0, rate: 0.1 } ] }
  widowed: { brackets: [ { min: 0, rate: 0.1 } ] }
`,
		},
		{
			name: "bad state code",
			doc: `
federal:
  single: { brackets: [ { min: 0, rate: 0.1 } ] }
  married: { brackets: [ { min: 0, rate: 0.1 } ] }
  headOfHousehold: { brackets: [ { min: 0, rate: 0.1 } ] }
states:
  California: 0.05
`,
		},
		{
			name: "state rate out of range",
			doc: `
federal:
  single: { brackets: [ { min: 0, rate: 0.1 } ] }
  married: { brackets: [ { min: 0, rate: 0.1 } ] }
  headOfHousehold: { brackets: [ { min: 0, rate: 0.1 } ] }
states:
  CA: 9.3
`,
		},
		{name: "invalid yaml", doc: "federal: [", is: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := taxengine.ParseTables([]byte(tt.doc))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestParseTables_NamesMalformedTable(t *testing.T) {
	doc := `
federal:
  single: { brackets: [ { min: 0, rate: 0.1 } ] }
  married: { brackets: [ { min: 0, max: 10, rate: 0.1 } ] }
  headOfHousehold: { brackets: [ { min: 0, rate: 0.1 } ] }
`
	_, err := taxengine.ParseTables([]byte(doc))

	var ce *taxengine.ComputationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "married", ce.Table)
	assert.Contains(t, err.Error(), "married")
}

func TestLoadTables(t *testing.T) {
	tables, err := taxengine.LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, 2023, tables.Year())

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalTables), 0o600))

	tables, err = taxengine.LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, tables.Year())

	_, err = taxengine.LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseFilingStatus(t *testing.T) {
	status, ok := taxengine.ParseFilingStatus("headOfHousehold")
	assert.True(t, ok)
	assert.Equal(t, taxengine.FilingStatusHeadOfHousehold, status)

	_, ok = taxengine.ParseFilingStatus("Single")
	assert.False(t, ok)
}

func TestMustDefaultTables(t *testing.T) {
	assert.NotPanics(t, func() {
		tables := taxengine.MustDefaultTables()
		assert.Equal(t, 13850.0, tables.StandardDeductionFor("single"))
	})
}
