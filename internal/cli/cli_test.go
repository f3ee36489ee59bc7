package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "taxctl", cmd.Use)

	for _, name := range []string{"calc", "brackets", "rates"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "rates", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCalcText(t *testing.T) {
	out, err := execute(t, "calc", "--income", "50000", "--status", "single", "--state", "ca")
	require.NoError(t, err)

	assert.Contains(t, out, "36150.00")
	assert.Contains(t, out, "4118.00")
	assert.Contains(t, out, "3361.95")
	assert.Contains(t, out, "14.9599%")
}

func TestCalcJSON(t *testing.T) {
	out, err := execute(t, "calc", "--format", "json", "--income", "10000", "--status", "single", "--state", "CA")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Result struct {
				FederalTax    float64 `json:"federalTax"`
				StateTax      float64 `json:"stateTax"`
				EffectiveRate float64 `json:"effectiveRate"`
				TaxableIncome float64 `json:"taxableIncome"`
			} `json:"result"`
			TaxYear int `json:"taxYear"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Zero(t, resp.Data.Result.TaxableIncome)
	assert.Zero(t, resp.Data.Result.FederalTax)
	assert.Zero(t, resp.Data.Result.StateTax)
	assert.Zero(t, resp.Data.Result.EffectiveRate)
	assert.Equal(t, 2023, resp.Data.TaxYear)
}

func TestCalcStandardDeductionOverride(t *testing.T) {
	out, err := execute(t, "calc", "--format", "json", "--income", "50000", "--status", "single",
		"--state", "TX", "--standard-deduction", "0")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Result struct {
				TaxableIncome float64 `json:"taxableIncome"`
				StateTax      float64 `json:"stateTax"`
			} `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 50000.0, resp.Data.Result.TaxableIncome)
	assert.Zero(t, resp.Data.Result.StateTax)
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown status", []string{"calc", "--income", "1", "--status", "widow", "--state", "CA"}, ExitCommandError},
		{"unknown state", []string{"calc", "--income", "1", "--status", "single", "--state", "ZZ"}, ExitCommandError},
		{"negative income", []string{"calc", "--income", "-5", "--status", "single", "--state", "CA"}, ExitCommandError},
		{"missing flag", []string{"calc", "--income", "1"}, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, GetExitCode(err))
		})
	}
}

func TestCalcErrorJSON(t *testing.T) {
	out, err := execute(t, "calc", "--format", "json", "--income", "1", "--status", "widow", "--state", "CA")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "widow")
}

func TestBrackets(t *testing.T) {
	out, err := execute(t, "brackets", "married")
	require.NoError(t, err)
	assert.Contains(t, out, "standard deduction 27700.00")
	assert.Contains(t, out, "37.0000%")

	_, err = execute(t, "brackets", "nobody")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRates(t *testing.T) {
	out, err := execute(t, "--format", "json", "rates")
	require.NoError(t, err)
	var resp struct {
		Data RatesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Data.Rates, 50)
	assert.Equal(t, "AK", resp.Data.Rates[0].State)

	out, err = execute(t, "rates", "ny")
	require.NoError(t, err)
	assert.Contains(t, out, "NY")

	_, err = execute(t, "rates", "XX")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTablesFlag(t *testing.T) {
	_, err := execute(t, "--tables", filepath.Join(t.TempDir(), "missing.yaml"), "rates")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: [\n"), 0o600))
	_, err = execute(t, "--tables", path, "rates")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
}
