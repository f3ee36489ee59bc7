package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taxpro/taxpro-api/internal/helpers"
	"github.com/taxpro/taxpro-api/internal/taxengine"
)

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	Income               float64
	Status               string
	State                string
	StandardDeduction    float64
	AdditionalDeductions float64
}

// CalcResult is the output of the calc command.
type CalcResult struct {
	Input        taxengine.TaxInput  `json:"input"`
	Result       taxengine.TaxResult `json:"result"`
	StateRate    float64             `json:"stateRate"`
	MarginalRate float64             `json:"marginalRate"`
	TotalTax     float64             `json:"totalTax"`
	TaxYear      int                 `json:"taxYear"`
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate tax for one income",
		Long: `Estimate federal and state income tax.

The standard deduction defaults to the table value for the filing status.`,
		Example:       `  taxctl calc --income 50000 --status single --state CA`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Income, "income", 0, "gross income")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filing status (single|married|headOfHousehold)")
	cmd.Flags().StringVar(&opts.State, "state", "", "two letter state code")
	cmd.Flags().Float64Var(&opts.StandardDeduction, "standard-deduction", 0, "standard deduction (default: table value for the status)")
	cmd.Flags().Float64Var(&opts.AdditionalDeductions, "additional", 0, "additional deductions")
	_ = cmd.MarkFlagRequired("income")
	_ = cmd.MarkFlagRequired("status")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func runCalc(rootOpts *RootOptions, opts *CalcOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	tables, err := loadTables(rootOpts)
	if err != nil {
		return formatter.Fail(err)
	}

	status, ok := taxengine.ParseFilingStatus(opts.Status)
	if !ok {
		return formatter.Fail(NewExitError(ExitCommandError,
			fmt.Sprintf("unknown filing status %q: must be one of %s", opts.Status, statusList())))
	}

	state := strings.ToUpper(strings.TrimSpace(opts.State))
	if !tables.HasState(state) {
		return formatter.Fail(NewExitError(ExitCommandError, fmt.Sprintf("unknown state code %q", opts.State)))
	}

	standard := tables.StandardDeductionFor(string(status))
	if cmd.Flags().Changed("standard-deduction") {
		standard = opts.StandardDeduction
	}

	for name, v := range map[string]float64{
		"income":             opts.Income,
		"standard-deduction": standard,
		"additional":         opts.AdditionalDeductions,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return formatter.Fail(NewExitError(ExitCommandError, fmt.Sprintf("--%s must be a finite number >= 0", name)))
		}
	}

	input := taxengine.TaxInput{
		Income:               opts.Income,
		FilingStatus:         status,
		State:                state,
		StandardDeduction:    standard,
		AdditionalDeductions: opts.AdditionalDeductions,
	}
	brackets := tables.BracketsFor(string(status))
	result := taxengine.ComputeTax(input, brackets, tables.StateRateOrZero(state))

	return formatter.Success(CalcResult{
		Input:        input,
		Result:       result,
		StateRate:    tables.StateRateOrZero(state),
		MarginalRate: taxengine.MarginalRate(brackets, result.TaxableIncome),
		TotalTax:     result.TotalTax(),
		TaxYear:      tables.Year(),
	})
}

// RenderText prints the estimate as an aligned summary followed by the
// per-bracket breakdown.
func (r CalcResult) RenderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Tax year\t%d\t\n", r.TaxYear)
	fmt.Fprintf(tw, "Taxable income\t%s\t\n", helpers.FormatMoney(r.Result.TaxableIncome))
	fmt.Fprintf(tw, "Federal tax\t%s\t\n", helpers.FormatMoney(r.Result.FederalTax))
	fmt.Fprintf(tw, "State tax (%s)\t%s\t\n", r.Input.State, helpers.FormatMoney(r.Result.StateTax))
	fmt.Fprintf(tw, "Total tax\t%s\t\n", helpers.FormatMoney(r.TotalTax))
	fmt.Fprintf(tw, "Effective rate\t%s%%\t\n", helpers.FormatRate(r.Result.EffectiveRate))
	fmt.Fprintf(tw, "Marginal rate\t%s%%\t\n", helpers.FormatRate(r.MarginalRate*100))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Result.Breakdown) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Rate\tFrom\tTo\tTaxed\tTax\t")
	for _, b := range r.Result.Breakdown {
		fmt.Fprintf(tw, "%s%%\t%s\t%s\t%s\t%s\t\n",
			helpers.FormatRate(b.Bracket.Rate*100),
			helpers.FormatMoney(b.Bracket.Min),
			upperBound(b.Bracket),
			helpers.FormatMoney(b.TaxedAmount),
			helpers.FormatMoney(b.Tax))
	}
	return tw.Flush()
}

func upperBound(b taxengine.Bracket) string {
	if b.Unbounded() {
		return "and up"
	}
	return helpers.FormatMoney(b.Max)
}

func statusList() string {
	names := make([]string, 0, len(taxengine.FilingStatuses))
	for _, fs := range taxengine.FilingStatuses {
		names = append(names, string(fs))
	}
	return strings.Join(names, ", ")
}
