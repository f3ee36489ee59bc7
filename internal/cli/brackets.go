package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taxpro/taxpro-api/internal/helpers"
	"github.com/taxpro/taxpro-api/internal/taxengine"
)

// BracketsResult is the output of the brackets command.
type BracketsResult struct {
	FilingStatus      string                 `json:"filingStatus"`
	StandardDeduction float64                `json:"standardDeduction"`
	Brackets          taxengine.BracketTable `json:"brackets"`
}

// NewBracketsCommand creates the brackets command.
func NewBracketsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "brackets <filing-status>",
		Short:         "Print the federal bracket table for a filing status",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			tables, err := loadTables(rootOpts)
			if err != nil {
				return formatter.Fail(err)
			}
			status, ok := taxengine.ParseFilingStatus(args[0])
			if !ok {
				return formatter.Fail(NewExitError(ExitCommandError,
					fmt.Sprintf("unknown filing status %q: must be one of %s", args[0], statusList())))
			}
			return formatter.Success(BracketsResult{
				FilingStatus:      string(status),
				StandardDeduction: tables.StandardDeductionFor(string(status)),
				Brackets:          tables.BracketsFor(string(status)),
			})
		},
	}
}

func (r BracketsResult) RenderText(w io.Writer) error {
	fmt.Fprintf(w, "%s (standard deduction %s)\n", r.FilingStatus, helpers.FormatMoney(r.StandardDeduction))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Rate\tFrom\tTo\t")
	for _, b := range r.Brackets {
		fmt.Fprintf(tw, "%s%%\t%s\t%s\t\n", helpers.FormatRate(b.Rate*100), helpers.FormatMoney(b.Min), upperBound(b))
	}
	return tw.Flush()
}
