package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taxpro/taxpro-api/internal/helpers"
)

// StateRate is one row of the rates command output.
type StateRate struct {
	State string  `json:"state"`
	Rate  float64 `json:"rate"`
}

// RatesResult is the output of the rates command.
type RatesResult struct {
	Rates []StateRate `json:"rates"`
}

// NewRatesCommand creates the rates command.
func NewRatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rates [state]",
		Short:         "Print flat state tax rates",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			tables, err := loadTables(rootOpts)
			if err != nil {
				return formatter.Fail(err)
			}

			if len(args) == 1 {
				code := strings.ToUpper(strings.TrimSpace(args[0]))
				rate, ok := tables.RateFor(code)
				if !ok {
					return formatter.Fail(NewExitError(ExitCommandError, fmt.Sprintf("unknown state code %q", args[0])))
				}
				return formatter.Success(RatesResult{Rates: []StateRate{{State: code, Rate: rate}}})
			}

			codes := tables.StateCodes()
			out := RatesResult{Rates: make([]StateRate, 0, len(codes))}
			for _, code := range codes {
				rate, _ := tables.RateFor(code)
				out.Rates = append(out.Rates, StateRate{State: code, Rate: rate})
			}
			return formatter.Success(out)
		},
	}
}

func (r RatesResult) RenderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, sr := range r.Rates {
		fmt.Fprintf(tw, "%s\t%s%%\n", sr.State, helpers.FormatRate(sr.Rate*100))
	}
	return tw.Flush()
}
