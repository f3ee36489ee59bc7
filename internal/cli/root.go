package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxpro/taxpro-api/internal/taxengine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format     string // "json" | "text"
	TablesPath string // empty means the compiled-in tables
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for taxctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "taxctl",
		Short: "Estimate U.S. federal and state income tax",
		Long: `taxctl computes federal tax over progressive brackets plus a flat state
tax from the same tables the API serves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.TablesPath, "tables", "", "path to a tax tables YAML file")

	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewBracketsCommand(opts))
	cmd.AddCommand(NewRatesCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func loadTables(opts *RootOptions) (*taxengine.Tables, error) {
	tables, err := taxengine.LoadTables(opts.TablesPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load tax tables", err)
	}
	return tables, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}
}
