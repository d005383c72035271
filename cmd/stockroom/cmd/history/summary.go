package history

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
)

// NewSummaryCommand creates the history summary subcommand.
func NewSummaryCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Short:   "Aggregate totals across the ledger",
		Args:    cobra.NoArgs,
		Example: `  stockroom history summary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			summary := inv.Ledger().Summarize()

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), summary, func(_ bool) table.Data {
				return table.Data{
					Headers: []string{"Records", "Units", "Total"},
					Rows: [][]string{{
						strconv.Itoa(summary.Records),
						strconv.Itoa(summary.Units),
						strconv.FormatInt(summary.Total, 10),
					}},
					ColumnAlignment: []table.Align{
						table.AlignRight, table.AlignRight, table.AlignRight,
					},
				}
			})
		},
	}
}
