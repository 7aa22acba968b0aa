package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datefield/pkg/commands/options"
	"tableflip.dev/datefield/pkg/runner/excel"
)

func addExcel(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "excel <numFmt|id>",
		Short: "Translate an Excel number format into sections",
		Long: `Translate an Excel number format code, or the id of a built in format,
into a field format and print its sections.`,
		Example: `
datefield excel "yyyy-mm-dd h:mm AM/PM"
datefield excel 14 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			x := excel.Excel{
				Service:  svc,
				NumFmt:   args[0],
				Settings: fo.Settings(),
				JSON:     oo.JSON,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(x.Do(cmd.Context()))
		},
	}

	options.AddFieldArgs(cmd, fo)
	_ = cmd.Flags().MarkHidden("preset")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
