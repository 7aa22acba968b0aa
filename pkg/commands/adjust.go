package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datefield/pkg/commands/options"
	"tableflip.dev/datefield/pkg/runner/adjust"
)

func addAdjust(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}
	oo := &options.OutputOptions{}
	var (
		section int
		keys    []string
	)

	cmd := &cobra.Command{
		Use:   "adjust [format]",
		Short: "Run editing keys against a section",
		Long: `Focus a section and run editing keys against it, in order.

Keys: ArrowUp, ArrowDown, PageUp, PageDown, Home, End adjust the section,
ArrowLeft, ArrowRight, Tab and ShiftTab move, Backspace clears, and =text
types text into the active section.`,
		Example: `
datefield adjust MM/DD/YYYY --date 2023-01-05T00:00:00Z --key ArrowUp
datefield adjust HH:mm --section 1 --minutes-step 15 --key ArrowUp --key ArrowUp
datefield adjust "MMMM D" --key =jul --key ArrowRight --key End
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fo.SetFormat(args)
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			a := adjust.Adjust{
				Service:  svc,
				Settings: fo.Settings(),
				Preset:   fo.Preset,
				Section:  section,
				Commands: keys,
				JSON:     oo.JSON,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddFieldArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVarP(&section, "section", "s", 0, "Index of the section to focus.")
	cmd.Flags().StringArrayVarP(&keys, "key", "k", nil, "Editing key to run, repeatable.")
	registerPresetCompletion(cmd)

	topLevel.AddCommand(cmd)
}
