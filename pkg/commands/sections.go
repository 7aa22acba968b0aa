package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datefield/pkg/commands/options"
	"tableflip.dev/datefield/pkg/runner/sections"
)

func addSections(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}
	oo := &options.OutputOptions{}
	var calendar bool

	cmd := &cobra.Command{
		Use:   "sections [format]",
		Short: "Split a format into sections",
		Long: `Split a format into the sections a date field edits. Without a format the
preset, then the configured default, is used.`,
		Example: `
datefield sections MM/DD/YYYY
datefield sections "dddd, MMMM D YYYY" --date 2023-01-05T00:00:00Z --calendar
datefield sections L --locale en-GB --rtl --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fo.SetFormat(args)
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := sections.Sections{
				Service:  svc,
				Settings: fo.Settings(),
				Preset:   fo.Preset,
				JSON:     oo.JSON,
				Calendar: calendar,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFieldArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Also print the month of the value.")
	registerPresetCompletion(cmd)

	topLevel.AddCommand(cmd)
}
