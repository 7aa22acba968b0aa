package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datefield/pkg/commands/options"
	"tableflip.dev/datefield/pkg/runner/preset"
)

func addPreset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage stored field presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPresetSave(cmd)
	addPresetList(cmd)
	addPresetDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addPresetSave(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "save <name> [format]",
		Short: "Save field settings as a preset",
		Example: `
datefield preset save gb L --locale en-GB
datefield preset save meeting "YYYY-MM-DD HH:mm" --minutes-step 15
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fo.SetFormat(args[1:])
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := preset.Save{
				Service:  svc,
				Name:     args[0],
				Settings: fo.Settings(),
				Out:      cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddFieldArgs(cmd, fo)
	_ = cmd.Flags().MarkHidden("preset")

	topLevel.AddCommand(cmd)
}

func addPresetList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			l := preset.List{
				Service: svc,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addPresetDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Remove a stored preset",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return presetCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			d := preset.Delete{
				Service: svc,
				Name:    args[0],
				Out:     cmd.OutOrStdout(),
			}
			return d.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
