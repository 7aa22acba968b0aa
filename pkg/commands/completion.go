package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(datefield completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(datefield completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func registerPresetCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("preset", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return presetCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func presetCompletions(cmd *cobra.Command, toComplete string) []string {
	svc, err := loadService()
	if err != nil {
		return nil
	}
	presets, err := svc.ListPresets(cmd.Context())
	if err != nil && len(presets) == 0 {
		return nil
	}
	var names []string
	for _, p := range presets {
		if strings.HasPrefix(p.Name, toComplete) {
			names = append(names, p.Name)
		}
	}
	return names
}
