package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/datefield/pkg/commands/options"
	"tableflip.dev/datefield/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}
	var saveAs string

	cmd := &cobra.Command{
		Use:   "edit [format]",
		Short: "Edit a date field interactively",
		Long: `Open an interactive date field. Arrows adjust and move between sections,
digits and letters type into the active section and ctrl+s saves the field
as a preset.`,
		Example: `
datefield edit MM/DD/YYYY
datefield edit --preset work
datefield edit "YYYY-MM-DD HH:mm" --save-as meeting
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("edit needs a terminal, use sections or adjust instead")
			}
			fo.SetFormat(args)
			svc, err := loadService()
			if err != nil {
				return err
			}
			e := edit.Edit{
				Service:  svc,
				Settings: fo.Settings(),
				Preset:   fo.Preset,
				SaveAs:   saveAs,
			}
			return e.Do(cmd.Context())
		},
	}

	options.AddFieldArgs(cmd, fo)
	cmd.Flags().StringVar(&saveAs, "save-as", "", "Preset ctrl+s saves to, defaults to --preset.")
	registerPresetCompletion(cmd)

	topLevel.AddCommand(cmd)
}
