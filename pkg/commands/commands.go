package commands

import (
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/store"
)

type logOptions struct {
	Verbose bool
	JSON    bool
}

func New() *cobra.Command {
	lo := &logOptions{}

	cmd := &cobra.Command{
		Use:   "datefield",
		Short: base.Wrap80("Split date formats into editable sections and edit them from the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if termenv.EnvNoColor() {
				color.NoColor = true
			}
			level := slog.LevelWarn
			if lo.Verbose {
				level = slog.LevelDebug
			}
			opts := &slog.HandlerOptions{Level: level}
			if lo.JSON {
				cmd.SetContext(ctxlog.NewJSONLogger(cmd.Context(), os.Stderr, opts))
				return
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), slog.New(slog.NewTextHandler(os.Stderr, opts))))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&lo.Verbose, "verbose", "v", false, "Log debug output to stderr.")
	cmd.PersistentFlags().BoolVar(&lo.JSON, "log-json", false, "Log as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSections(topLevel)
	addAdjust(topLevel)
	addEdit(topLevel)
	addPreset(topLevel)
	addExcel(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService reads the configuration and opens the preset store.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	presets, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{Presets: presets, Config: cfg}, nil
}
