package commands

import (
	"fmt"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flavono123/jsonsketch/internal/ui"
)

// NewRootCommand builds the jsonsketch command tree over opts.
func NewRootCommand(version string, opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsonsketch",
		Short: "Sketch a JSON schema and preview a sample document",
		Long: `jsonsketch is a terminal editor for JSON schemas. Fields are edited as a tree
and a sample document is regenerated on every change. The schema is saved
between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file (default is config.yaml in the user config dir)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "Directory of the saved schema state")
	flags.BoolVar(&opts.Ephemeral, "ephemeral", false, "Keep the schema in memory only")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		NewGenerateCommand(opts),
		NewShowCommand(opts),
		NewCopyCommand(opts),
		NewClearCommand(opts),
		newVersionCommand(version),
	)

	return rootCmd
}

func runTUI(opts *Options) error {
	s, err := openSession(opts, true)
	if err != nil {
		return err
	}
	defer s.Close()

	program := tea.NewProgram(
		ui.InitModel(s.editor, ui.Options{
			PreviewWidth: s.cfg.Preview.Width,
			PreviewWrap:  s.cfg.Preview.Wrap,
			Logger:       s.logger,
		}),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of jsonsketch",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "jsonsketch: %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", runtime.Version())
			return nil
		},
	}
}
