package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCopyCommand creates the copy command
func NewCopyCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the sample document to the clipboard",
		Long: `Copy the pretty printed sample document of the saved schema to the
system clipboard.`,
		Aliases: []string{"clip"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.editor.CopyOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ JSON copied to clipboard!")
			return nil
		},
	}
}

// NewClearCommand creates the clear command
func NewClearCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every field from the saved schema",
		Long: `Remove every field from the saved schema. There is no undo.

An empty schema is not kept across runs: the next start shows the default
"user" schema again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, false)
			if err != nil {
				return err
			}
			defer s.Close()

			s.editor.ClearAll()
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Schema cleared.")
			return nil
		},
	}
}
