package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flavono123/jsonsketch/internal/sample"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand(opts *Options) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a sample document for the saved schema",
		Long: `Print the sample JSON document generated from the saved schema.

Strings become "Sample String", numbers 12345 and booleans true.
Arrays get short placeholder lists.`,
		Aliases: []string{"gen"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, false)
			if err != nil {
				return err
			}
			defer s.Close()

			indent := sample.DefaultIndent
			if compact {
				indent = 0
			}
			out, err := s.editor.JSON(indent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Print without indentation")

	return cmd
}
