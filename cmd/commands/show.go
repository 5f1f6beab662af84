package commands

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/flavono123/jsonsketch/internal/schema"
)

// NewShowCommand creates the show command
func NewShowCommand(opts *Options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the fields of the saved schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, false)
			if err != nil {
				return err
			}
			defer s.Close()

			return printFields(cmd, output, s.editor.Fields())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table (default), json or yaml")

	return cmd
}

func printFields(cmd *cobra.Command, output string, fields []*schema.Node) error {
	switch output {
	case "", "table":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{
			"POINTER",
			"KEY",
			"TYPE",
			"ITEM TYPE",
			"ID",
		})
		schema.Walk(fields, func(path schema.Path, n *schema.Node) bool {
			itemType := ""
			if n.Type == schema.Array {
				itemType = string(n.ArrayType)
			}
			tw.AppendRow(table.Row{
				schema.Pointer(fields, path),
				strings.Repeat("  ", len(path)-1) + n.Key,
				n.Type,
				itemType,
				n.ID,
			})
			return true
		})
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", tw.Render())
	case "json":
		jsonOutput, err := json.MarshalIndent(schema.Document{Schema: fields}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(schema.Document{Schema: fields})
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}
