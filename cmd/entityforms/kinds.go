package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/entityforms/pkg/entities"
	"github.com/dmitrymomot/entityforms/pkg/validator"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered entity kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range entities.Default().Kinds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe KIND",
		Short: "Print the fields of an entity kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := entities.Default().Schema(args[0])
			if err != nil {
				return err
			}

			fields := schema.Describe()
			switch output, _ := cmd.Flags().GetString("output"); output {
			case "json", "yaml":
				return writeReport(cmd.OutOrStdout(), output, fields)
			case "table":
			default:
				return fmt.Errorf("unsupported output format %q: must be table, json or yaml", output)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tTYPE\tREQUIRED\tCONSTRAINTS")
			for _, f := range fields {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", f.Path, f.Type, f.Required, constraints(f.RuleInfo))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table, json or yaml")
	return cmd
}

func constraints(info validator.RuleInfo) string {
	var parts []string
	if info.Integer {
		parts = append(parts, "integer")
	}
	if info.Min != nil {
		parts = append(parts, fmt.Sprintf("min=%g", *info.Min))
	}
	if info.MinLen > 0 {
		parts = append(parts, fmt.Sprintf("min_length=%d", info.MinLen))
	}
	if len(info.Values) > 0 {
		parts = append(parts, "one of "+strings.Join(info.Values, "|"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
