package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func bulkSearchCmd() *cobra.Command {
	var (
		envFile string
		roles   []string
	)

	cmd := &cobra.Command{
		Use:   "bulk-search <company-name>",
		Short: "Search a company's employees across role templates",
		Long: `Search a company's employees across a set of role templates.

Each role template issues one research query; results are merged and
de-duplicated by name and email. Without --role the default leadership
role set is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulkSearch(cmd, args[0], envFile, roles)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringArrayVar(&roles, "role", nil, "Role template to search (repeatable)")

	return cmd
}

func runBulkSearch(cmd *cobra.Command, name, envFile string, roles []string) error {
	client, err := newCLIClient(envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := client.BulkSearch.Run(cmd.Context(), name, roles)
	if err != nil {
		return fmt.Errorf("bulk search: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d employees from %d queries", result.CompanyName, len(result.Employees), result.Queries)
	if result.Failed > 0 {
		fmt.Fprintf(out, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(out)

	for _, e := range result.Employees {
		line := "  - " + e.FullName()
		if e.Title() != "" {
			line += ", " + e.Title()
		}
		if e.Department() != "" {
			line += " (" + e.Department() + ")"
		}
		if e.Email() != "" {
			line += " <" + e.Email() + ">"
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
