package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/firmscope/firmscope"
	"github.com/firmscope/firmscope/application/service"
	"github.com/firmscope/firmscope/internal/config"
	"github.com/firmscope/firmscope/internal/log"
	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	var (
		envFile     string
		companyCtx  string
		industryIn  string
		sizeIn      string
		domainIn    string
		refresh     bool
		showRoster  bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <company-name>",
		Short: "Look up a company profile",
		Long: `Look up a company profile, answering from the cache when possible.

Optional --industry, --size and --domain values are compared against the
researched profile: matching values are printed as-is, disagreements are
annotated with the researched value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], lookupParams{
				envFile:    envFile,
				context:    companyCtx,
				industry:   industryIn,
				size:       sizeIn,
				domain:     domainIn,
				refresh:    refresh,
				showRoster: showRoster,
			})
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&companyCtx, "context", "", "Disambiguating context (e.g. \"fintech startup in London\")")
	cmd.Flags().StringVar(&industryIn, "industry", "", "Your expected industry, checked against the researched value")
	cmd.Flags().StringVar(&sizeIn, "size", "", "Your expected employee size, checked against the researched value")
	cmd.Flags().StringVar(&domainIn, "domain", "", "Your expected website domain, checked against the researched value")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-research even if the company is cached")
	cmd.Flags().BoolVar(&showRoster, "employees", true, "Print the employee roster")

	return cmd
}

type lookupParams struct {
	envFile    string
	context    string
	industry   string
	size       string
	domain     string
	refresh    bool
	showRoster bool
}

func runLookup(cmd *cobra.Command, name string, params lookupParams) error {
	client, err := newCLIClient(params.envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx := cmd.Context()

	var record service.CompanyRecord
	if params.refresh {
		record, err = client.Research.Refresh(ctx, name, params.context)
	} else {
		record, err = client.Research.Lookup(ctx, name, params.context)
	}
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	c := record.Company
	out := cmd.OutOrStdout()

	sizeVal := ""
	if c.HeadCount() > 0 {
		sizeVal = strconv.Itoa(c.HeadCount())
	}

	fmt.Fprintln(out, "********** Company Profile **********")
	fmt.Fprintf(out, "Company Name:  %s\n", c.Name())
	if c.Context() != "" {
		fmt.Fprintf(out, "Context:       %s\n", c.Context())
	}
	fmt.Fprintf(out, "Industry:      %s\n", compareAndSuggest(params.industry, c.Industry()))
	fmt.Fprintf(out, "Employee Size: %s\n", compareAndSuggest(params.size, sizeVal))
	if bucket := c.SizeBucket(); bucket != "" {
		fmt.Fprintf(out, "Size Bucket:   %s\n", bucket)
	}
	fmt.Fprintf(out, "Domain:        %s\n", compareAndSuggest(params.domain, c.Domain()))
	if c.ContactEmail() != "" {
		fmt.Fprintf(out, "Contact:       %s\n", c.ContactEmail())
	}
	fmt.Fprintf(out, "Source:        %s\n", record.Source)

	if params.showRoster && len(record.Employees) > 0 {
		fmt.Fprintln(out, "\nEmployees:")
		for _, e := range record.Employees {
			line := "  - " + e.FullName()
			if e.Title() != "" {
				line += ", " + e.Title()
			}
			if e.Email() != "" {
				line += " <" + e.Email() + ">"
			}
			fmt.Fprintln(out, line)
		}
	}
	fmt.Fprintln(out, "*************************************")

	return nil
}

// compareAndSuggest reconciles a user-supplied field with the researched
// value. The user's value always wins; a disagreement is annotated with the
// researched value so the user can double-check their data.
func compareAndSuggest(userVal, researchedVal string) string {
	if userVal == "" {
		if researchedVal == "" {
			return "Not found"
		}
		return researchedVal
	}

	if researchedVal != "" && normalizeFieldValue(userVal) != normalizeFieldValue(researchedVal) {
		return fmt.Sprintf("%s (Best Results: %s)", userVal, researchedVal)
	}
	return userVal
}

func normalizeFieldValue(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// newCLIClient builds a firmscope client for one-shot CLI commands, logging
// at warn level so command output stays readable.
func newCLIClient(envFile string) (*firmscope.Client, error) {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	cfg = cfg.Apply(config.WithLogLevel("WARN"))
	logger := log.NewLogger(cfg)

	opts := append(clientOptions(cfg), firmscope.WithLogger(logger.Slog()))

	client, err := firmscope.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create firmscope client: %w", err)
	}
	return client, nil
}
