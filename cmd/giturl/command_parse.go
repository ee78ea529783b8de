package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/giturl"
	"github.com/goliatone/giturl/pkg/provider"
)

func newParseCommand() *cobra.Command {
	var (
		skip      int
		trimAuth  bool
		rulesPath string
	)

	cmd := &cobra.Command{
		Use:   "parse <locator>",
		Short: "Parse a repository locator into its structured record",
		Long: `Parse a repository locator and print the structured record.

Provider rules decide how many trailing path segments to skip for hosts with
virtual path segments (built-in default: ssh.dev.azure.com skips 1). An
explicit --skip overrides any rule.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := parseLocator(cmd, args[0], skip, rulesPath)
			if err != nil {
				return err
			}

			if trimAuth {
				record = record.TrimAuth()
			}

			format, _ := cmd.Flags().GetString("output")
			return renderOutput(cmd.OutOrStdout(), record, format)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "trailing path segments to ignore during segmentation (overrides rules)")
	cmd.Flags().BoolVar(&trimAuth, "trim-auth", false, "clear embedded credentials from the record")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a provider rules YAML file")

	return cmd
}

// parseLocator parses raw, applying provider rules unless the caller pinned
// an explicit skip count.
func parseLocator(cmd *cobra.Command, raw string, skip int, rulesPath string) (*giturl.GitURL, error) {
	rules, err := loadRules(rulesPath)
	if err != nil {
		return nil, err
	}

	slog.Debug("parsing locator", "input", raw)

	var record *giturl.GitURL
	if cmd.Flags().Changed("skip") {
		record, err = giturl.ParseWithSkip(raw, skip)
	} else {
		record, err = rules.Parse(raw)
	}
	if err != nil {
		return nil, newParseError("parsing locator", err)
	}

	return record, nil
}

func loadRules(path string) (*provider.Rules, error) {
	if path == "" {
		return provider.Default(), nil
	}

	rules, err := provider.Load(path)
	if err != nil {
		return nil, newFileError("loading provider rules", err)
	}
	return rules, nil
}
