package main

import (
	"fmt"
	"log/slog"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/giturl"
)

// remoteRecord pairs a configured remote URL with its parsed record, or the
// parse failure when the URL is not a recognizable locator.
type remoteRecord struct {
	Remote string         `yaml:"remote" json:"remote"`
	URL    string         `yaml:"url" json:"url"`
	Record *giturl.GitURL `yaml:"record,omitempty" json:"record,omitempty"`
	Error  string         `yaml:"error,omitempty" json:"error,omitempty"`
}

func newRemotesCommand() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "remotes [dir]",
		Short: "Parse the configured remotes of a local repository",
		Long: `Remotes opens the repository at dir (default: the working directory),
reads its configured remotes from the local .git directory, and parses each
remote URL. No network access is performed. Remotes that fail to parse are
reported alongside the rest instead of aborting the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runRemotes(cmd, dir, rulesPath)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a provider rules YAML file")

	return cmd
}

func runRemotes(cmd *cobra.Command, dir, rulesPath string) error {
	rules, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return newFileError(fmt.Sprintf("opening repository at %s", dir), err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return newFileError("reading remotes", err)
	}

	results := make([]remoteRecord, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		for _, u := range cfg.URLs {
			result := remoteRecord{Remote: cfg.Name, URL: u}
			if record, perr := rules.Parse(u); perr != nil {
				slog.Warn("remote url did not parse", "remote", cfg.Name, "url", u, "error", perr)
				result.Error = perr.Error()
			} else {
				result.Record = record
			}
			results = append(results, result)
		}
	}

	format, _ := cmd.Flags().GetString("output")
	return renderOutput(cmd.OutOrStdout(), results, format)
}
