package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/giturl"
)

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <locator>",
		Short: "Rewrite a repository locator into a canonical parseable URL",
		Long: `Normalize rewrites scheme-ambiguous locators (scp-style shorthand, file
paths, git:host/path notation) into a structurally valid URL without deriving
any repository metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := giturl.Normalize(args[0])
			if err != nil {
				return newParseError("normalizing locator", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), normalized.String())
			return err
		},
	}
}
