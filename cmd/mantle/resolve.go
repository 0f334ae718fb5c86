// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mantlekit/mantle/internal/cascade"
	"github.com/mantlekit/mantle/internal/issue"
	"github.com/mantlekit/mantle/pkg/resource"
)

var resolveStrict bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <type> <name>",
	Short: "Show which copy of a resource wins and why",
	Long: `Resolve one named resource through the cascade and print the winning
path with its provenance (theme, user, or override of both).

With --strict, a resource found in neither location is an error listing
both checked paths; without it, the command prints "not found" and exits
zero.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resource.ParseType(args[0])
		if err != nil {
			return err
		}

		cfg, th, err := loadEngine()
		if err != nil {
			return err
		}

		name := args[1]
		if resolveStrict {
			res, err := cascade.ResolveStrict(t, name, cfg, th)
			if err != nil {
				var notFound *cascade.NotFoundError
				if errors.As(err, &notFound) {
					renderIssue(issue.ResourceNotFoundId)
				}
				return err
			}
			printResolved(cmd, res.Source.String(), res.Path)
			return nil
		}

		res, err := cascade.Resolve(t, name, cfg, th)
		if err != nil {
			return err
		}
		if res == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q\n", SubtitleStyle.Render("not found:"), t, name)
			return nil
		}

		// Both locations present means the user copy shadowed the theme's;
		// display that as "override" the way the catalog scan would tag it.
		source := res.Source.String()
		if res.Source == resource.SourceUser {
			if cand, candErr := cascade.Paths(t, name, cfg, th); candErr == nil && fileExists(cand.ThemePath) {
				source = resource.SourceOverride.String()
			}
		}
		printResolved(cmd, source, res.Path)
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "treat a missing resource as an error")
}

func printResolved(cmd *cobra.Command, source, path string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", renderSource(source), PathStyle.Render(path))
}
