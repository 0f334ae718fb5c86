// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mantlekit/mantle/internal/bundle"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show the bundler entry map",
	Long: `Print the entry map handed to the external bundler: the fixed "main"
entry plus one entry per discovered feature bundle, user overrides winning.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, th, err := loadEngine()
		if err != nil {
			return err
		}

		entries := bundle.Entries(cfg, th)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		for _, key := range slices.Sorted(maps.Keys(entries)) {
			fmt.Fprintf(w, "%s\t%s\n", key, PathStyle.Render(entries[key]))
		}
		return w.Flush()
	},
}
