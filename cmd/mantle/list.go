// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mantlekit/mantle/internal/cascade"
	"github.com/mantlekit/mantle/pkg/resource"
)

var listCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List every resource of a type with provenance",
	Long: `Build the merged catalog for a resource type and print one line per
entry: name, provenance (theme, user, or override), and winning path.

Flat resource types (templates, partials, features) list a single directory
level; data and static assets are walked recursively with relative paths as
names.`,
	Args:          cobra.ExactArgs(1),
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

		var catalog resource.Catalog
		switch t {
		case resource.Data, resource.StaticAsset:
			catalog = cascade.ScanTree(t, cfg, th, nil)
		default:
			catalog = cascade.Scan(t, cfg, th, nil)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		for _, name := range catalog.Names() {
			entry := catalog[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, renderSource(entry.Source.String()), PathStyle.Render(entry.Path))
		}
		return w.Flush()
	},
}
